package config

import "encoding/json"

// Step is one strategy for producing a field's runtime value. It is a closed
// union: exactly HTTPStep, ConstStep and ObjectPathStep implement it. Steps
// carry data only; executing them is the blueprint runtime's job.
type Step interface {
	isStep()
}

// HTTPStep describes a call to an upstream HTTP endpoint.
type HTTPStep struct {
	// Path is the templated URL path of the upstream endpoint.
	Path string

	// Method is the HTTP method. Empty means GET.
	Method string

	// Input and Output are optional structural schemas for the request and
	// response shapes. They are carried verbatim; the downstream transcoder
	// can reconstruct them, so Compress drops both.
	Input  json.RawMessage
	Output json.RawMessage
}

// ConstStep wraps a literal JSON value returned as-is for the field.
type ConstStep struct {
	Value json.RawMessage
}

// ObjectPathStep reshapes an upstream object: each output field name maps to
// an ordered list of path segments navigating into the source object.
type ObjectPathStep struct {
	Spec map[string][]string
}

func (HTTPStep) isStep()       {}
func (ConstStep) isStep()      {}
func (ObjectPathStep) isStep() {}

// Endpoint is an execution-layer description of an HTTP operation, consumed
// one-way when constructing an HTTPStep.
type Endpoint struct {
	Path   string
	Method string
	Input  json.RawMessage
	Output json.RawMessage
}

// StepFromEndpoint maps an Endpoint description field-for-field into an
// HTTPStep.
func StepFromEndpoint(e Endpoint) HTTPStep {
	return HTTPStep{
		Path:   e.Path,
		Method: e.Method,
		Input:  e.Input,
		Output: e.Output,
	}
}
