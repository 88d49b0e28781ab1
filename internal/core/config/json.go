package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire tags for the step union. Business logic never switches on these; they
// exist only at the serialization boundary.
const (
	stepTagHTTP       = "http"
	stepTagConst      = "const"
	stepTagObjectPath = "objectPath"
)

var nullLiteral = []byte("null")

// UnmarshalJSON decodes the top-level config object, prefixing errors from
// nested sections with the section name so decode failures always identify
// the offending field path.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw struct {
		Version int             `json:"version"`
		Server  json.RawMessage `json:"server"`
		GraphQL json.RawMessage `json:"graphQL"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config must be an object: %w", err)
	}

	out := Config{Version: raw.Version}
	if len(raw.Server) > 0 && !bytes.Equal(raw.Server, nullLiteral) {
		if err := json.Unmarshal(raw.Server, &out.Server); err != nil {
			return fmt.Errorf("server: %w", err)
		}
	}
	if len(raw.GraphQL) > 0 && !bytes.Equal(raw.GraphQL, nullLiteral) {
		if err := json.Unmarshal(raw.GraphQL, &out.GraphQL); err != nil {
			return fmt.Errorf("graphQL: %w", err)
		}
	}
	*c = out
	return nil
}

type graphqlWire struct {
	Schema RootSchema                  `json:"schema"`
	Types  map[string]map[string]Field `json:"types,omitempty"`
}

// MarshalJSON encodes the schema section. Map keys come out sorted, so the
// serialized form is deterministic.
func (g GraphQL) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphqlWire{Schema: g.Schema, Types: g.Types})
}

// UnmarshalJSON decodes the schema section, identifying the type and field
// name on any nested failure.
func (g *GraphQL) UnmarshalJSON(data []byte) error {
	var raw struct {
		Schema RootSchema                            `json:"schema"`
		Types  map[string]map[string]json.RawMessage `json:"types"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := GraphQL{Schema: raw.Schema}
	if len(raw.Types) > 0 {
		out.Types = make(map[string]map[string]Field, len(raw.Types))
		for typeName, rawFields := range raw.Types {
			fields := make(map[string]Field, len(rawFields))
			for fieldName, rawField := range rawFields {
				var field Field
				if err := json.Unmarshal(rawField, &field); err != nil {
					return fmt.Errorf("types.%s.%s: %w", typeName, fieldName, err)
				}
				fields[fieldName] = field
			}
			out.Types[typeName] = fields
		}
	}
	*g = out
	return nil
}

type fieldWire struct {
	Type     string            `json:"type"`
	List     bool              `json:"isList,omitempty"`
	Required bool              `json:"isRequired,omitempty"`
	Steps    []json.RawMessage `json:"steps,omitempty"`
	Args     map[string]Arg    `json:"args,omitempty"`
}

// MarshalJSON encodes a field with its wire renames (type, isList,
// isRequired) and the tagged step union. False flags and absent sections are
// omitted.
func (f Field) MarshalJSON() ([]byte, error) {
	wire := fieldWire{
		Type:     f.Type,
		List:     f.List,
		Required: f.Required,
		Args:     f.Args,
	}
	if len(f.Steps) > 0 {
		wire.Steps = make([]json.RawMessage, len(f.Steps))
		for i, step := range f.Steps {
			encoded, err := encodeStep(step)
			if err != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
			wire.Steps[i] = encoded
		}
	}
	if len(wire.Args) == 0 {
		wire.Args = nil
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a field, identifying the step index on any pipeline
// decode failure.
func (f *Field) UnmarshalJSON(data []byte) error {
	var wire fieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := Field{Type: wire.Type, List: wire.List, Required: wire.Required}
	if len(wire.Steps) > 0 {
		out.Steps = make([]Step, len(wire.Steps))
		for i, rawStep := range wire.Steps {
			step, err := decodeStep(rawStep)
			if err != nil {
				return fmt.Errorf("steps[%d]: %w", i, err)
			}
			out.Steps[i] = step
		}
	}
	if len(wire.Args) > 0 {
		out.Args = wire.Args
	}
	*f = out
	return nil
}

type argWire struct {
	Type     string `json:"type"`
	List     bool   `json:"isList,omitempty"`
	Required bool   `json:"isRequired,omitempty"`
}

// MarshalJSON encodes an argument with the same renames as Field.
func (a Arg) MarshalJSON() ([]byte, error) {
	return json.Marshal(argWire{Type: a.Type, List: a.List, Required: a.Required})
}

// UnmarshalJSON decodes an argument.
func (a *Arg) UnmarshalJSON(data []byte) error {
	var wire argWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*a = Arg{Type: wire.Type, List: wire.List, Required: wire.Required}
	return nil
}

type httpStepWire struct {
	Path   string          `json:"path"`
	Method string          `json:"method,omitempty"`
	Input  json.RawMessage `json:"input,omitempty"`
	Output json.RawMessage `json:"output,omitempty"`
}

// encodeStep serializes a step as a single-key tagged object. The const and
// objectPath payloads are emitted directly under the tag with no wrapper.
func encodeStep(s Step) (json.RawMessage, error) {
	var payload any
	var tag string

	switch v := s.(type) {
	case HTTPStep:
		tag = stepTagHTTP
		payload = httpStepWire{Path: v.Path, Method: v.Method, Input: v.Input, Output: v.Output}
	case ConstStep:
		tag = stepTagConst
		payload = v.Value
	case ObjectPathStep:
		tag = stepTagObjectPath
		payload = v.Spec
	default:
		return nil, fmt.Errorf("unknown step variant %T", s)
	}

	return json.Marshal(map[string]any{tag: payload})
}

// decodeStep parses a single-key tagged object back into a step variant.
func decodeStep(data json.RawMessage) (Step, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("step must be a tagged object: %w", err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("step must carry exactly one of %q, %q, %q", stepTagHTTP, stepTagConst, stepTagObjectPath)
	}

	for tag, payload := range tagged {
		switch tag {
		case stepTagHTTP:
			var wire httpStepWire
			if err := json.Unmarshal(payload, &wire); err != nil {
				return nil, fmt.Errorf("http step: %w", err)
			}
			return HTTPStep{Path: wire.Path, Method: wire.Method, Input: wire.Input, Output: wire.Output}, nil
		case stepTagConst:
			return ConstStep{Value: payload}, nil
		case stepTagObjectPath:
			var spec map[string][]string
			if err := json.Unmarshal(payload, &spec); err != nil {
				return nil, fmt.Errorf("objectPath step: %w", err)
			}
			return ObjectPathStep{Spec: spec}, nil
		default:
			return nil, fmt.Errorf("unknown step kind %q", tag)
		}
	}
	return nil, fmt.Errorf("step must carry exactly one tag")
}
