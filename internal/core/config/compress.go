package config

import (
	"net/http"
	"strings"
)

// Compress returns the minimal representation of the config that still
// round-trips to an equivalent effective configuration through the codec.
// It is pure and idempotent.
//
// Per step:
//   - HTTP steps lose their input/output schemas unconditionally and their
//     method when it is GET (the implicit default);
//   - const and objectPath steps carry no redundancy and pass through.
//
// Empty step lists and argument maps become absent. The List/Required flags
// need no work here: the codec already collapses false to absence.
func (c Config) Compress() Config {
	out := c
	if len(c.GraphQL.Types) == 0 {
		out.GraphQL.Types = nil
		return out
	}

	types := make(map[string]map[string]Field, len(c.GraphQL.Types))
	for typeName, fields := range c.GraphQL.Types {
		compressed := make(map[string]Field, len(fields))
		for fieldName, field := range fields {
			compressed[fieldName] = compressField(field)
		}
		types[typeName] = compressed
	}
	out.GraphQL.Types = types
	return out
}

func compressField(f Field) Field {
	if len(f.Steps) == 0 {
		f.Steps = nil
	} else {
		steps := make([]Step, len(f.Steps))
		for i, step := range f.Steps {
			steps[i] = compressStep(step)
		}
		f.Steps = steps
	}

	if len(f.Args) == 0 {
		f.Args = nil
	}
	return f
}

func compressStep(s Step) Step {
	hs, ok := s.(HTTPStep)
	if !ok {
		return s
	}
	hs.Input = nil
	hs.Output = nil
	if strings.EqualFold(hs.Method, http.MethodGet) {
		hs.Method = ""
	}
	return hs
}
