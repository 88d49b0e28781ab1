package config

import (
	"encoding/json"
	"testing"

	"pgregory.net/rapid"
)

// Shared rapid generators for configuration values. All generated values are
// normalized the way the codec produces them (nil for absent collections,
// canonical URLs, compact raw JSON), so round-trip comparisons are exact.

var (
	typeNameGen  = rapid.SampledFrom([]string{"Query", "Mutation", "User", "Post", "Comment", "Profile"})
	fieldNameGen = rapid.SampledFrom([]string{"id", "name", "title", "author", "posts", "items", "owner", "body"})
	scalarGen    = rapid.SampledFrom([]string{"ID", "String", "Int", "Boolean", "User", "Post"})
	argNameGen   = rapid.SampledFrom([]string{"id", "limit", "offset", "query"})
	rawValueGen  = rapid.SampledFrom([]string{`42`, `"v1"`, `true`, `null`, `{"a":1}`, `["x","y"]`})
	pathGen      = rapid.SampledFrom([]string{"/users", "/users/{{args.id}}", "/posts", "/search"})
	methodGen    = rapid.SampledFrom([]string{"", "GET", "POST", "PUT", "DELETE"})
	hostGen      = rapid.SampledFrom([]string{"api.example.com", "localhost:8080", "upstream.internal"})
	segmentGen   = rapid.SampledFrom([]string{"data", "profile", "fullName", "items", "0"})
)

func stepGen() *rapid.Generator[Step] {
	return rapid.Custom(func(t *rapid.T) Step {
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			step := HTTPStep{
				Path:   pathGen.Draw(t, "path"),
				Method: methodGen.Draw(t, "method"),
			}
			if rapid.Bool().Draw(t, "hasInput") {
				step.Input = json.RawMessage(`{"shape":"input"}`)
			}
			if rapid.Bool().Draw(t, "hasOutput") {
				step.Output = json.RawMessage(`{"shape":"output"}`)
			}
			return step
		case 1:
			return ConstStep{Value: json.RawMessage(rawValueGen.Draw(t, "value"))}
		default:
			spec := make(map[string][]string)
			for _, name := range drawDistinct(t, fieldNameGen, 1, 3, "specKeys") {
				spec[name] = drawDistinct(t, segmentGen, 1, 3, "segments")
			}
			return ObjectPathStep{Spec: spec}
		}
	})
}

func fieldGen() *rapid.Generator[Field] {
	return rapid.Custom(func(t *rapid.T) Field {
		f := NewField(scalarGen.Draw(t, "fieldType"))
		if rapid.Bool().Draw(t, "list") {
			f = f.AsList()
		}
		if rapid.Bool().Draw(t, "required") {
			f = f.AsRequired()
		}

		numSteps := rapid.IntRange(0, 3).Draw(t, "numSteps")
		if numSteps > 0 {
			steps := make([]Step, numSteps)
			for i := range steps {
				steps[i] = stepGen().Draw(t, "step")
			}
			f = f.WithSteps(steps...)
		}

		if rapid.Bool().Draw(t, "hasArgs") {
			args := make(map[string]Arg)
			for _, name := range drawDistinct(t, argNameGen, 1, 3, "argNames") {
				arg := NewArg(scalarGen.Draw(t, "argType"))
				if rapid.Bool().Draw(t, "argList") {
					arg = arg.AsList()
				}
				if rapid.Bool().Draw(t, "argRequired") {
					arg = arg.AsRequired()
				}
				args[name] = arg
			}
			f = f.WithArgs(args)
		}
		return f
	})
}

func configGen() *rapid.Generator[Config] {
	return rapid.Custom(func(t *rapid.T) Config {
		c := New().WithVersion(rapid.IntRange(0, 9).Draw(t, "version"))

		if rapid.Bool().Draw(t, "hasBaseURL") {
			c = c.WithBaseURL(MustParseURL("http://" + hostGen.Draw(t, "host")))
		}
		if rapid.Bool().Draw(t, "hasQuery") {
			c = c.WithQuery("Query")
		}
		if rapid.Bool().Draw(t, "hasMutation") {
			c = c.WithMutation("Mutation")
		}

		for _, typeName := range drawDistinct(t, typeNameGen, 0, 3, "typeNames") {
			fields := make(map[string]Field)
			for _, fieldName := range drawDistinct(t, fieldNameGen, 1, 4, "fieldNames") {
				fields[fieldName] = fieldGen().Draw(t, "field")
			}
			c = c.WithType(typeName, fields)
		}
		return c
	})
}

func drawDistinct(t *rapid.T, gen *rapid.Generator[string], minLen, maxLen int, label string) []string {
	return rapid.SliceOfNDistinct(gen, minLen, maxLen, func(s string) string { return s }).Draw(t, label)
}

// must unwraps a value or fails the test.
func must[T any](t *testing.T, value T, err error) T {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return value
}
