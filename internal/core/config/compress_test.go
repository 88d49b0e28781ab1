package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func configWithStep(step Step) Config {
	return New().WithType("Query", map[string]Field{
		"user": NewField("User").WithSteps(step),
	})
}

func firstStep(t *testing.T, c Config) Step {
	t.Helper()
	field, ok := c.GraphQL.Types["Query"]["user"]
	require.True(t, ok)
	require.NotEmpty(t, field.Steps)
	return field.Steps[0]
}

// TestCompress_HTTPStep tests the per-step compression rules for HTTP steps
func TestCompress_HTTPStep(t *testing.T) {
	input := json.RawMessage(`{"shape":"input"}`)
	output := json.RawMessage(`{"shape":"output"}`)

	tests := []struct {
		name        string
		step        HTTPStep
		expected    HTTPStep
		description string
	}{
		{
			name:        "GETWithSchemas_DropsEverything",
			step:        HTTPStep{Path: "/p", Method: "GET", Input: input, Output: output},
			expected:    HTTPStep{Path: "/p"},
			description: "GET is the implicit default and schemas are pure weight",
		},
		{
			name:        "LowercaseGet_DroppedToo",
			step:        HTTPStep{Path: "/p", Method: "get"},
			expected:    HTTPStep{Path: "/p"},
			description: "Method comparison is case-insensitive",
		},
		{
			name:        "POST_MethodPreserved",
			step:        HTTPStep{Path: "/p", Method: "POST", Input: input, Output: output},
			expected:    HTTPStep{Path: "/p", Method: "POST"},
			description: "Non-GET methods must survive compression",
		},
		{
			name:        "AbsentMethod_StaysAbsent",
			step:        HTTPStep{Path: "/p", Input: input},
			expected:    HTTPStep{Path: "/p"},
			description: "Absent method already means GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed := configWithStep(tt.step).Compress()
			assert.Equal(t, tt.expected, firstStep(t, compressed), tt.description)
		})
	}
}

// TestCompress_ConstAndObjectPathPassThrough tests that the other step kinds
// are untouched
func TestCompress_ConstAndObjectPathPassThrough(t *testing.T) {
	constStep := ConstStep{Value: json.RawMessage(`{"a":1}`)}
	objPathStep := ObjectPathStep{Spec: map[string][]string{"name": {"profile", "fullName"}}}

	assert.Equal(t, constStep, firstStep(t, configWithStep(constStep).Compress()))
	assert.Equal(t, objPathStep, firstStep(t, configWithStep(objPathStep).Compress()))
}

// TestCompress_EmptyCollectionsBecomeAbsent tests normalization of empties
func TestCompress_EmptyCollectionsBecomeAbsent(t *testing.T) {
	field := NewField("User")
	field.Steps = []Step{}
	field.Args = map[string]Arg{}

	compressed := New().WithType("Query", map[string]Field{"user": field}).Compress()

	got := compressed.GraphQL.Types["Query"]["user"]
	assert.Nil(t, got.Steps, "Empty step list should become absent")
	assert.Nil(t, got.Args, "Empty args map should become absent")
}

// TestCompress_FalseFlagsSerializeAsAbsent tests the tri-state flattening at
// the wire boundary: an explicit false is indistinguishable from unset
func TestCompress_FalseFlagsSerializeAsAbsent(t *testing.T) {
	// Decode a field carrying explicit false flags.
	var explicit Field
	require.NoError(t, json.Unmarshal([]byte(`{"type":"User","isList":false,"isRequired":false}`), &explicit))

	unset := NewField("User")
	assert.Equal(t, unset, explicit, "Explicit false should decode identically to unset")

	cfg := New().WithType("Query", map[string]Field{"user": explicit}).Compress()
	raw, rawErr := json.Marshal(cfg)
	data := must(t, raw, rawErr)
	assert.NotContains(t, string(data), "isList", "False flags should be omitted from the wire form")
	assert.NotContains(t, string(data), "isRequired")
}

// TestCompress_DoesNotMutateInput tests value semantics of compression
func TestCompress_DoesNotMutateInput(t *testing.T) {
	step := HTTPStep{Path: "/p", Method: "GET", Input: json.RawMessage(`{"a":1}`)}
	original := configWithStep(step)

	_ = original.Compress()

	assert.Equal(t, step, firstStep(t, original), "Input config should be unchanged")
}

// TestCompress_PropertyBased_Idempotent tests compress(compress(c)) == compress(c)
func TestCompress_PropertyBased_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := configGen().Draw(t, "config")

		once := c.Compress()
		twice := once.Compress()

		assert.Equal(t, once, twice, "Compression should be idempotent")
	})
}

// TestCompress_PropertyBased_PreservesMeaning tests that compression only
// removes derivable data: everything else survives
func TestCompress_PropertyBased_PreservesMeaning(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := configGen().Draw(t, "config")
		compressed := c.Compress()

		assert.Equal(t, c.Version, compressed.Version)
		assert.Equal(t, c.Server, compressed.Server)
		assert.Equal(t, c.GraphQL.Schema, compressed.GraphQL.Schema)
		assert.Equal(t, len(c.GraphQL.Types), len(compressed.GraphQL.Types))

		for typeName, fields := range c.GraphQL.Types {
			for fieldName, field := range fields {
				got := compressed.GraphQL.Types[typeName][fieldName]
				assert.Equal(t, field.Type, got.Type)
				assert.Equal(t, field.List, got.List)
				assert.Equal(t, field.Required, got.Required)
				assert.Equal(t, len(field.Steps), len(got.Steps), "Compression must not drop steps")
			}
		}
	})
}
