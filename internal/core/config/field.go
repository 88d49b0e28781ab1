package config

// Field is a schema leaf: a named field of a GraphQL type, optionally carrying
// an ordered resolution pipeline and a set of arguments.
//
// List and Required are plain booleans in the model; the wire convention that
// absence means false lives entirely in the codec.
type Field struct {
	// Type names the GraphQL scalar or type this field resolves to.
	Type string

	List     bool
	Required bool

	// Steps is the ordered resolution pipeline. Nil means the field has no
	// pipeline of its own.
	Steps []Step

	// Args maps argument name to its declaration.
	Args map[string]Arg
}

// Arg declares a single field argument.
type Arg struct {
	Type     string
	List     bool
	Required bool
}

// NewField creates a Field resolving to the named type.
func NewField(typeName string) Field {
	return Field{Type: typeName}
}

// NewArg creates an Arg of the named type.
func NewArg(typeName string) Arg {
	return Arg{Type: typeName}
}

// AsList returns a copy of the field marked as a list.
func (f Field) AsList() Field {
	f.List = true
	return f
}

// AsRequired returns a copy of the field marked as required.
func (f Field) AsRequired() Field {
	f.Required = true
	return f
}

// WithSteps returns a copy of the field with the given resolution pipeline.
func (f Field) WithSteps(steps ...Step) Field {
	f.Steps = append([]Step(nil), steps...)
	return f
}

// WithArgs returns a copy of the field with the given arguments.
func (f Field) WithArgs(args map[string]Arg) Field {
	if len(args) == 0 {
		f.Args = nil
		return f
	}
	copied := make(map[string]Arg, len(args))
	for name, arg := range args {
		copied[name] = arg
	}
	f.Args = copied
	return f
}

// AsList returns a copy of the argument marked as a list.
func (a Arg) AsList() Arg {
	a.List = true
	return a
}

// AsRequired returns a copy of the argument marked as required.
func (a Arg) AsRequired() Arg {
	a.Required = true
	return a
}
