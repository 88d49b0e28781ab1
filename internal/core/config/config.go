package config

// Config is the aggregate root: a format version, gateway-level server
// settings and the GraphQL schema with its resolution pipelines.
type Config struct {
	Version int     `json:"version"`
	Server  Server  `json:"server"`
	GraphQL GraphQL `json:"graphQL"`
}

// Server holds gateway-level settings.
type Server struct {
	// BaseURL overrides the base URL used for HTTP steps. Nil means unset.
	BaseURL *URL `json:"baseURL,omitempty"`
}

// IsZero reports whether the server section carries no settings.
func (s Server) IsZero() bool {
	return s.BaseURL == nil
}

// RootSchema names the root operation types. Empty string means unset.
type RootSchema struct {
	Query    string `json:"query,omitempty"`
	Mutation string `json:"mutation,omitempty"`
}

// GraphQL holds the root schema and the type registry: type name to field
// name to field declaration. Both registries are unordered; keys are unique.
type GraphQL struct {
	Schema RootSchema
	Types  map[string]map[string]Field
}

// New creates an empty Config.
func New() Config {
	return Config{}
}

// WithVersion returns a copy of the config with the given format version.
func (c Config) WithVersion(version int) Config {
	c.Version = version
	return c
}

// WithBaseURL returns a copy of the config with the server base URL set.
func (c Config) WithBaseURL(u URL) Config {
	c.Server.BaseURL = &u
	return c
}

// WithQuery returns a copy of the config with the root query type named.
func (c Config) WithQuery(name string) Config {
	c.GraphQL.Schema.Query = name
	return c
}

// WithMutation returns a copy of the config with the root mutation type named.
func (c Config) WithMutation(name string) Config {
	c.GraphQL.Schema.Mutation = name
	return c
}

// WithType returns a copy of the config with the named type registered,
// replacing any previous registration of the same name.
func (c Config) WithType(name string, fields map[string]Field) Config {
	types := make(map[string]map[string]Field, len(c.GraphQL.Types)+1)
	for typeName, typeFields := range c.GraphQL.Types {
		types[typeName] = typeFields
	}
	copied := make(map[string]Field, len(fields))
	for fieldName, field := range fields {
		copied[fieldName] = field
	}
	types[name] = copied
	c.GraphQL.Types = types
	return c
}

// WithTypes returns a copy of the config with each given type registered.
func (c Config) WithTypes(types map[string]map[string]Field) Config {
	out := c
	for name, fields := range types {
		out = out.WithType(name, fields)
	}
	return out
}
