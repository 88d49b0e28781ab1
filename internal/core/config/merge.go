package config

// MergeRight overlays other on top of c and returns the combined config.
// It is pure and total: no failure case, neither input is modified.
//
// Right bias, applied structurally:
//   - version: other's value wins unconditionally, even when zero;
//   - server.baseURL and the root schema names: other's value when set,
//     else c's;
//   - types: a shallow union keyed by type name. A type name present on both
//     sides takes other's entire field map; fields are never merged
//     individually within a shared type name.
//
// MergeRight is not commutative.
func (c Config) MergeRight(other Config) Config {
	out := Config{Version: other.Version}

	out.Server.BaseURL = c.Server.BaseURL
	if other.Server.BaseURL != nil {
		out.Server.BaseURL = other.Server.BaseURL
	}

	out.GraphQL.Schema.Query = stringOr(other.GraphQL.Schema.Query, c.GraphQL.Schema.Query)
	out.GraphQL.Schema.Mutation = stringOr(other.GraphQL.Schema.Mutation, c.GraphQL.Schema.Mutation)

	if len(c.GraphQL.Types) > 0 || len(other.GraphQL.Types) > 0 {
		types := make(map[string]map[string]Field, len(c.GraphQL.Types)+len(other.GraphQL.Types))
		for name, fields := range c.GraphQL.Types {
			types[name] = fields
		}
		for name, fields := range other.GraphQL.Types {
			types[name] = fields
		}
		out.GraphQL.Types = types
	}

	return out
}

func stringOr(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}
