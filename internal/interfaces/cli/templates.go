package cli

import (
	"encoding/json"
	"net/http"

	"github.com/gqlgate/gqlgate-cli/internal/core/config"
)

// StarterConfig returns the example gateway configuration written by init.
// It exercises the schema registry and all three step kinds.
func StarterConfig() config.Config {
	query := map[string]config.Field{
		"user": config.NewField("User").
			WithArgs(map[string]config.Arg{
				"id": config.NewArg("ID").AsRequired(),
			}).
			WithSteps(config.StepFromEndpoint(config.Endpoint{
				Path:   "/users/{{args.id}}",
				Method: http.MethodGet,
			})),
		"users": config.NewField("User").AsList().
			WithSteps(config.HTTPStep{Path: "/users"}),
		"apiVersion": config.NewField("String").
			WithSteps(config.ConstStep{Value: json.RawMessage(`"v1"`)}),
	}

	user := map[string]config.Field{
		"id":   config.NewField("ID").AsRequired(),
		"name": config.NewField("String").AsRequired(),
		"posts": config.NewField("Post").AsList().
			WithSteps(config.HTTPStep{Path: "/users/{{value.id}}/posts"}),
	}

	post := map[string]config.Field{
		"id":    config.NewField("ID").AsRequired(),
		"title": config.NewField("String"),
		"author": config.NewField("User").
			WithSteps(
				config.HTTPStep{Path: "/users/{{value.userId}}", Method: http.MethodPost},
				config.ObjectPathStep{Spec: map[string][]string{
					"name": {"profile", "fullName"},
				}},
			),
	}

	return config.New().
		WithVersion(1).
		WithBaseURL(config.MustParseURL("http://localhost:8080")).
		WithQuery("Query").
		WithType("Query", query).
		WithType("User", user).
		WithType("Post", post)
}

// StarterConfigJSON returns the starter configuration as formatted JSON.
func StarterConfigJSON() string {
	data, err := json.MarshalIndent(StarterConfig(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data) + "\n"
}
