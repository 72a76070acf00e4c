package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ossa-dev/ossa/pkg/logger"
	"github.com/ossa-dev/ossa/pkg/schemas"
	"github.com/ossa-dev/ossa/pkg/validation"
)

var handlerLog = logger.New("api:handlers")

// ValidateInput is the request body for POST /v1/validate. The manifest
// travels as raw text so the server performs the same YAML-then-JSON
// detection as the CLI.
type ValidateInput struct {
	Body struct {
		Manifest      string   `json:"manifest" doc:"Raw agent manifest, YAML or JSON"`
		SchemaVersion string   `json:"schemaVersion,omitempty" doc:"Override the schema version"`
		Frameworks    []string `json:"frameworks,omitempty" doc:"Regulatory frameworks to check"`
	}
}

// ValidateOutput wraps the validation result.
type ValidateOutput struct {
	Body validation.Result
}

// ComplianceInput is the request body for POST /v1/compliance.
type ComplianceInput struct {
	Body struct {
		Manifest   map[string]any `json:"manifest" doc:"Parsed agent manifest object"`
		Frameworks []string       `json:"frameworks" doc:"Regulatory frameworks to check"`
	}
}

// ComplianceOutput wraps the compliance report.
type ComplianceOutput struct {
	Body validation.ComplianceReport
}

// EstimateInput is the request body for POST /v1/estimate.
type EstimateInput struct {
	Body struct {
		Text  string `json:"text" doc:"Text payload to estimate"`
		Model string `json:"model,omitempty" doc:"Model name for per-token pricing"`
	}
}

// EstimateOutput wraps the token estimate.
type EstimateOutput struct {
	Body validation.TokenEstimate
}

// SchemaVersionsOutput lists the bundled schema versions.
type SchemaVersionsOutput struct {
	Body struct {
		Versions []string `json:"versions"`
		Default  string   `json:"default"`
	}
}

// SchemaInput addresses one schema version.
type SchemaInput struct {
	Version string `path:"version" doc:"Schema version, e.g. 1.0.0"`
}

// SchemaOutput wraps one schema document.
type SchemaOutput struct {
	Body map[string]any
}

// PingOutput is the health-check response.
type PingOutput struct {
	Body struct {
		Pong bool `json:"pong" example:"true" doc:"Ping response"`
	}
}

// RegisterRoutes registers all v1 routes on the API.
func RegisterRoutes(api huma.API, engine *validation.Engine, repo *schemas.Repository) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-manifest",
		Method:      http.MethodPost,
		Path:        "/v1/validate",
		Summary:     "Validate an agent manifest",
		Description: "Parses the manifest, validates it against its schema version and returns the unified report. Invalid manifests are a normal 200 response with valid=false.",
		Tags:        []string{"validation"},
	}, func(_ context.Context, input *ValidateInput) (*ValidateOutput, error) {
		result, err := engine.ValidateManifest(input.Body.Manifest, validation.Options{
			SchemaVersion: input.Body.SchemaVersion,
			Frameworks:    input.Body.Frameworks,
		})
		if err != nil {
			handlerLog.Printf("validation failed unexpectedly: %v", err)
			return nil, huma.Error500InternalServerError("Validation failed", err)
		}
		return &ValidateOutput{Body: *result}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "check-compliance",
		Method:      http.MethodPost,
		Path:        "/v1/compliance",
		Summary:     "Check regulatory compliance",
		Description: "Evaluates a parsed manifest against the requested regulatory frameworks. Unknown framework identifiers become per-framework errors.",
		Tags:        []string{"compliance"},
	}, func(_ context.Context, input *ComplianceInput) (*ComplianceOutput, error) {
		report := validation.CheckCompliance(input.Body.Manifest, input.Body.Frameworks)
		return &ComplianceOutput{Body: *report}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "estimate-tokens",
		Method:      http.MethodPost,
		Path:        "/v1/estimate",
		Summary:     "Estimate token usage",
		Tags:        []string{"estimation"},
	}, func(_ context.Context, input *EstimateInput) (*EstimateOutput, error) {
		estimate := validation.EstimateTokens(input.Body.Text, input.Body.Model)
		return &EstimateOutput{Body: *estimate}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-schemas",
		Method:      http.MethodGet,
		Path:        "/v1/schemas",
		Summary:     "List schema versions",
		Tags:        []string{"schemas"},
	}, func(_ context.Context, _ *struct{}) (*SchemaVersionsOutput, error) {
		out := &SchemaVersionsOutput{}
		out.Body.Versions = repo.Versions()
		out.Body.Default = engine.DefaultVersion()
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-schema",
		Method:      http.MethodGet,
		Path:        "/v1/schemas/{version}",
		Summary:     "Get a schema document",
		Tags:        []string{"schemas"},
	}, func(_ context.Context, input *SchemaInput) (*SchemaOutput, error) {
		doc, err := repo.GetSchema(input.Version)
		if err != nil {
			var notFound *schemas.SchemaNotFoundError
			if errors.As(err, &notFound) {
				return nil, huma.Error404NotFound(err.Error())
			}
			return nil, huma.Error500InternalServerError("Failed to load schema", err)
		}
		return &SchemaOutput{Body: doc}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/v1/ping",
		Summary:     "Ping",
		Description: "Simple ping endpoint",
		Tags:        []string{"ping"},
	}, func(_ context.Context, _ *struct{}) (*PingOutput, error) {
		out := &PingOutput{}
		out.Body.Pong = true
		return out, nil
	})
}
