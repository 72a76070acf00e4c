package validation

import (
	"errors"

	"github.com/ossa-dev/ossa/pkg/constants"
	"github.com/ossa-dev/ossa/pkg/logger"
	"github.com/ossa-dev/ossa/pkg/parser"
	"github.com/ossa-dev/ossa/pkg/schemas"
)

var engineLog = logger.New("validation:engine")

// Engine sequences the validation pipeline: parse, resolve version, validate
// structure, derive the compliance level, run regulatory checks and assemble
// the unified result. Each call is a stateless pipeline over one document;
// the schema repository's cache is the only shared state.
type Engine struct {
	repo           *schemas.Repository
	defaultVersion string
}

// Options control a single validation run.
type Options struct {
	// SchemaVersion forces a schema version, overriding the manifest's
	// declared apiVersion.
	SchemaVersion string
	// Frameworks lists the regulatory frameworks to check. Empty means no
	// regulatory evaluation.
	Frameworks []string
}

// NewEngine creates an Engine backed by the given schema repository. An empty
// defaultVersion falls back to the stable schema version.
func NewEngine(repo *schemas.Repository, defaultVersion string) *Engine {
	if defaultVersion == "" {
		defaultVersion = constants.DefaultSchemaVersion
	}
	return &Engine{repo: repo, defaultVersion: defaultVersion}
}

// DefaultVersion returns the fallback schema version this engine resolves
// against.
func (e *Engine) DefaultVersion() string {
	return e.defaultVersion
}

// ValidateManifest runs the full pipeline over raw YAML or JSON text and
// returns the unified report. Input-shape problems (unparseable text, missing
// schema version, structural violations) are encoded in the result, never
// returned as an error; the error return is reserved for genuinely
// exceptional conditions such as an unreadable schema store.
//
// The pipeline is best-effort and never short-circuits on the first finding:
// level derivation and regulatory checks run even when parsing or structural
// validation failed.
func (e *Engine) ValidateManifest(text string, opts Options) (*Result, error) {
	result := &Result{
		Errors:      []Issue{},
		Warnings:    []Issue{},
		Suggestions: []Suggestion{},
	}

	manifest, parseErr := parser.Parse(text)
	if parseErr != nil {
		engineLog.Print("manifest text parsed as neither YAML nor JSON")
		result.Errors = append(result.Errors, Issue{
			Path:     "",
			Message:  parser.InvalidFormatMessage,
			Code:     "parse_error",
			Severity: "error",
		})
	}

	version := opts.SchemaVersion
	if version == "" {
		declared := ""
		if manifest != nil {
			declared = manifest.APIVersion
		}
		version = ResolveVersion(declared, e.defaultVersion)
		if manifest != nil && declared != "" && ResolveVersion(declared, "") == "" {
			result.Warnings = append(result.Warnings, Issue{
				Path:     "apiVersion",
				Message:  "apiVersion does not declare a schema version; assuming " + version,
				Code:     "version_fallback",
				Severity: "warning",
			})
		}
	}
	result.SchemaVersion = version

	// Structural validation needs a schema and a parsed document. A missing
	// schema aborts this step only; the remaining stages still run.
	if parseErr == nil {
		schema, err := e.repo.Compile(version)
		var notFound *schemas.SchemaNotFoundError
		switch {
		case err == nil:
			result.Errors = append(result.Errors, ValidateStructure(schema, manifest.Raw())...)
		case errors.As(err, &notFound):
			engineLog.Printf("schema version %s not found", version)
			result.Errors = append(result.Errors, Issue{
				Path:     "",
				Message:  err.Error(),
				Code:     "schema_not_found",
				Severity: "error",
			})
		default:
			return nil, err
		}
	}

	result.Valid = len(result.Errors) == 0
	result.Level = DetermineLevel(manifest)
	result.Suggestions = buildSuggestions(manifest)

	if len(opts.Frameworks) > 0 {
		result.Compliance = CheckCompliance(manifest.Raw(), opts.Frameworks)
	}

	engineLog.Printf("validation complete: valid=%v level=%s errors=%d warnings=%d",
		result.Valid, result.Level, len(result.Errors), len(result.Warnings))
	return result, nil
}

// buildSuggestions recommends the optional sections that would raise the
// certification tier. Suggestions are advisory and never affect validity.
func buildSuggestions(manifest *parser.Manifest) []Suggestion {
	suggestions := []Suggestion{}
	if manifest == nil || manifest.Raw() == nil {
		return suggestions
	}

	sections := manifest.Sections()
	if !sections.Spec {
		return append(suggestions, Suggestion{
			Path:     "spec",
			Message:  "Declare a spec section with at least one capability",
			Action:   "add_section",
			Priority: "high",
		})
	}

	missing := []struct {
		present  bool
		path     string
		message  string
		priority string
	}{
		{sections.Security, "spec.security", "Add a security section to document authentication and authorization", "high"},
		{sections.API, "spec.api", "Add an api section describing the agent's API surface", "high"},
		{sections.Performance, "spec.performance", "Add a performance section with timeouts and SLOs", "medium"},
		{sections.Compliance, "spec.compliance", "Add a compliance section listing targeted frameworks", "low"},
	}
	for _, m := range missing {
		if m.present {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Path:     m.path,
			Message:  m.message,
			Action:   "add_section",
			Priority: m.priority,
		})
	}
	return suggestions
}
