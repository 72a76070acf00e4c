package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ossa-dev/ossa/pkg/logger"
)

var structuralLog = logger.New("validation:structural")

var errPrinter = message.NewPrinter(language.English)

// ValidateStructure validates a parsed manifest document against a compiled
// schema and returns the structural errors, one Issue per leaf violation.
// It is a pure function of (schema, document) and never fails: an empty
// result means the document is structurally valid.
func ValidateStructure(schema *jsonschema.Schema, document map[string]any) []Issue {
	instance := normalizeInstance(document)

	err := schema.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []Issue{{Path: "", Message: err.Error(), Code: "validation_error", Severity: "error"}}
	}

	issues := flattenValidationError(ve)
	structuralLog.Printf("structural validation produced %d errors", len(issues))
	return issues
}

// normalizeInstance re-encodes the document through JSON so YAML- and
// JSON-sourced manifests validate identically (consistent number and key
// representations). A nil document normalizes to an empty object so later
// stages can still report required-field errors instead of crashing.
func normalizeInstance(document map[string]any) any {
	if document == nil {
		document = map[string]any{}
	}
	data, err := json.Marshal(document)
	if err != nil {
		return map[string]any{}
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return map[string]any{}
	}
	return instance
}

// flattenValidationError walks the cause tree and emits one Issue per leaf.
// Missing required properties are expanded so the path names the absent
// field itself ("spec.capabilities") rather than its parent.
func flattenValidationError(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, cause := range e.Causes {
				walk(cause)
			}
			return
		}

		path := joinInstancePath(e.InstanceLocation)
		code := keywordCode(e)

		if required, ok := e.ErrorKind.(*kind.Required); ok {
			for _, missing := range required.Missing {
				issues = append(issues, Issue{
					Path:     childPath(path, missing),
					Message:  "missing required property '" + missing + "'",
					Code:     "required",
					Severity: "error",
				})
			}
			return
		}

		issues = append(issues, Issue{
			Path:     path,
			Message:  e.ErrorKind.LocalizedString(errPrinter),
			Code:     code,
			Severity: "error",
		})
	}
	walk(ve)

	return issues
}

func joinInstancePath(location []string) string {
	return strings.Join(location, ".")
}

func childPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}

func keywordCode(e *jsonschema.ValidationError) string {
	keywordPath := e.ErrorKind.KeywordPath()
	if len(keywordPath) == 0 {
		return "schema"
	}
	return keywordPath[len(keywordPath)-1]
}
