package parser

import (
	"encoding/json"
	"errors"

	"github.com/goccy/go-yaml"

	"github.com/ossa-dev/ossa/pkg/logger"
)

var parseLog = logger.New("parser:parse")

// InvalidFormatMessage is the fixed, format-agnostic message reported when
// input text parses as neither YAML nor JSON. Callers render it verbatim; the
// underlying parser errors never leak into results.
const InvalidFormatMessage = "Invalid YAML or JSON format"

// ErrInvalidFormat is returned by Parse when the input is neither valid YAML
// nor valid JSON.
var ErrInvalidFormat = errors.New(InvalidFormatMessage)

// Parse parses manifest text, attempting YAML first and falling back to JSON.
// The only error it returns is ErrInvalidFormat; a document that parses but
// does not match the manifest shape still yields a Manifest whose typed
// fields are best-effort (structural validation reports the details).
func Parse(text string) (*Manifest, error) {
	raw, err := parseRaw(text)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{raw: raw}

	// Re-encode through JSON so typed decoding behaves identically for both
	// input formats. A failed decode is not a parse failure: the raw document
	// is kept and schema validation reports the shape problems.
	data, err := json.Marshal(raw)
	if err != nil {
		parseLog.Printf("raw document not JSON-encodable: %v", err)
		return manifest, nil
	}
	if err := json.Unmarshal(data, manifest); err != nil {
		parseLog.Printf("typed decode failed, keeping raw-only manifest: %v", err)
		return &Manifest{raw: raw}, nil
	}
	return manifest, nil
}

// parseRaw tries YAML, then JSON. Scalar documents (a bare string or number)
// are rejected: a manifest must be a mapping at the top level.
func parseRaw(text string) (map[string]any, error) {
	var fromYAML map[string]any
	if err := yaml.Unmarshal([]byte(text), &fromYAML); err == nil && fromYAML != nil {
		return fromYAML, nil
	} else if err != nil {
		parseLog.Printf("YAML parse failed: %v", err)
	}

	var fromJSON map[string]any
	if err := json.Unmarshal([]byte(text), &fromJSON); err == nil && fromJSON != nil {
		return fromJSON, nil
	} else if err != nil {
		parseLog.Printf("JSON parse failed: %v", err)
	}

	return nil, ErrInvalidFormat
}
