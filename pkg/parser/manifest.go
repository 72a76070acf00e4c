// Package parser parses OSSA agent manifests from YAML or JSON text and
// exposes the manifest both as typed records and as the raw document used for
// schema validation.
package parser

// Manifest is the root agent specification document. Typed fields are a
// best-effort decode: a structurally broken document still yields a Manifest
// (with zero fields) so downstream stages can report errors instead of
// crashing. The raw document is kept verbatim for schema validation.
type Manifest struct {
	APIVersion string    `json:"apiVersion" yaml:"apiVersion"`
	Kind       string    `json:"kind" yaml:"kind"`
	Metadata   Metadata  `json:"metadata" yaml:"metadata"`
	Spec       *Spec     `json:"spec,omitempty" yaml:"spec,omitempty"`

	raw map[string]any
}

// Metadata names and describes an agent.
type Metadata struct {
	Name        string            `json:"name" yaml:"name"`
	Version     string            `json:"version" yaml:"version"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// Spec holds the agent's declared capabilities and its optional maturity
// sections. Optional sections stay as loose maps: their internal shape is
// owned by the JSON schema, not by this package.
type Spec struct {
	Capabilities []Capability   `json:"capabilities" yaml:"capabilities"`
	API          map[string]any `json:"api,omitempty" yaml:"api,omitempty"`
	Security     map[string]any `json:"security,omitempty" yaml:"security,omitempty"`
	Performance  map[string]any `json:"performance,omitempty" yaml:"performance,omitempty"`
	Compliance   map[string]any `json:"compliance,omitempty" yaml:"compliance,omitempty"`
	Frameworks   map[string]any `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
}

// Capability is one declared skill/action unit within spec.capabilities.
type Capability struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	InputSchema  map[string]any `json:"input_schema,omitempty" yaml:"input_schema,omitempty"`
	OutputSchema map[string]any `json:"output_schema,omitempty" yaml:"output_schema,omitempty"`
	Compliance   []string       `json:"compliance,omitempty" yaml:"compliance,omitempty"`
	SLA          map[string]any `json:"sla,omitempty" yaml:"sla,omitempty"`
	Frameworks   []string       `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
}

// SectionPresence records which optional manifest sections are present. It is
// derived once per manifest so the level evaluator and suggestion builder
// never diverge on what "present" means.
type SectionPresence struct {
	Spec        bool
	Security    bool
	Performance bool
	Compliance  bool
	API         bool
}

// Raw returns the raw parsed document. Nil for an empty manifest.
func (m *Manifest) Raw() map[string]any {
	if m == nil {
		return nil
	}
	return m.raw
}

// Nameable reports whether the manifest carries both metadata.name and
// metadata.version.
func (m *Manifest) Nameable() bool {
	return m != nil && m.Metadata.Name != "" && m.Metadata.Version != ""
}

// Sections derives the presence of the optional maturity sections from the
// raw document. Presence follows truthiness: a null or empty-string section
// does not count, but an empty object does.
func (m *Manifest) Sections() SectionPresence {
	var p SectionPresence
	if m == nil || m.raw == nil {
		return p
	}
	specValue, ok := m.raw["spec"]
	if !ok || !Truthy(specValue) {
		return p
	}
	p.Spec = true
	spec, ok := specValue.(map[string]any)
	if !ok {
		return p
	}
	p.Security = Truthy(spec["security"])
	p.Performance = Truthy(spec["performance"])
	p.Compliance = Truthy(spec["compliance"])
	p.API = Truthy(spec["api"])
	return p
}

// Truthy reports whether a decoded YAML/JSON value counts as present.
// Objects and arrays are always truthy, even when empty, matching the
// presence semantics of the reference validator.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
