// Package validation implements the OSSA validation pipeline: version
// resolution, structural schema validation, compliance level derivation,
// regulatory framework checks and token estimation, composed by Engine into
// one best-effort report.
package validation

// Issue is a single validation finding located by a dot-notation path into
// the manifest ("spec.capabilities"). An empty path means the finding applies
// to the document as a whole.
type Issue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// Suggestion is an actionable recommendation attached to a validation result.
// Suggestions never affect validity.
type Suggestion struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// Result is the unified validation report: one fresh value per request,
// never cached or shared.
//
// Valid reflects structural validation only. Level is an advisory maturity
// tier derived independently: a structurally invalid manifest can still be
// labeled gold, and vice versa.
type Result struct {
	Valid         bool              `json:"valid" console:"header:Valid"`
	Level         string            `json:"level" console:"header:Level"`
	SchemaVersion string            `json:"schemaVersion" console:"header:Schema Version"`
	Errors        []Issue           `json:"errors" console:"title:Errors"`
	Warnings      []Issue           `json:"warnings" console:"title:Warnings"`
	Suggestions   []Suggestion      `json:"suggestions" console:"title:Suggestions"`
	Compliance    *ComplianceReport `json:"compliance,omitempty" console:"title:Compliance"`
}

// ComplianceReport aggregates regulatory framework findings.
type ComplianceReport struct {
	TotalErrors      int                         `json:"totalErrors" console:"header:Total Errors"`
	TotalWarnings    int                         `json:"totalWarnings" console:"header:Total Warnings"`
	FrameworkResults map[string]*FrameworkResult `json:"framework_results" console:"-"`
	Overall          OverallCompliance           `json:"overall" console:"title:Overall"`
}

// FrameworkResult holds the findings for one requested regulatory framework.
// Valid is true exactly when the framework produced zero errors; warnings
// never affect validity.
type FrameworkResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OverallCompliance is the cross-framework aggregate. Score starts at 100 and
// loses 20 points per error and 5 per warning, floored at zero.
type OverallCompliance struct {
	Compliant       bool     `json:"compliant" console:"header:Compliant"`
	Score           int      `json:"score" console:"header:Score"`
	Issues          []string `json:"issues" console:"title:Issues"`
	Recommendations []string `json:"recommendations" console:"title:Recommendations"`
}
