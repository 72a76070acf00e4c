package validation

import (
	"slices"

	"github.com/ossa-dev/ossa/pkg/constants"
	"github.com/ossa-dev/ossa/pkg/logger"
	"github.com/ossa-dev/ossa/pkg/parser"
)

var complianceLog = logger.New("validation:compliance")

// presenceRule ties a manifest top-level field to the finding emitted when
// the field is absent.
//
// Regulatory checks deliberately read top-level manifest fields (governance,
// risk_assessment, ...), not spec-nested ones: they are an independent,
// looser data shape than the structural schema and must stay that way until
// the two are unified upstream.
type presenceRule struct {
	field   string
	message string
}

type frameworkRules struct {
	errors   []presenceRule
	warnings []presenceRule
}

var frameworkRuleSet = map[string]frameworkRules{
	"ISO_42001_2023": {
		errors: []presenceRule{
			{field: "governance", message: "Governance framework required for ISO 42001"},
			{field: "risk_management", message: "Risk management process required for ISO 42001"},
		},
		warnings: []presenceRule{
			{field: "data_quality", message: "Data quality management recommended for ISO 42001"},
		},
	},
	"NIST_AI_RMF_1_0": {
		errors: []presenceRule{
			{field: "risk_assessment", message: "Risk assessment required for NIST AI RMF"},
		},
		warnings: []presenceRule{
			{field: "bias_testing", message: "Bias testing recommended for NIST AI RMF"},
		},
	},
	"EU_AI_Act": {
		errors: []presenceRule{
			{field: "risk_classification", message: "Risk classification required for EU AI Act"},
		},
		warnings: []presenceRule{
			{field: "transparency", message: "Transparency documentation recommended for EU AI Act"},
		},
	},
}

// CheckCompliance evaluates a parsed manifest against the requested
// regulatory frameworks. Evaluation is stateless and never fails: an unknown
// framework identifier becomes a single per-framework error and does not
// abort checking of the others.
func CheckCompliance(manifest map[string]any, frameworks []string) *ComplianceReport {
	report := &ComplianceReport{
		FrameworkResults: make(map[string]*FrameworkResult, len(frameworks)),
	}

	for _, id := range frameworks {
		result := checkFramework(manifest, id)
		report.FrameworkResults[id] = result
		report.TotalErrors += len(result.Errors)
		report.TotalWarnings += len(result.Warnings)

		for _, msg := range result.Errors {
			report.Overall.Issues = append(report.Overall.Issues, id+": "+msg)
		}
		for _, msg := range result.Warnings {
			report.Overall.Recommendations = append(report.Overall.Recommendations, id+": "+msg)
		}
	}

	report.Overall.Compliant = report.TotalErrors == 0
	report.Overall.Score = complianceScore(report.TotalErrors, report.TotalWarnings)

	complianceLog.Printf("compliance check: frameworks=%d errors=%d warnings=%d",
		len(frameworks), report.TotalErrors, report.TotalWarnings)
	return report
}

func checkFramework(manifest map[string]any, id string) *FrameworkResult {
	result := &FrameworkResult{Errors: []string{}, Warnings: []string{}}

	if !slices.Contains(constants.SupportedFrameworks, id) {
		result.Errors = append(result.Errors, "Unsupported framework: "+id)
		result.Valid = false
		return result
	}

	rules, specialized := frameworkRuleSet[id]
	if !specialized {
		// Permissive default for supported frameworks without dedicated rules.
		result.Warnings = append(result.Warnings, "Basic validation for "+id)
		result.Valid = true
		return result
	}

	for _, rule := range rules.errors {
		if !parser.Truthy(manifest[rule.field]) {
			result.Errors = append(result.Errors, rule.message)
		}
	}
	for _, rule := range rules.warnings {
		if !parser.Truthy(manifest[rule.field]) {
			result.Warnings = append(result.Warnings, rule.message)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// complianceScore maps error/warning counts onto a 0-100 score.
func complianceScore(errors, warnings int) int {
	score := 100 - 20*errors - 5*warnings
	if score < 0 {
		return 0
	}
	return score
}
