package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ossa-dev/ossa/pkg/console"
	"github.com/ossa-dev/ossa/pkg/validation"
)

// FormatResult renders one validation result for human consumption. The
// result is presented verbatim: validity and level come straight from the
// engine.
func FormatResult(file string, result *validation.Result) string {
	var b strings.Builder

	if result.Valid {
		b.WriteString(console.FormatSuccessMessage(fmt.Sprintf("%s is valid (schema %s)", file, result.SchemaVersion)))
	} else {
		b.WriteString(console.FormatErrorMessage(fmt.Sprintf("%s is invalid (schema %s)", file, result.SchemaVersion)))
	}
	b.WriteString("\n")
	b.WriteString(console.FormatInfoMessage("certification level: " + result.Level))
	b.WriteString("\n")

	for _, issue := range result.Errors {
		b.WriteString("  " + console.FormatErrorMessage(issueLine(issue)) + "\n")
	}
	for _, issue := range result.Warnings {
		b.WriteString("  " + console.FormatWarningMessage(issueLine(issue)) + "\n")
	}
	for _, suggestion := range result.Suggestions {
		b.WriteString("  " + console.FormatDimMessage(fmt.Sprintf("suggestion (%s): %s: %s",
			suggestion.Priority, suggestion.Path, suggestion.Message)) + "\n")
	}

	if result.Compliance != nil {
		b.WriteString(FormatComplianceReport(result.Compliance))
	}

	return b.String()
}

func issueLine(issue validation.Issue) string {
	if issue.Path == "" {
		return issue.Message
	}
	return issue.Path + ": " + issue.Message
}

// FormatResultJSON renders one validation result as a JSON document tagged
// with the source file.
func FormatResultJSON(file string, result *validation.Result) string {
	payload := struct {
		File string `json:"file"`
		*validation.Result
	}{File: file, Result: result}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"file":%q,"error":%q}`, file, err.Error())
	}
	return string(data)
}

// FormatComplianceReport renders per-framework findings as a table followed
// by the aggregate.
func FormatComplianceReport(report *validation.ComplianceReport) string {
	var b strings.Builder

	ids := make([]string, 0, len(report.FrameworkResults))
	for id := range report.FrameworkResults {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	config := console.TableConfig{
		Title:   "Regulatory Compliance",
		Headers: []string{"Framework", "Valid", "Errors", "Warnings"},
	}
	for _, id := range ids {
		result := report.FrameworkResults[id]
		config.Rows = append(config.Rows, []string{
			id,
			fmt.Sprintf("%v", result.Valid),
			fmt.Sprintf("%d", len(result.Errors)),
			fmt.Sprintf("%d", len(result.Warnings)),
		})
	}
	b.WriteString(console.RenderTable(config))

	for _, id := range ids {
		result := report.FrameworkResults[id]
		for _, msg := range result.Errors {
			b.WriteString("  " + console.FormatErrorMessage(id+": "+msg) + "\n")
		}
		for _, msg := range result.Warnings {
			b.WriteString("  " + console.FormatWarningMessage(id+": "+msg) + "\n")
		}
	}

	overall := report.Overall
	summary := fmt.Sprintf("overall: compliant=%v score=%d", overall.Compliant, overall.Score)
	if overall.Compliant {
		b.WriteString(console.FormatSuccessMessage(summary) + "\n")
	} else {
		b.WriteString(console.FormatErrorMessage(summary) + "\n")
	}

	return b.String()
}
