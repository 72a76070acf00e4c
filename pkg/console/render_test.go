package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type reportFixture struct {
	Name    string  `console:"header:Agent"`
	Valid   bool    `console:"header:Valid"`
	Cost    float64 `console:"header:Cost,format:cost"`
	Skipped string  `console:"-"`
	Notes   string  `console:"header:Notes,omitempty"`
}

func TestRenderStructKeyValue(t *testing.T) {
	out := RenderStruct(reportFixture{Name: "billing-agent", Valid: true, Cost: 0.0125, Skipped: "hidden"})

	assert.Contains(t, out, "Agent")
	assert.Contains(t, out, "billing-agent")
	assert.Contains(t, out, "$0.013")
	assert.NotContains(t, out, "hidden")
	// omitempty zero value is dropped
	assert.NotContains(t, out, "Notes")
}

func TestRenderStructSliceAsTable(t *testing.T) {
	type wrapper struct {
		Items []reportFixture `console:"title:Results"`
	}
	out := RenderStruct(wrapper{Items: []reportFixture{
		{Name: "a", Valid: true},
		{Name: "b", Valid: false},
	}})

	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "Agent")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestRenderTableAlignment(t *testing.T) {
	out := RenderTable(TableConfig{
		Headers: []string{"Version", "Status"},
		Rows: [][]string{
			{"1.0.0", "stable"},
			{"0.2.2", "legacy"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Version")
	assert.Contains(t, lines[1], "---")
	for _, line := range lines[2:] {
		assert.True(t, strings.Index(line, " ") >= len("0.2.2"), "columns should be aligned: %q", line)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(TableConfig{}))
}

func TestFormatMessagesKeepContent(t *testing.T) {
	assert.Contains(t, FormatErrorMessage("schema missing"), "schema missing")
	assert.Contains(t, FormatWarningMessage("no bias testing"), "no bias testing")
	assert.Contains(t, FormatInfoMessage("validating"), "validating")
	assert.Contains(t, FormatSuccessMessage("valid"), "valid")
}
