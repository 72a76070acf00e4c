package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ossa-dev/ossa/pkg/parser"
)

func manifestWithSections(t *testing.T, sections ...string) *parser.Manifest {
	t.Helper()
	spec := map[string]any{"capabilities": []any{map[string]any{"id": "c1", "name": "n"}}}
	for _, s := range sections {
		spec[s] = map[string]any{}
	}
	doc := map[string]any{
		"apiVersion": "ossa/v1.0.0",
		"kind":       "Agent",
		"metadata":   map[string]any{"name": "x", "version": "1.0.0"},
		"spec":       spec,
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	m, err := parser.Parse(string(data))
	require.NoError(t, err)
	return m
}

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		name     string
		sections []string
		want     string
	}{
		{"all four sections is gold", []string{"security", "performance", "compliance", "api"}, "gold"},
		{"security and api is silver", []string{"security", "api"}, "silver"},
		{"performance and api is silver", []string{"performance", "api"}, "silver"},
		{"three of four is silver", []string{"security", "performance", "api"}, "silver"},
		{"api alone is bronze", []string{"api"}, "bronze"},
		{"security alone is bronze", []string{"security"}, "bronze"},
		{"no optional sections is bronze", nil, "bronze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineLevel(manifestWithSections(t, tt.sections...))
			if got != tt.want {
				t.Errorf("DetermineLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineLevelNoSpec(t *testing.T) {
	m, err := parser.Parse(`{"apiVersion":"ossa/v1.0.0","kind":"Agent"}`)
	require.NoError(t, err)
	if got := DetermineLevel(m); got != "bronze" {
		t.Errorf("DetermineLevel() = %q, want bronze", got)
	}
}

// Removing any one of the four gold sections must never leave the level at
// gold.
func TestGoldRequiresAllFourSections(t *testing.T) {
	all := []string{"security", "performance", "compliance", "api"}
	for _, dropped := range all {
		remaining := make([]string, 0, 3)
		for _, s := range all {
			if s != dropped {
				remaining = append(remaining, s)
			}
		}
		got := DetermineLevel(manifestWithSections(t, remaining...))
		if got == "gold" {
			t.Errorf("dropping %s still yields gold", dropped)
		}
	}
}
