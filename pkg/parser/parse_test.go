package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
apiVersion: ossa/v1.0.0
kind: Agent
metadata:
  name: billing-agent
  version: 1.0.0
  description: Reconciles invoices
spec:
  capabilities:
    - id: reconcile
      name: Reconcile
      description: Match invoices to payments
  security:
    authentication: required
  api:
    openapi: 3.1.0
`

func TestParseYAML(t *testing.T) {
	m, err := Parse(sampleYAML)
	require.NoError(t, err)

	assert.Equal(t, "ossa/v1.0.0", m.APIVersion)
	assert.Equal(t, "Agent", m.Kind)
	assert.Equal(t, "billing-agent", m.Metadata.Name)
	assert.True(t, m.Nameable())
	require.NotNil(t, m.Spec)
	require.Len(t, m.Spec.Capabilities, 1)
	assert.Equal(t, "reconcile", m.Spec.Capabilities[0].ID)
	assert.NotNil(t, m.Raw())
}

func TestParseJSON(t *testing.T) {
	m, err := Parse(`{"apiVersion":"ossa/v1.0.0","kind":"Agent","metadata":{"name":"x","version":"0.1.0"}}`)
	require.NoError(t, err)

	assert.Equal(t, "Agent", m.Kind)
	assert.Equal(t, "x", m.Metadata.Name)
	assert.Nil(t, m.Spec)
}

func TestParseInvalidText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"malformed flow mapping", "{ not: valid: yaml: json"},
		{"empty input", ""},
		{"bare scalar", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.text)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.EqualError(t, err, InvalidFormatMessage)
		})
	}
}

func TestParseWrongShapeStillYieldsManifest(t *testing.T) {
	// metadata as a string does not match the typed shape; the parse must
	// still succeed so structural validation can report it.
	m, err := Parse(`{"apiVersion":"ossa/v1.0.0","metadata":"oops"}`)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "", m.Metadata.Name)
	assert.Equal(t, "oops", m.Raw()["metadata"])
}

func TestSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want SectionPresence
	}{
		{
			name: "no spec",
			text: `{"apiVersion":"ossa/v1.0.0"}`,
			want: SectionPresence{},
		},
		{
			name: "all four sections",
			text: `{"spec":{"capabilities":[],"security":{},"performance":{},"compliance":{},"api":{}}}`,
			want: SectionPresence{Spec: true, Security: true, Performance: true, Compliance: true, API: true},
		},
		{
			name: "null section is absent",
			text: "spec:\n  security: null\n  api: {}\n",
			want: SectionPresence{Spec: true, API: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Sections())
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(float64(0)))
	assert.True(t, Truthy(true))
	assert.True(t, Truthy("x"))
	assert.True(t, Truthy(map[string]any{}))
	assert.True(t, Truthy([]any{}))
}
