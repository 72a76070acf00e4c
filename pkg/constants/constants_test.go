package constants

import "testing"

func TestSupportedFrameworks(t *testing.T) {
	expected := []string{
		"ISO_42001_2023",
		"NIST_AI_RMF_1_0",
		"EU_AI_Act",
		"FISMA",
		"FedRAMP",
		"StateRAMP",
	}

	if len(SupportedFrameworks) != len(expected) {
		t.Fatalf("SupportedFrameworks length = %d, want %d", len(SupportedFrameworks), len(expected))
	}

	for i, id := range expected {
		if SupportedFrameworks[i] != id {
			t.Errorf("SupportedFrameworks[%d] = %q, want %q", i, SupportedFrameworks[i], id)
		}
	}
}

func TestDefaultSchemaVersion(t *testing.T) {
	if DefaultSchemaVersion != "1.0.0" {
		t.Errorf("DefaultSchemaVersion = %q, want %q", DefaultSchemaVersion, "1.0.0")
	}
}

func TestTokenEstimationConstants(t *testing.T) {
	if CharsPerToken != 4 {
		t.Errorf("CharsPerToken = %d, want 4", CharsPerToken)
	}
	if TokenCompressionRate != 0.8 {
		t.Errorf("TokenCompressionRate = %v, want 0.8", TokenCompressionRate)
	}
}
