package logger

import "testing"

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		pattern   string
		want      bool
	}{
		{"wildcard all", "validation:engine", "*", true},
		{"exact match", "validation:engine", "validation:engine", true},
		{"exact mismatch", "validation:engine", "schemas:repo", false},
		{"prefix wildcard", "validation:engine", "validation:*", true},
		{"prefix wildcard mismatch", "schemas:repo", "validation:*", false},
		{"suffix wildcard", "validation:engine", "*engine", true},
		{"middle wildcard", "validation:engine", "validation*engine", true},
		{"middle wildcard mismatch", "validation:level", "validation*engine", false},
		{"no wildcard no match", "validation:engine", "validation", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPattern(tt.namespace, tt.pattern); got != tt.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.namespace, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDisabledLoggerDoesNotPanic(t *testing.T) {
	log := New("test:disabled")
	log.Print("message")
	log.Printf("formatted %d", 42)
	if log.Enabled() {
		t.Skip("DEBUG is set in the environment, skipping disabled-logger check")
	}
}
