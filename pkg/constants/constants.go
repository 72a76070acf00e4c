// Package constants centralizes shared constants for the OSSA validation engine.
package constants

// DefaultSchemaVersion is the stable schema version used when a manifest does
// not declare a parseable apiVersion and no explicit version was requested.
const DefaultSchemaVersion = "1.0.0"

// ExpectedKind is the only document kind the validator accepts.
const ExpectedKind = "Agent"

// SupportedFrameworks is the closed set of regulatory framework identifiers
// accepted by the compliance checker. Anything else is reported as an
// unsupported framework, never silently ignored.
var SupportedFrameworks = []string{
	"ISO_42001_2023",
	"NIST_AI_RMF_1_0",
	"EU_AI_Act",
	"FISMA",
	"FedRAMP",
	"StateRAMP",
}

// Compliance levels, ordered from lowest to highest maturity.
const (
	LevelBronze = "bronze"
	LevelSilver = "silver"
	LevelGold   = "gold"
)

// Token estimation constants. The estimator is a deliberate approximation
// (roughly 4 characters per token) rather than a real tokenizer.
const (
	CharsPerToken        = 4
	TokenCompressionRate = 0.8
	DefaultTokenCost     = 0.00001
	RequestsPerDay       = 1000
)

// CLIBinaryName is the name of the installed binary, used in help text.
const CLIBinaryName = "ossa"
