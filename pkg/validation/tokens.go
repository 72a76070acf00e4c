package validation

import (
	"github.com/ossa-dev/ossa/pkg/constants"
)

// TokenEstimate approximates token usage and cost for a text payload. It is
// an optimistic placeholder (roughly four characters per token, fixed 0.8
// compression) and must not be treated as a measured result.
type TokenEstimate struct {
	Model            string   `json:"model" console:"header:Model"`
	TotalTokens      int      `json:"totalTokens" console:"header:Total Tokens"`
	CompressedTokens int      `json:"compressedTokens" console:"header:Compressed Tokens"`
	CompressionRatio float64  `json:"compressionRatio" console:"header:Compression Ratio"`
	EstimatedCost    float64  `json:"estimatedCost" console:"header:Cost,format:cost"`
	DailyCost        float64  `json:"dailyCost" console:"header:Daily Cost,format:cost"`
	MonthlyCost      float64  `json:"monthlyCost" console:"header:Monthly Cost,format:cost"`
	AnnualCost       float64  `json:"annualCost" console:"header:Annual Cost,format:cost"`
	Optimizations    []string `json:"optimizations" console:"title:Suggested Optimizations"`
}

// modelTokenCost is the per-token cost by model name. Unknown models fall
// back to the default rate.
var modelTokenCost = map[string]float64{
	"gpt-4":           0.00003,
	"gpt-4o":          0.00001,
	"gpt-4o-mini":     0.0000006,
	"claude-3-opus":   0.000015,
	"claude-3-sonnet": 0.000003,
	"gemini-pro":      0.0000005,
}

// defaultModel is reported when the caller does not name a model.
const defaultModel = "default"

// EstimateTokens approximates token count and cost for arbitrary text.
// It never fails; an empty text yields a zero estimate.
func EstimateTokens(text, model string) *TokenEstimate {
	totalTokens := (len(text) + constants.CharsPerToken - 1) / constants.CharsPerToken
	compressedTokens := int(float64(totalTokens) * constants.TokenCompressionRate)

	rate := constants.DefaultTokenCost
	name := defaultModel
	if model != "" {
		name = model
		if modelRate, ok := modelTokenCost[model]; ok {
			rate = modelRate
		}
	}

	cost := float64(totalTokens) * rate
	daily := cost * constants.RequestsPerDay

	return &TokenEstimate{
		Model:            name,
		TotalTokens:      totalTokens,
		CompressedTokens: compressedTokens,
		CompressionRatio: constants.TokenCompressionRate,
		EstimatedCost:    cost,
		DailyCost:        daily,
		MonthlyCost:      daily * 30,
		AnnualCost:       daily * 365,
		Optimizations:    []string{"whitespace_removal", "semantic_compression"},
	}
}
