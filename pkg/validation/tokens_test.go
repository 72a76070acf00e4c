package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	estimate := EstimateTokens(strings.Repeat("a", 400), "")

	assert.Equal(t, 100, estimate.TotalTokens)
	assert.Equal(t, 80, estimate.CompressedTokens)
	assert.Equal(t, 0.8, estimate.CompressionRatio)
	assert.InDelta(t, 0.001, estimate.EstimatedCost, 1e-9)
	assert.Equal(t, "default", estimate.Model)
	assert.Equal(t, []string{"whitespace_removal", "semantic_compression"}, estimate.Optimizations)
}

func TestEstimateTokensRoundsUp(t *testing.T) {
	assert.Equal(t, 1, EstimateTokens("a", "").TotalTokens)
	assert.Equal(t, 1, EstimateTokens("abcd", "").TotalTokens)
	assert.Equal(t, 2, EstimateTokens("abcde", "").TotalTokens)
}

func TestEstimateTokensEmptyText(t *testing.T) {
	estimate := EstimateTokens("", "")

	assert.Zero(t, estimate.TotalTokens)
	assert.Zero(t, estimate.CompressedTokens)
	assert.Zero(t, estimate.EstimatedCost)
}

func TestEstimateTokensMonotonic(t *testing.T) {
	texts := []string{"", "a", "ab", "abcd", "abcdefgh", strings.Repeat("x", 1000), strings.Repeat("x", 5000)}
	previous := -1
	for _, text := range texts {
		total := EstimateTokens(text, "").TotalTokens
		assert.GreaterOrEqual(t, total, previous, "token count must grow with text length")
		previous = total
	}
}

func TestEstimateTokensModelRates(t *testing.T) {
	text := strings.Repeat("a", 4000) // 1000 tokens

	gpt4 := EstimateTokens(text, "gpt-4")
	assert.Equal(t, "gpt-4", gpt4.Model)
	assert.InDelta(t, 0.03, gpt4.EstimatedCost, 1e-9)

	unknown := EstimateTokens(text, "mystery-model")
	assert.Equal(t, "mystery-model", unknown.Model)
	assert.InDelta(t, 0.01, unknown.EstimatedCost, 1e-9)
}

func TestEstimateTokensCostProjections(t *testing.T) {
	estimate := EstimateTokens(strings.Repeat("a", 4000), "")

	assert.InDelta(t, estimate.EstimatedCost*1000, estimate.DailyCost, 1e-9)
	assert.InDelta(t, estimate.DailyCost*30, estimate.MonthlyCost, 1e-9)
	assert.InDelta(t, estimate.DailyCost*365, estimate.AnnualCost, 1e-9)
}
