package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Neutral(t *testing.T) {
	s := Analyze("The measurements were recorded at noon.")
	assert.Zero(t, s.Polarity)
	assert.Zero(t, s.Subjectivity)
}

func TestAnalyze_Positive(t *testing.T) {
	s := Analyze("The results are excellent.")
	assert.InDelta(t, 1.0, s.Polarity, 1e-9)
	assert.InDelta(t, 1.0, s.Subjectivity, 1e-9)
}

func TestAnalyze_Negative(t *testing.T) {
	s := Analyze("The approach is flawed and unreliable.")
	assert.Less(t, s.Polarity, 0.0)
	assert.Greater(t, s.Subjectivity, 0.0)
}

func TestAnalyze_Negation(t *testing.T) {
	plain := Analyze("the design is good")
	negated := Analyze("the design is not good")

	assert.Greater(t, plain.Polarity, 0.0)
	assert.Less(t, negated.Polarity, 0.0)
	// Negation dampens rather than fully inverts.
	assert.Greater(t, negated.Polarity, -plain.Polarity)
}

func TestAnalyze_Intensifier(t *testing.T) {
	plain := Analyze("a good result")
	boosted := Analyze("a very good result")
	damped := Analyze("a slightly good result")

	assert.Greater(t, boosted.Polarity, plain.Polarity)
	assert.Less(t, damped.Polarity, plain.Polarity)
}

func TestAnalyze_IntensifiedNegation(t *testing.T) {
	s := Analyze("the method is not very good")
	// 0.7 * 1.3 * -0.5
	assert.InDelta(t, -0.455, s.Polarity, 1e-9)
}

func TestAnalyze_MixedAverages(t *testing.T) {
	s := Analyze("good good bad")
	// (0.7 + 0.7 - 0.7) / 3
	assert.InDelta(t, 0.7/3, s.Polarity, 1e-9)
}

func TestAnalyze_PolarityBounds(t *testing.T) {
	s := Analyze("extremely excellent and extremely terrible results")
	assert.LessOrEqual(t, s.Polarity, 1.0)
	assert.GreaterOrEqual(t, s.Polarity, -1.0)
	assert.LessOrEqual(t, s.Subjectivity, 1.0)
}
