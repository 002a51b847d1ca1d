// Package sentiment provides lexicon-based polarity and subjectivity
// scoring. Polarity ranges from -1 (negative) to 1 (positive),
// subjectivity from 0 (objective) to 1 (subjective). Text with no
// lexicon hits scores neutral (0, 0).
package sentiment

import "github.com/paperiq-labs/paperiq-cli/internal/textproc/segment"

// negationFactor dampens and flips polarity after a negator,
// so "not good" reads mildly negative rather than fully inverted.
const negationFactor = -0.5

// Score is a polarity/subjectivity pair.
type Score struct {
	// Polarity ranges from -1 (negative) to 1 (positive).
	Polarity float64

	// Subjectivity ranges from 0 (objective) to 1 (subjective).
	Subjectivity float64
}

// Analyze scores a piece of text.
func Analyze(text string) Score {
	return analyzeWords(segment.Words(text))
}

// analyzeWords scores an already-tokenised word sequence.
func analyzeWords(words []string) Score {
	var (
		polaritySum     float64
		subjectivitySum float64
		hits            int
	)

	for i, w := range words {
		e, ok := lexicon[w]
		if !ok {
			continue
		}

		pol := e.polarity
		subj := e.subjectivity

		// Look back up to two tokens for modifiers so constructs
		// like "not very good" resolve.
		scale := 1.0
		negated := false
		for back := 1; back <= 2 && i-back >= 0; back++ {
			prev := words[i-back]
			if f, ok := intensifiers[prev]; ok {
				scale *= f
			}
			if _, ok := negators[prev]; ok {
				negated = true
			}
		}

		pol *= scale
		subj = clamp01(subj * scale)
		if negated {
			pol *= negationFactor
		}

		polaritySum += clamp(pol, -1, 1)
		subjectivitySum += subj
		hits++
	}

	if hits == 0 {
		return Score{}
	}
	return Score{
		Polarity:     polaritySum / float64(hits),
		Subjectivity: subjectivitySum / float64(hits),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
