package domain

import "time"

// MinTextLength is the minimum number of characters (after trimming)
// required for an analysis. Shorter input returns ErrTextTooShort.
const MinTextLength = 20

// Analysis is a single scored evaluation of a piece of text.
// It is the canonical record persisted to the history store.
type Analysis struct {
	// ID is the unique identifier for the analysis.
	ID string

	// Title is a human-readable label, usually derived from the
	// source file name. Empty for ad-hoc text.
	Title string

	// Source records where the text came from (file path, "stdin",
	// "http", "mcp", "tui").
	Source string

	// Text is the full input text that was analysed.
	Text string

	// Scores holds the 0-100 component and composite scores.
	Scores Scorecard

	// Features holds the raw heuristic measurements behind the scores.
	Features Features

	// Flagged lists the sentences most likely to need revision,
	// worst first.
	Flagged []string

	// Sentiments holds per-sentence sentiment, in document order.
	Sentiments []SentenceSentiment

	// CreatedAt is when the analysis was performed.
	CreatedAt time.Time
}

// Scorecard holds the 0-100 quality scores for an analysis.
type Scorecard struct {
	// Composite is the weighted overall score.
	Composite float64 `json:"composite"`

	// Language scores vocabulary and word-level sophistication.
	Language float64 `json:"language"`

	// Coherence scores the evenness of sentence flow.
	Coherence float64 `json:"coherence"`

	// Reasoning scores the presence of causal argumentation.
	Reasoning float64 `json:"reasoning"`
}

// Band returns a human-readable quality band for the composite score.
func (s Scorecard) Band() string {
	switch {
	case s.Composite >= 90:
		return "Exceptional"
	case s.Composite >= 80:
		return "Strong"
	case s.Composite >= 70:
		return "Good"
	case s.Composite >= 60:
		return "Adequate"
	default:
		return "Needs improvement"
	}
}

// Features holds the raw heuristic measurements extracted from a text.
// All ratio values are in [0, 1].
type Features struct {
	// WordCount is the total number of word tokens.
	WordCount int `json:"word_count"`

	// SentenceCount is the number of detected sentences.
	SentenceCount int `json:"sentence_count"`

	// AvgSentenceLen is the mean words per sentence.
	AvgSentenceLen float64 `json:"avg_sentence_len"`

	// AvgWordLen is the mean characters per word.
	AvgWordLen float64 `json:"avg_word_len"`

	// TTR is the type-token ratio (unique words / total words).
	TTR float64 `json:"ttr"`

	// LexSoph is the share of words longer than six characters.
	LexSoph float64 `json:"lex_soph"`

	// Coherence measures evenness of sentence lengths.
	Coherence float64 `json:"coherence"`

	// ReasoningProxy measures causal markers against hedging modals.
	ReasoningProxy float64 `json:"reasoning_proxy"`

	// SentimentPolarity is the document tone, -1 (negative) to 1 (positive).
	SentimentPolarity float64 `json:"sentiment_polarity"`

	// SentimentSubjectivity is 0 (objective) to 1 (subjective).
	SentimentSubjectivity float64 `json:"sentiment_subjectivity"`
}

// SentenceSentiment is the sentiment of a single sentence.
type SentenceSentiment struct {
	// Text is the sentence itself.
	Text string `json:"text"`

	// Polarity ranges from -1 (negative) to 1 (positive).
	Polarity float64 `json:"polarity"`

	// Subjectivity ranges from 0 (objective) to 1 (subjective).
	Subjectivity float64 `json:"subjectivity"`
}
