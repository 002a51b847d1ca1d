package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
	"github.com/paperiq-labs/paperiq-cli/internal/logger"
	"github.com/paperiq-labs/paperiq-cli/internal/textproc/segment"
	"github.com/paperiq-labs/paperiq-cli/internal/textproc/sentiment"
)

// Ensure AnalyzerService implements the interface.
var _ driving.AnalyzerService = (*AnalyzerService)(nil)

// causalMarker matches explicit causal connectives within a sentence.
var causalMarker = regexp.MustCompile(`\b(because|therefore|thus|hence|consequently|so)\b`)

// modalWords are hedging modals that weaken the reasoning score.
var modalWords = map[string]struct{}{
	"may":    {},
	"might":  {},
	"could":  {},
	"should": {},
	"would":  {},
}

// Score weights for the composite.
const (
	weightLanguage  = 0.4
	weightCoherence = 0.3
	weightReasoning = 0.3
)

// AnalyzerService computes heuristic quality scores for text.
// The heuristics are placeholders for a trained model; the scoring
// shape (features, 0-100 components, flagged sentences) is stable.
type AnalyzerService struct {
	store    driven.AnalysisStore
	settings driving.SettingsService
}

// NewAnalyzerService creates a new analyzer service.
// store may be nil, in which case analyses are never persisted.
func NewAnalyzerService(store driven.AnalysisStore, settings driving.SettingsService) *AnalyzerService {
	return &AnalyzerService{
		store:    store,
		settings: settings,
	}
}

// Analyze computes features, scores, flagged sentences and sentiment.
func (s *AnalyzerService) Analyze(
	ctx context.Context,
	text string,
	opts driving.AnalyzeOptions,
) (*domain.Analysis, error) {
	cfg := s.analyzeSettings()

	if len(strings.TrimSpace(text)) < cfg.MinLength {
		return nil, fmt.Errorf("%w: need at least %d characters", domain.ErrTextTooShort, cfg.MinLength)
	}

	logger.Section("Analyze")
	sentences := segment.Sentences(text)
	words := segment.Words(text)
	logger.Debug("segmented %d sentences, %d words", len(sentences), len(words))

	features := computeFeatures(text, sentences, words)
	scores := scoreFeatures(features)
	flagged := flagSentences(sentences, features, cfg.FlagCount)
	sentiments := sentenceSentiments(sentences)

	analysis := &domain.Analysis{
		ID:         uuid.New().String(),
		Title:      opts.Title,
		Source:     opts.Source,
		Text:       text,
		Scores:     scores,
		Features:   features,
		Flagged:    flagged,
		Sentiments: sentiments,
		CreatedAt:  time.Now().UTC(),
	}

	if s.shouldPersist(opts) {
		if err := s.store.Save(ctx, analysis); err != nil {
			// Persistence is best effort; the analysis itself succeeded.
			logger.Warn("saving analysis: %v", err)
		}
	}

	return analysis, nil
}

// analyzeSettings returns the effective analyze settings.
func (s *AnalyzerService) analyzeSettings() domain.AnalyzeSettings {
	defaults := domain.DefaultAppSettings().Analyze
	if s.settings == nil {
		return defaults
	}
	settings, err := s.settings.Get()
	if err != nil {
		return defaults
	}
	return settings.Analyze
}

// shouldPersist reports whether this analysis should be saved.
func (s *AnalyzerService) shouldPersist(opts driving.AnalyzeOptions) bool {
	if s.store == nil || opts.NoSave {
		return false
	}
	if s.settings == nil {
		return true
	}
	settings, err := s.settings.Get()
	if err != nil {
		return true
	}
	return settings.History.Enabled
}

// computeFeatures extracts the raw heuristic measurements.
func computeFeatures(text string, sentences, words []string) domain.Features {
	f := domain.Features{
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}

	if len(words) > 0 {
		var chars, long int
		for _, w := range words {
			n := utf8.RuneCountInString(w)
			chars += n
			if n > 6 {
				long++
			}
		}
		f.AvgWordLen = float64(chars) / float64(len(words))
		f.TTR = float64(segment.UniqueCount(words)) / float64(len(words))
		f.LexSoph = float64(long) / float64(len(words))
	}

	if len(sentences) > 0 {
		lengths := make([]float64, len(sentences))
		var sum float64
		for i, s := range sentences {
			lengths[i] = float64(len(segment.Words(s)))
			sum += lengths[i]
		}
		mean := sum / float64(len(lengths))
		f.AvgSentenceLen = mean

		var variance float64
		for _, l := range lengths {
			variance += (l - mean) * (l - mean)
		}
		variance /= float64(len(lengths))
		f.Coherence = math.Max(0, 1-variance/((mean+1)*(mean+1)))
	}

	f.ReasoningProxy = reasoningProxy(sentences, words)

	overall := sentiment.Analyze(text)
	f.SentimentPolarity = overall.Polarity
	f.SentimentSubjectivity = overall.Subjectivity

	return f
}

// reasoningProxy balances causal connectives against hedging modals.
func reasoningProxy(sentences, words []string) float64 {
	var causal int
	for _, s := range sentences {
		if causalMarker.MatchString(strings.ToLower(s)) {
			causal++
		}
	}

	var modal int
	for _, w := range words {
		if _, ok := modalWords[w]; ok {
			modal++
		}
	}

	score := 0.5 +
		float64(causal)/float64(len(sentences)+1) -
		float64(modal)/float64(len(words)+1)
	return math.Max(0, math.Min(1, score))
}

// scoreFeatures maps raw features onto the 0-100 scorecard.
func scoreFeatures(f domain.Features) domain.Scorecard {
	language := 100 * (0.2*math.Min(1, f.TTR*1.5) +
		0.3*math.Min(1, f.LexSoph*3) +
		0.5*math.Min(1, f.AvgWordLen/5))
	coherence := 100 * f.Coherence
	reasoning := 100 * f.ReasoningProxy

	return domain.Scorecard{
		Composite: round2(weightLanguage*language + weightCoherence*coherence + weightReasoning*reasoning),
		Language:  round2(language),
		Coherence: round2(coherence),
		Reasoning: round2(reasoning),
	}
}

// flagSentences ranks sentences by revision need and returns the worst.
// A sentence accumulates badness for being overlong, lexically
// repetitive, and lacking a causal connective.
func flagSentences(sentences []string, overall domain.Features, count int) []string {
	if count <= 0 || len(sentences) == 0 {
		return nil
	}

	type contribution struct {
		sentence string
		badness  float64
	}

	contributions := make([]contribution, 0, len(sentences))
	longThreshold := math.Max(40, overall.AvgSentenceLen*2)

	for _, s := range sentences {
		words := segment.Words(s)
		if len(words) == 0 {
			contributions = append(contributions, contribution{sentence: s})
			continue
		}

		ttr := float64(segment.UniqueCount(words)) / float64(len(words))

		var long float64
		if float64(len(words)) > longThreshold {
			long = 1
		}

		var causal float64
		if causalMarker.MatchString(strings.ToLower(s)) {
			causal = 1
		}

		badness := long*1.2 + (1-ttr)*1.0 + (1-causal)*0.5
		contributions = append(contributions, contribution{sentence: s, badness: badness})
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].badness > contributions[j].badness
	})

	if count > len(contributions) {
		count = len(contributions)
	}
	flagged := make([]string, count)
	for i := 0; i < count; i++ {
		flagged[i] = contributions[i].sentence
	}
	return flagged
}

// sentenceSentiments scores each sentence individually.
func sentenceSentiments(sentences []string) []domain.SentenceSentiment {
	out := make([]domain.SentenceSentiment, len(sentences))
	for i, s := range sentences {
		score := sentiment.Analyze(s)
		out[i] = domain.SentenceSentiment{
			Text:         s,
			Polarity:     score.Polarity,
			Subjectivity: score.Subjectivity,
		}
	}
	return out
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
