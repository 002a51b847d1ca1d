// Package segment splits text into sentences and word tokens.
// It is the shared tokenisation layer for the scoring pipeline.
package segment

import (
	"regexp"
	"strings"
)

// boundary matches a sentence terminator followed by whitespace.
// The split point is placed after the terminator so punctuation stays
// attached to its sentence.
var boundary = regexp.MustCompile(`[.!?]\s+`)

// word matches word tokens including inner apostrophes (don't, it's).
// Letters and digits are matched across scripts, not just ASCII, so
// accented words stay whole.
var word = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// Sentences splits text into trimmed, non-empty sentences.
// Literal "\n" escape sequences left over from dataset dumps are
// replaced with spaces.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range boundary.FindAllStringIndex(text, -1) {
		// Keep the terminator, drop the trailing whitespace.
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		s = strings.ReplaceAll(s, `\n`, " ")
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words tokenises text into lowercase word tokens.
// Leading and trailing apostrophes are stripped so quoted words do not
// produce distinct tokens.
func Words(text string) []string {
	var out []string
	for _, m := range word.FindAllString(strings.ToLower(text), -1) {
		m = strings.Trim(m, "'")
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// UniqueCount returns the number of distinct tokens.
func UniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}
