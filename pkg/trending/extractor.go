// Package trending tallies topic mentions over fixed time windows and keeps
// a ranked snapshot per window in storage.
package trending

import (
	"strings"
	"unicode"
)

// TopicExtractor pulls normalized topics out of a single article. Extraction
// must be deterministic so repeated aggregation runs produce identical
// snapshots.
type TopicExtractor interface {
	Topics(title, snippet string) []string
}

// defaultStopwords are always excluded from keyword topics, on top of any
// configured extras
var defaultStopwords = []string{
	"a", "about", "after", "all", "also", "an", "and", "are", "as", "at",
	"be", "been", "but", "by", "can", "could", "do", "for", "from", "get",
	"has", "have", "he", "her", "his", "how", "if", "in", "into", "is",
	"it", "its", "just", "like", "may", "more", "most", "new", "no", "not",
	"now", "of", "on", "one", "or", "out", "over", "say", "says", "she",
	"should", "so", "than", "that", "the", "their", "them", "there", "these",
	"they", "this", "to", "top", "up", "was", "we", "were", "what", "when",
	"which", "while", "who", "why", "will", "with", "would", "you", "your",
}

// KeywordExtractor is the default topic extractor: lowercased words from the
// title and snippet, minus stopwords and short tokens, deduplicated per
// article so one article counts a topic once.
type KeywordExtractor struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewKeywordExtractor creates a keyword extractor with the built-in stopword
// list plus any extra stopwords
func NewKeywordExtractor(extraStopwords []string) *KeywordExtractor {
	stopwords := make(map[string]struct{}, len(defaultStopwords)+len(extraStopwords))
	for _, w := range defaultStopwords {
		stopwords[w] = struct{}{}
	}
	for _, w := range extraStopwords {
		stopwords[strings.ToLower(w)] = struct{}{}
	}
	return &KeywordExtractor{stopwords: stopwords, minLen: 3}
}

// Topics returns the article's topics in first-seen order
func (e *KeywordExtractor) Topics(title, snippet string) []string {
	seen := make(map[string]struct{})
	var topics []string

	for _, token := range tokenize(title + " " + snippet) {
		if len(token) < e.minLen {
			continue
		}
		if _, stop := e.stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		topics = append(topics, token)
	}
	return topics
}

// tokenize splits text into lowercased word tokens, keeping letters, digits
// and intra-word hyphens
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		token := strings.Trim(b.String(), "-")
		b.Reset()
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
