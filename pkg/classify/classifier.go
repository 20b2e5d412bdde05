package classify

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/techpulse/techpulse/pkg/config"
	"github.com/techpulse/techpulse/pkg/domain"
)

// Classifier assigns a category and a sentiment to an article. It is a pure
// function of the input text: the same title and content always produce the
// same result for a given rule set, which keeps the ingestion pipeline
// idempotent under re-fetch.
type Classifier struct {
	rules     []rule
	threshold float64
	analyzer  *govader.SentimentIntensityAnalyzer
}

type rule struct {
	category domain.Category
	keywords []string
}

// Result is a classification outcome
type Result struct {
	Category       domain.Category
	Sentiment      domain.Sentiment
	SentimentScore float64
}

// New creates a classifier from the configured rule set. Unknown categories
// in the config are ignored; rule order defines tie-breaking priority.
func New(cfg config.ClassifierConfig) *Classifier {
	rules := make([]rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		category := domain.Category(r.Category)
		if !category.Valid() {
			continue
		}
		keywords := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			keywords = append(keywords, strings.ToLower(strings.TrimSpace(kw)))
		}
		rules = append(rules, rule{category: category, keywords: keywords})
	}

	threshold := cfg.SentimentThreshold
	if threshold <= 0 {
		threshold = 0.2
	}

	return &Classifier{
		rules:     rules,
		threshold: threshold,
		analyzer:  govader.NewSentimentIntensityAnalyzer(),
	}
}

// Classify assigns exactly one category and a sentiment to the given text.
// Empty input falls back to the others category with neutral sentiment.
func (c *Classifier) Classify(title, content string) Result {
	text := strings.TrimSpace(title + " " + content)
	if text == "" {
		return Result{Category: domain.CategoryOthers, Sentiment: domain.SentimentNeutral}
	}

	return Result{
		Category:       c.category(text),
		Sentiment:      c.sentimentLabel(text),
		SentimentScore: c.sentimentScore(text),
	}
}

// category picks the rule with the most keyword hits; ties go to the rule
// declared first, no hits at all fall back to others
func (c *Classifier) category(text string) domain.Category {
	padded := " " + strings.ToLower(text) + " "

	best := domain.CategoryOthers
	bestHits := 0
	for _, r := range c.rules {
		hits := 0
		for _, kw := range r.keywords {
			if matchKeyword(padded, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = r.category
			bestHits = hits
		}
	}
	return best
}

func (c *Classifier) sentimentScore(text string) float64 {
	return c.analyzer.PolarityScores(text).Compound
}

func (c *Classifier) sentimentLabel(text string) domain.Sentiment {
	score := c.sentimentScore(text)
	switch {
	case score >= c.threshold:
		return domain.SentimentPositive
	case score <= -c.threshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// matchKeyword checks for a word-boundary occurrence of the keyword. Short
// keywords like "ai" or "vc" would otherwise match inside unrelated words.
func matchKeyword(paddedText, keyword string) bool {
	idx := 0
	for {
		pos := strings.Index(paddedText[idx:], keyword)
		if pos < 0 {
			return false
		}
		pos += idx

		before := paddedText[pos-1]
		afterIdx := pos + len(keyword)
		var after byte = ' '
		if afterIdx < len(paddedText) {
			after = paddedText[afterIdx]
		}
		if !isWordChar(before) && !isWordChar(after) {
			return true
		}
		idx = pos + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
