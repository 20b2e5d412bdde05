package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techpulse/techpulse/pkg/config"
	"github.com/techpulse/techpulse/pkg/domain"
)

func newTestClassifier() *Classifier {
	return New(config.ClassifierConfig{
		Rules:              config.DefaultCategoryRules(),
		SentimentThreshold: 0.2,
	})
}

func TestClassifier_Category(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		title   string
		content string
		want    domain.Category
	}{
		{
			name:  "startup funding",
			title: "Acme raises $10M",
			content: "Acme announced a seed round led by a venture capital firm, " +
				"bringing the startup's total funding to $12M.",
			want: domain.CategoryStartups,
		},
		{
			name:  "ai news",
			title: "New LLM beats benchmarks",
			content: "The machine learning model uses a transformer architecture " +
				"trained on a massive dataset.",
			want: domain.CategoryAIML,
		},
		{
			name:    "security breach",
			title:   "Major data leak at retailer",
			content: "Attackers exploited a zero-day vulnerability to deploy ransomware.",
			want:    domain.CategoryCybersecurity,
		},
		{
			name:    "mobile release",
			title:   "New Android flagship announced",
			content: "The smartphone ships with a revamped mobile app experience.",
			want:    domain.CategoryMobile,
		},
		{
			name:    "crypto market",
			title:   "Ethereum upgrade completes",
			content: "The blockchain now supports cheaper smart contract execution.",
			want:    domain.CategoryWeb3,
		},
		{
			name:    "no category keywords",
			title:   "Local bakery wins award",
			content: "The croissants were judged best in town.",
			want:    domain.CategoryOthers,
		},
		{
			name:  "empty input",
			title: "",
			want:  domain.CategoryOthers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.title, tt.content)
			assert.Equal(t, tt.want, res.Category)
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier()

	title := "Acme raises $10M for AI security platform"
	content := "The startup's machine learning product detects ransomware."

	first := c.Classify(title, content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(title, content), "same input must always yield same result")
	}
}

func TestClassifier_EmptyInputFallback(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("", "")
	assert.Equal(t, domain.CategoryOthers, res.Category)
	assert.Equal(t, domain.SentimentNeutral, res.Sentiment)
	assert.Zero(t, res.SentimentScore)
}

func TestClassifier_Sentiment(t *testing.T) {
	c := newTestClassifier()

	positive := c.Classify("Great success", "The wonderful launch was a fantastic achievement, everyone is happy.")
	assert.Equal(t, domain.SentimentPositive, positive.Sentiment)
	assert.Greater(t, positive.SentimentScore, 0.0)

	negative := c.Classify("Terrible failure", "The disastrous outage caused horrible losses and angry customers.")
	assert.Equal(t, domain.SentimentNegative, negative.Sentiment)
	assert.Less(t, negative.SentimentScore, 0.0)

	assert.GreaterOrEqual(t, positive.SentimentScore, -1.0)
	assert.LessOrEqual(t, positive.SentimentScore, 1.0)
}

func TestClassifier_WordBoundaries(t *testing.T) {
	c := newTestClassifier()

	// "ai" inside "maintain" must not trigger ai_ml
	res := c.Classify("How to maintain your garden", "Watering schedules and soil care explained.")
	assert.Equal(t, domain.CategoryOthers, res.Category)
}

func TestClassifier_TieBreakRuleOrder(t *testing.T) {
	c := New(config.ClassifierConfig{
		Rules: []config.CategoryRule{
			{Category: "ai_ml", Keywords: []string{"ai"}},
			{Category: "web3", Keywords: []string{"crypto"}},
		},
		SentimentThreshold: 0.2,
	})

	// one hit each: earlier rule wins
	res := c.Classify("AI meets crypto", "")
	assert.Equal(t, domain.CategoryAIML, res.Category)
}

func TestClassifier_IgnoresUnknownCategories(t *testing.T) {
	c := New(config.ClassifierConfig{
		Rules: []config.CategoryRule{
			{Category: "bogus", Keywords: []string{"anything"}},
			{Category: "mobile", Keywords: []string{"android"}},
		},
		SentimentThreshold: 0.2,
	})

	res := c.Classify("anything about android", "")
	assert.Equal(t, domain.CategoryMobile, res.Category)
}
