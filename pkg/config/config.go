package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:techpulse.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Sources []Source `yaml:"sources" json:"sources" jsonschema:"description=Feed sources to ingest"`

	Classifier ClassifierConfig `yaml:"classifier" json:"classifier" jsonschema:"description=Article classification rules"`

	Trending TrendingConfig `yaml:"trending" json:"trending" jsonschema:"description=Trending aggregation settings"`

	AI AIConfig `yaml:"ai" json:"ai" jsonschema:"description=AI completion boundary for article conversations"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-text content extraction settings"`
}

// Source describes one feed endpoint to ingest
type Source struct {
	Name          string        `yaml:"name" json:"name" jsonschema:"required,description=Display name"`
	URL           string        `yaml:"url" json:"url" jsonschema:"description=Origin site URL"`
	FeedURL       string        `yaml:"feed_url" json:"feed_url" jsonschema:"required,description=RSS/Atom feed URL"`
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Whether the source is fetched"`
	FetchInterval time.Duration `yaml:"fetch_interval" json:"fetch_interval" jsonschema:"default=30m,description=Per-source fetch cadence"`
}

// ScheduleConfig holds scheduler settings
type ScheduleConfig struct {
	FetchTimeout      time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Timeout for a single feed fetch"`
	TrendingInterval  time.Duration `yaml:"trending_interval" json:"trending_interval" jsonschema:"default=15m,description=Cadence of trending recomputation"`
	MaxWorkers        int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent source cycles"`
	RetryAttempts     int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=5,description=Storage retry attempts on lock errors"`
	RetryInitialDelay time.Duration `yaml:"retry_initial_delay" json:"retry_initial_delay" jsonschema:"default=100ms,description=Initial storage retry delay"`
	RetryMaxDelay     time.Duration `yaml:"retry_max_delay" json:"retry_max_delay" jsonschema:"default=2s,description=Maximum storage retry delay"`
}

// CategoryRule maps a category to the keywords that vote for it. Rules are
// matched in declared order; ties go to the earlier rule.
type CategoryRule struct {
	Category string   `yaml:"category" json:"category" jsonschema:"required,description=Category name (ai_ml startups cybersecurity mobile web3 others)"`
	Keywords []string `yaml:"keywords" json:"keywords" jsonschema:"required,description=Lowercase keywords and phrases voting for the category"`
}

// ClassifierConfig holds classification rules and thresholds
type ClassifierConfig struct {
	Rules              []CategoryRule `yaml:"rules" json:"rules" jsonschema:"description=Category keyword rules in priority order"`
	SentimentThreshold float64        `yaml:"sentiment_threshold" json:"sentiment_threshold" jsonschema:"default=0.2,description=Absolute compound score above which sentiment is labeled positive/negative"`
}

// TrendingConfig holds trending aggregation tunables
type TrendingConfig struct {
	MinMentions int      `yaml:"min_mentions" json:"min_mentions" jsonschema:"default=2,description=Topics below this mention count are dropped"`
	MaxTopics   int      `yaml:"max_topics" json:"max_topics" jsonschema:"default=20,description=Maximum topics kept per window"`
	Stopwords   []string `yaml:"stopwords" json:"stopwords" jsonschema:"description=Additional stopwords for topic extraction"`
}

// AIConfig holds the external completion boundary configuration
type AIConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ExtractionConfig holds full-text extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text extraction for articles without feed content"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=TechPulse/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:techpulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Schedule.FetchTimeout == 0 {
		cfg.Schedule.FetchTimeout = 30 * time.Second
	}
	if cfg.Schedule.TrendingInterval == 0 {
		cfg.Schedule.TrendingInterval = 15 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.RetryAttempts == 0 {
		cfg.Schedule.RetryAttempts = 5
	}
	if cfg.Schedule.RetryInitialDelay == 0 {
		cfg.Schedule.RetryInitialDelay = 100 * time.Millisecond
	}
	if cfg.Schedule.RetryMaxDelay == 0 {
		cfg.Schedule.RetryMaxDelay = 2 * time.Second
	}

	for i := range cfg.Sources {
		if cfg.Sources[i].FetchInterval == 0 {
			cfg.Sources[i].FetchInterval = 30 * time.Minute
		}
	}

	if cfg.Classifier.SentimentThreshold == 0 {
		cfg.Classifier.SentimentThreshold = 0.2
	}
	if len(cfg.Classifier.Rules) == 0 {
		cfg.Classifier.Rules = DefaultCategoryRules()
	}

	if cfg.Trending.MinMentions == 0 {
		cfg.Trending.MinMentions = 2
	}
	if cfg.Trending.MaxTopics == 0 {
		cfg.Trending.MaxTopics = 20
	}

	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 1000
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30 * time.Second
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "TechPulse/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate sources
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d].name is required", i)
		}
		if src.FeedURL == "" {
			return fmt.Errorf("sources[%d].feed_url is required", i)
		}
		if src.FetchInterval < time.Minute {
			return fmt.Errorf("sources[%d].fetch_interval must be at least 1 minute", i)
		}
	}

	// validate classifier rules
	for i, rule := range cfg.Classifier.Rules {
		if rule.Category == "" {
			return fmt.Errorf("classifier.rules[%d].category is required", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("classifier.rules[%d].keywords must not be empty", i)
		}
	}
	if cfg.Classifier.SentimentThreshold < 0 || cfg.Classifier.SentimentThreshold > 1 {
		return fmt.Errorf("classifier.sentiment_threshold must be between 0 and 1")
	}

	// validate trending config
	if cfg.Trending.MinMentions < 1 {
		return fmt.Errorf("trending.min_mentions must be at least 1")
	}

	// validate AI config
	if cfg.AI.Model == "" {
		return fmt.Errorf("ai.model is required")
	}
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}

	// validate extraction config
	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	return nil
}

// DefaultCategoryRules returns the built-in category keyword table, used when
// the config does not declare its own rules
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Category: "ai_ml", Keywords: []string{
			"ai", "artificial intelligence", "machine learning", "deep learning",
			"neural network", "llm", "gpt", "chatbot", "openai", "anthropic",
			"transformer", "model training", "computer vision",
		}},
		{Category: "startups", Keywords: []string{
			"startup", "funding", "raises", "seed round", "series a", "series b",
			"venture capital", "vc", "valuation", "founder", "accelerator",
			"acquisition", "ipo", "unicorn",
		}},
		{Category: "cybersecurity", Keywords: []string{
			"security", "vulnerability", "exploit", "breach", "ransomware",
			"malware", "phishing", "zero-day", "cve", "hacker", "encryption",
			"data leak", "ddos",
		}},
		{Category: "mobile", Keywords: []string{
			"android", "ios", "iphone", "smartphone", "mobile app", "app store",
			"play store", "tablet", "wearable", "5g",
		}},
		{Category: "web3", Keywords: []string{
			"blockchain", "crypto", "cryptocurrency", "bitcoin", "ethereum",
			"nft", "defi", "web3", "smart contract", "token", "dao",
		}},
	}
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAIConfig returns the AI boundary configuration
func (c *Config) GetAIConfig() AIConfig {
	return c.AI
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}
