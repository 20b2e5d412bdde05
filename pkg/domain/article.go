package domain

import "time"

// Category is a fixed article category assigned at classification time
type Category string

// article categories, matching the classifier rule set
const (
	CategoryAIML          Category = "ai_ml"
	CategoryStartups      Category = "startups"
	CategoryCybersecurity Category = "cybersecurity"
	CategoryMobile        Category = "mobile"
	CategoryWeb3          Category = "web3"
	CategoryOthers        Category = "others"
)

// Categories lists all valid categories in classifier rule order
var Categories = []Category{
	CategoryAIML, CategoryStartups, CategoryCybersecurity,
	CategoryMobile, CategoryWeb3, CategoryOthers,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Sentiment is the classifier's sentiment label
type Sentiment string

// sentiment labels
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Article represents a stored, classified article. URL is the canonical
// deduplication key, unique across the corpus.
type Article struct {
	ID             int64
	SourceID       int64
	Title          string
	URL            string
	Content        string
	Snippet        string
	Category       Category
	Sentiment      Sentiment
	SentimentScore float64
	ContentHash    string
	Published      time.Time
	FetchedAt      time.Time
	ViewCount      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Candidate is a normalized feed entry before classification and persistence
type Candidate struct {
	SourceID  int64
	Title     string
	URL       string
	Content   string
	Snippet   string
	Published time.Time
}

// UpsertResult reports what an article upsert did
type UpsertResult int

// upsert outcomes
const (
	UpsertCreated UpsertResult = iota
	UpsertUpdated
	UpsertUnchanged
)

// String returns the result name for logging
func (r UpsertResult) String() string {
	switch r {
	case UpsertCreated:
		return "created"
	case UpsertUpdated:
		return "updated"
	case UpsertUnchanged:
		return "unchanged"
	}
	return "unknown"
}

// TimeRange is a named listing window
type TimeRange string

// listing windows
const (
	RangeToday TimeRange = "today"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// ArticleFilter represents filtering criteria for article listings
type ArticleFilter struct {
	Category  Category
	TimeRange TimeRange
	Search    string
	Page      int
	Limit     int
}

// Bookmark is an existence-only (user, article) pair
type Bookmark struct {
	UserID    string
	ArticleID int64
	CreatedAt time.Time
}
