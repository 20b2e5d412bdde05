package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/techpulse/techpulse/pkg/domain"
)

// maxSnippetLen bounds the sanitized snippet stored with an article
const maxSnippetLen = 300

// Parser fetches a source's feed and normalizes entries into article
// candidates. It has no persistence side effects.
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser with the given fetch timeout
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Fetch retrieves and normalizes the feed of a single source. Transport
// failures return *domain.SourceUnreachableError, parse failures return
// *domain.MalformedFeedError; either way the caller treats the source as
// failed for this cycle only.
func (p *Parser) Fetch(ctx context.Context, src *domain.Source) ([]domain.Candidate, error) {
	body, err := p.fetch(ctx, src.FeedURL)
	if err != nil {
		return nil, &domain.SourceUnreachableError{URL: src.FeedURL, Err: err}
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, &domain.MalformedFeedError{URL: src.FeedURL, Err: err}
	}

	candidates := make([]domain.Candidate, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link == "" { // no canonical URL, nothing to deduplicate on
			continue
		}

		candidate := domain.Candidate{
			SourceID: src.ID,
			Title:    strings.TrimSpace(item.Title),
			URL:      item.Link,
			Content:  item.Content,
			Snippet:  p.snippet(item.Description, item.Content),
		}

		if item.PublishedParsed != nil {
			candidate.Published = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			candidate.Published = item.UpdatedParsed.UTC()
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// snippet builds a short plain-text teaser from the entry description,
// falling back to content when the description is empty
func (p *Parser) snippet(description, content string) string {
	text := description
	if text == "" {
		text = content
	}

	text = p.sanitizer.Sanitize(text)
	text = strings.Join(strings.Fields(text), " ")

	if len(text) > maxSnippetLen {
		cut := strings.LastIndex(text[:maxSnippetLen], " ")
		if cut <= 0 {
			cut = maxSnippetLen
		}
		text = text[:cut] + "..."
	}
	return text
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
