package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techpulse/techpulse/pkg/domain"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Test Feed</title>
  <link>https://example.com</link>
  <item>
    <title>Acme raises $10M</title>
    <link>https://x.com/a1</link>
    <description>&lt;p&gt;Acme announced a &lt;b&gt;$10M&lt;/b&gt; seed round today.&lt;/p&gt;</description>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
  </item>
  <item>
    <title>No link entry</title>
    <description>should be skipped</description>
  </item>
</channel>
</rss>`

func TestParser_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TechPulse/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "TechPulse/1.0")
	src := &domain.Source{ID: 1, Name: "test", FeedURL: ts.URL}

	candidates, err := p.Fetch(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, candidates, 1, "entry without link is skipped")

	c := candidates[0]
	assert.Equal(t, int64(1), c.SourceID)
	assert.Equal(t, "Acme raises $10M", c.Title)
	assert.Equal(t, "https://x.com/a1", c.URL)
	assert.Equal(t, "Acme announced a $10M seed round today.", c.Snippet, "HTML stripped from snippet")
	assert.Equal(t, 2006, c.Published.Year())
}

func TestParser_Fetch_Unreachable(t *testing.T) {
	p := NewParser(500*time.Millisecond, "TechPulse/1.0")
	src := &domain.Source{ID: 1, FeedURL: "http://127.0.0.1:1/feed.xml"}

	_, err := p.Fetch(context.Background(), src)
	require.Error(t, err)

	var unreachable *domain.SourceUnreachableError
	assert.True(t, errors.As(err, &unreachable), "transport failure maps to SourceUnreachableError")
}

func TestParser_Fetch_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "TechPulse/1.0")
	_, err := p.Fetch(context.Background(), &domain.Source{FeedURL: ts.URL})
	require.Error(t, err)

	var unreachable *domain.SourceUnreachableError
	assert.True(t, errors.As(err, &unreachable))
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestParser_Fetch_Malformed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "TechPulse/1.0")
	_, err := p.Fetch(context.Background(), &domain.Source{FeedURL: ts.URL})
	require.Error(t, err)

	var malformed *domain.MalformedFeedError
	assert.True(t, errors.As(err, &malformed), "parse failure maps to MalformedFeedError")
}

func TestParser_SnippetTruncation(t *testing.T) {
	p := NewParser(time.Second, "TechPulse/1.0")

	long := ""
	for i := 0; i < 100; i++ {
		long += "lengthy words "
	}
	snippet := p.snippet(long, "")
	assert.LessOrEqual(t, len(snippet), maxSnippetLen+3)
	assert.True(t, len(snippet) > 0)
	assert.Contains(t, snippet, "...")
}
