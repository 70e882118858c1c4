package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newspulse/internal/source"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First story</title>
      <link>https://example.com/1</link>
      <description>&lt;p&gt;Something happened&lt;/p&gt;</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
      <enclosure url="https://example.com/1.jpg" type="image/jpeg" length="1"/>
    </item>
    <item>
      <title>No link story</title>
      <description>dropped</description>
    </item>
    <item>
      <title></title>
      <link>https://example.com/3</link>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/2</link>
    </item>
  </channel>
</rss>`

func TestFetchReturnsBodyOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "NewsPulse") {
			t.Errorf("request missing identifying User-Agent, got %q", ua)
		}
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewFetcher()
	body, err := f.Fetch(context.Background(), source.Source{Name: "test", URL: srv.URL})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if !strings.Contains(string(body), "First story") {
		t.Fatalf("unexpected body: %q", string(body)[:min(80, len(body))])
	}
}

func TestFetchErrorOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFetcher()
	if _, err := f.Fetch(context.Background(), source.Source{Name: "down", URL: srv.URL}); err == nil {
		t.Fatalf("expected error for 503 response")
	}
}

func TestFetchErrorOnTransportFailure(t *testing.T) {
	f := NewFetcher()
	// 保留地址段，连接必然失败
	_, err := f.Fetch(context.Background(), source.Source{Name: "unreachable", URL: "http://127.0.0.1:1/feed"})
	if err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestParseFeedDropsEntriesMissingTitleOrLink(t *testing.T) {
	entries, err := ParseFeed([]byte(sampleRSS))
	if err != nil {
		t.Fatalf("ParseFeed error: %v", err)
	}
	// 4 个 item 中只有 2 个同时具备标题和链接
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Title != "First story" || entries[0].Link != "https://example.com/1" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}

func TestParseFeedExtractsTimeAndImage(t *testing.T) {
	entries, err := ParseFeed([]byte(sampleRSS))
	if err != nil {
		t.Fatalf("ParseFeed error: %v", err)
	}

	first := entries[0]
	want := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Fatalf("PublishedAt = %v, want %v", first.PublishedAt, want)
	}
	if first.ImageURL != "https://example.com/1.jpg" {
		t.Fatalf("ImageURL = %q, want enclosure url", first.ImageURL)
	}

	// 第二条没有时间和配图，应为零值
	second := entries[1]
	if !second.PublishedAt.IsZero() || second.ImageURL != "" {
		t.Fatalf("entry without time/image should have zero values: %+v", second)
	}
}

func TestParseFeedMalformedBytes(t *testing.T) {
	if _, err := ParseFeed([]byte("this is not a feed")); err == nil {
		t.Fatalf("expected error for malformed feed bytes")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
