package collector

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

const feedAccept = "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8"

// FeedSource reads item titles from an RSS or Atom feed.
type FeedSource struct {
	url     string
	fetcher *fetcher
}

// FetchRawItems fetches the feed and returns item titles in feed order.
// Entries without a title are skipped.
func (s *FeedSource) FetchRawItems(ctx context.Context) ([]string, error) {
	body, err := s.fetcher.fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return ExtractFeed(body)
}

// ExtractFeed parses an RSS or Atom document and returns its trimmed item titles.
func ExtractFeed(body []byte) ([]string, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("parse feed: %w", err)}
	}

	items := make([]string, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		items = append(items, title)
	}

	return items, nil
}
