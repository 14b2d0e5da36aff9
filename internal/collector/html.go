package collector

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSelector matches Hacker News titles in the current markup and in
// the older a.titlelink markup.
const DefaultSelector = "span.titleline > a, a.titlelink"

const htmlAccept = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"

// HTMLSource extracts the text of every element matching a CSS selector.
type HTMLSource struct {
	url      string
	selector string
	fetcher  *fetcher
}

// FetchRawItems fetches the page and returns the trimmed text of each match in
// document order. Duplicates are kept. No matches yields an empty slice.
func (s *HTMLSource) FetchRawItems(ctx context.Context) ([]string, error) {
	body, err := s.fetcher.fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return ExtractHTML(body, s.selector)
}

// ExtractHTML returns the trimmed text of every element in body matching selector.
func ExtractHTML(body []byte, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("parse html: %w", err)}
	}

	selection := doc.Find(selector)
	items := make([]string, 0, selection.Length())
	selection.Each(func(_ int, sel *goquery.Selection) {
		items = append(items, strings.TrimSpace(sel.Text()))
	})

	return items, nil
}
