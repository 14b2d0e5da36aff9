// Package sentiment labels text with a keyword rule: an item is negative when
// any negative keyword occurs anywhere in its case-folded text.
package sentiment

import (
	"slices"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"golang.org/x/text/cases"

	"github.com/jonesrussell/pulseboard/internal/domain"
)

// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	keywords []string
	matcher  *ahocorasick.Matcher
}

// New builds a Classifier from keywords. Keywords are trimmed and case-folded;
// blanks and duplicates are dropped. With no keywords every text is neutral.
func New(keywords []string) *Classifier {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = fold(strings.TrimSpace(kw))
		if kw == "" || slices.Contains(normalized, kw) {
			continue
		}
		normalized = append(normalized, kw)
	}

	c := &Classifier{keywords: normalized}
	if len(normalized) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(normalized)
	}
	return c
}

// Classify returns LabelNegative if any keyword is a substring of the folded
// text, LabelNeutral otherwise.
func (c *Classifier) Classify(text string) domain.Label {
	if len(c.Match(text)) > 0 {
		return domain.LabelNegative
	}
	return domain.LabelNeutral
}

// Match returns the keywords found in text, in keyword order, without duplicates.
func (c *Classifier) Match(text string) []string {
	if c.matcher == nil || text == "" {
		return nil
	}

	hits := c.matcher.MatchThreadSafe([]byte(fold(text)))
	if len(hits) == 0 {
		return nil
	}

	slices.Sort(hits)
	hits = slices.Compact(hits)

	matched := make([]string, 0, len(hits))
	for _, i := range hits {
		if i < len(c.keywords) {
			matched = append(matched, c.keywords[i])
		}
	}
	return matched
}

// ClassifyItem labels text and records the matched keywords.
func (c *Classifier) ClassifyItem(text string) domain.ClassifiedItem {
	matched := c.Match(text)
	label := domain.LabelNeutral
	if len(matched) > 0 {
		label = domain.LabelNegative
	}
	return domain.ClassifiedItem{Text: text, Label: label, Keywords: matched}
}

// Keywords returns a copy of the normalized keyword list.
func (c *Classifier) Keywords() []string {
	return slices.Clone(c.keywords)
}

// fold applies Unicode case folding. A Caser holds state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
