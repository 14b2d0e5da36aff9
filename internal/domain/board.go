// Package domain holds the types shared by the collector, classifier and presenter.
package domain

import "time"

// Label is the sentiment assigned to one item.
type Label string

const (
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// ClassifiedItem pairs a collected title with its label. Keywords lists the
// negative keywords that matched, in dictionary order.
type ClassifiedItem struct {
	Text     string   `json:"text"`
	Label    Label    `json:"label"`
	Keywords []string `json:"keywords,omitempty"`
}

// Counts tallies items per label.
type Counts struct {
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Total    int `json:"total"`
}

// Board is one rendered collection: the classified items in document order
// plus the metadata shown on the page.
type Board struct {
	Source      string           `json:"source"`
	CollectedAt time.Time        `json:"collected_at"`
	Degraded    bool             `json:"degraded"`
	Counts      Counts           `json:"counts"`
	Items       []ClassifiedItem `json:"items"`
}

// NewBoard builds a Board and its counts from items. A nil items slice is
// stored as empty so JSON renders [] rather than null.
func NewBoard(source string, collectedAt time.Time, items []ClassifiedItem) *Board {
	if items == nil {
		items = []ClassifiedItem{}
	}

	b := &Board{
		Source:      source,
		CollectedAt: collectedAt,
		Items:       items,
	}
	for _, item := range items {
		switch item.Label {
		case LabelNegative:
			b.Counts.Negative++
		case LabelNeutral:
			b.Counts.Neutral++
		}
	}
	b.Counts.Total = len(items)
	return b
}

// Empty reports whether the board has no items.
func (b *Board) Empty() bool {
	return len(b.Items) == 0
}
