package sentiment_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/sentiment"
)

var defaultKeywords = []string{"hate", "toxic", "unhealthy", "misinformation", "harmful", "dangerous"}

func TestClassify(t *testing.T) {
	t.Parallel()

	c := sentiment.New(defaultKeywords)

	tests := []struct {
		name string
		text string
		want domain.Label
	}{
		{name: "keyword present", text: "This platform spreads misinformation daily", want: domain.LabelNegative},
		{name: "uppercase substring", text: "HATEFUL content", want: domain.LabelNegative},
		{name: "mixed case", text: "A ToXiC workplace", want: domain.LabelNegative},
		{name: "substring inside word", text: "Whatever happens, hateful speech spreads", want: domain.LabelNegative},
		{name: "no keyword", text: "I love this community", want: domain.LabelNeutral},
		{name: "empty", text: "", want: domain.LabelNeutral},
		{name: "healthy is not unhealthy", text: "Healthy habits for developers", want: domain.LabelNeutral},
		{name: "non ascii text", text: "Schöne Grüße aus Köln", want: domain.LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	c := sentiment.New(defaultKeywords)
	const text = "Dangerous and harmful: a review"

	first := c.Classify(text)
	for range 10 {
		assert.Equal(t, first, c.Classify(text))
	}
}

func TestMatch_KeywordOrderWithoutDuplicates(t *testing.T) {
	t.Parallel()

	c := sentiment.New(defaultKeywords)

	got := c.Match("dangerous HATE, more hate, harmful")

	assert.Equal(t, []string{"hate", "harmful", "dangerous"}, got)
}

func TestNew_NormalizesKeywords(t *testing.T) {
	t.Parallel()

	c := sentiment.New([]string{"  Scam ", "", "SCAM", "fraud"})

	assert.Equal(t, []string{"scam", "fraud"}, c.Keywords())
	assert.Equal(t, domain.LabelNegative, c.Classify("Crypto scammers return"))
}

func TestNew_EmptyKeywordSet(t *testing.T) {
	t.Parallel()

	c := sentiment.New(nil)

	assert.Equal(t, domain.LabelNeutral, c.Classify("hate toxic harmful"))
	assert.Empty(t, c.Match("hate"))
}

func TestClassifyItem(t *testing.T) {
	t.Parallel()

	c := sentiment.New(defaultKeywords)

	item := c.ClassifyItem("Toxic waste is dangerous")

	assert.Equal(t, "Toxic waste is dangerous", item.Text)
	assert.Equal(t, domain.LabelNegative, item.Label)
	assert.Equal(t, []string{"toxic", "dangerous"}, item.Keywords)
}

func TestClassify_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := sentiment.New(defaultKeywords)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := "neutral title"
			want := domain.LabelNeutral
			if i%2 == 0 {
				text = "harmful title"
				want = domain.LabelNegative
			}
			for range 100 {
				assert.Equal(t, want, c.Classify(text))
			}
		}(i)
	}
	wg.Wait()
}
