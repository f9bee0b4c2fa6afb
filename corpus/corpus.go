// Package corpus shares a single bag of words between concurrent callers.
package corpus

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Scrin/wordbag/bag"
	"github.com/Scrin/wordbag/logging"
	"github.com/Scrin/wordbag/metrics"
	"github.com/Scrin/wordbag/source"
	"github.com/rs/zerolog/log"
)

// WordCount is a word together with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Stats summarizes the size of the corpus.
type Stats struct {
	Unique int  `json:"unique"`
	Total  int  `json:"total"`
	Empty  bool `json:"empty"`
}

// Corpus guards a bag.Bag with a RWMutex.
type Corpus struct {
	mu  sync.RWMutex
	bag *bag.Bag
}

func New() *Corpus {
	return &Corpus{bag: bag.New()}
}

// Ingest converts text from the given format to plain text and adds its
// words to the corpus. It returns the corpus stats after the text was added.
func (c *Corpus) Ingest(ctx context.Context, format source.Format, text string) (Stats, error) {
	ctx = logging.ContextWithStr(ctx, "format", string(format))
	ctx = logging.ContextWithInt(ctx, "bytes", len(text))

	plain, err := source.ToText(ctx, format, text)
	if err != nil {
		metrics.RecordTextIngested(string(format), len(text), false)
		return Stats{}, fmt.Errorf("failed to convert %s text: %w", format, err)
	}

	tokens := len(strings.Fields(plain))

	c.mu.Lock()
	before := c.bag.Count()
	c.bag.Extend(plain)
	stats := c.statsLocked()
	metrics.SetBagSize(stats.Unique, stats.Total)
	c.mu.Unlock()
	added := stats.Total - before

	metrics.RecordTextIngested(string(format), len(text), true)
	metrics.RecordTokens(added, tokens-added)
	log.Debug().Ctx(ctx).
		Int("words", added).
		Int("dropped", tokens-added).
		Int("unique", stats.Unique).
		Int("total", stats.Total).
		Msg("Text ingested")
	return stats, nil
}

// MatchCount returns the count of keyword, which must be a normalized word.
func (c *Corpus) MatchCount(keyword string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bag.MatchCount(keyword)
}

func (c *Corpus) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statsLocked()
}

func (c *Corpus) statsLocked() Stats {
	return Stats{
		Unique: c.bag.Len(),
		Total:  c.bag.Count(),
		Empty:  c.bag.IsEmpty(),
	}
}

// Words returns a snapshot of every word and its count in lexicographic order.
func (c *Corpus) Words() []WordCount {
	c.mu.RLock()
	defer c.mu.RUnlock()
	words := make([]WordCount, 0, c.bag.Len())
	for word, count := range c.bag.Entries() {
		words = append(words, WordCount{Word: word, Count: count})
	}
	return words
}

// Top returns the n most frequent words, most frequent first. Words with
// equal counts are ordered alphabetically. n <= 0 returns every word.
func (c *Corpus) Top(n int) []WordCount {
	words := c.Words()
	slices.SortStableFunc(words, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n > 0 && n < len(words) {
		words = words[:n]
	}
	return words
}

// Reset discards every word in the corpus.
func (c *Corpus) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bag = bag.New()
	metrics.SetBagSize(0, 0)
}
