// Package bag implements a "bag of words": a text reduced to its words,
// each with the number of times it occurs.
//
// Words are separated by whitespace. Leading and trailing non-alphabetic
// runes are removed from each token, and the token is kept only when what
// remains is made of alphabetic runes alone, so "world!" counts as "world"
// while "can't", "b-banana" and "" are dropped. Kept words are lowercased.
//
// A Bag is not safe for concurrent use.
package bag

import (
	"iter"

	"github.com/google/btree"
)

const treeDegree = 16

type entry struct {
	word  string
	count int
}

func lessEntry(a, b *entry) bool {
	return a.word < b.word
}

// Bag maps normalized words to their occurrence counts, ordered by word.
// The zero value is an empty bag ready to use.
type Bag struct {
	tree  *btree.BTreeG[*entry]
	total int
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{tree: btree.NewG(treeDegree, lessEntry)}
}

// Extend adds every valid word in text to the bag and returns the bag, so
// calls can be chained to build up a bag over several texts:
//
//	b := bag.New().Extend("Hello world.").Extend("Hello again")
//
// Counts accumulate; extending twice with the same text counts it twice.
func (b *Bag) Extend(text string) *Bag {
	for word := range Words(text) {
		b.add(word)
	}
	return b
}

func (b *Bag) add(word string) {
	if b.tree == nil {
		b.tree = btree.NewG(treeDegree, lessEntry)
	}
	if e, ok := b.tree.Get(&entry{word: word}); ok {
		e.count++
	} else {
		b.tree.ReplaceOrInsert(&entry{word: word, count: 1})
	}
	b.total++
}

// MatchCount returns the number of occurrences of keyword, or 0 if it is
// not in the bag.
//
// keyword must already be normalized: lowercase and alphabetic only. A
// keyword that is not (for example "Hello", "hello." or "") never matches
// and 0 is returned; it is not normalized on the caller's behalf.
func (b *Bag) MatchCount(keyword string) int {
	if b.tree == nil || !IsWord(keyword) {
		return 0
	}
	if e, ok := b.tree.Get(&entry{word: keyword}); ok {
		return e.count
	}
	return 0
}

// Words returns the unique words of the bag in lexicographic order. The
// sequence can be ranged over any number of times. The bag must not be
// extended while a range over it is in progress.
func (b *Bag) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range b.Entries() {
			if !yield(word) {
				return
			}
		}
	}
}

// Entries is like Words but also yields each word's count.
func (b *Bag) Entries() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if b.tree == nil {
			return
		}
		b.tree.Ascend(func(e *entry) bool {
			return yield(e.word, e.count)
		})
	}
}

// Count returns the total number of words in the bag, counting every
// occurrence separately.
func (b *Bag) Count() int {
	return b.total
}

// Len returns the number of unique words in the bag.
func (b *Bag) Len() int {
	if b.tree == nil {
		return 0
	}
	return b.tree.Len()
}

// IsEmpty reports whether the bag holds no words.
func (b *Bag) IsEmpty() bool {
	return b.Len() == 0
}
