/*
Package index builds the prefix bucket map used to narrow prefix lookups.

Every word is filed under its first character and, when it has one, under
its first two characters. Characters are runes, so "éclair" lands in the
"é" and "éc" buckets. Buckets keep the word list's original order.

	ix := index.Build([]string{"apple", "apply", "ape", "banana"})
	words, ok := ix.Bucket("ap") // [apple apply ape], true

An Index is immutable once built and safe for concurrent readers.
*/
package index

import (
	"slices"

	"github.com/bastiangx/wordmatch/internal/utils"
)

// Index is the word list plus its 1- and 2-character prefix buckets
type Index struct {
	words   []string
	buckets map[string][]string
}

// Build trims lines, drops blanks and repeats, and files every word into
// its prefix buckets. Nil or empty input gives an empty index.
func Build(lines []string) *Index {
	filter := utils.NewWordFilter(len(lines))
	ix := &Index{
		words:   make([]string, 0, len(lines)),
		buckets: make(map[string][]string),
	}

	for _, line := range lines {
		word := utils.TrimWord(line)
		if word == "" || !filter.ShouldInclude(word) {
			continue
		}
		ix.words = append(ix.words, word)

		k1, k2 := Keys(word)
		ix.buckets[k1] = append(ix.buckets[k1], word)
		if k2 != "" {
			ix.buckets[k2] = append(ix.buckets[k2], word)
		}
	}
	return ix
}

// Keys returns the 1-rune and 2-rune prefixes of s.
// k2 is empty when s has fewer than two runes; both are empty for "".
func Keys(s string) (k1, k2 string) {
	k1, ok := utils.FirstRunes(s, 1)
	if !ok {
		return "", ""
	}
	if k2, ok = utils.FirstRunes(s, 2); !ok {
		return k1, ""
	}
	return k1, k2
}

// Bucket returns the words filed under key, in word list order.
// The returned slice must not be modified.
func (ix *Index) Bucket(key string) ([]string, bool) {
	words, ok := ix.buckets[key]
	return words, ok
}

// Words returns a copy of the word list
func (ix *Index) Words() []string {
	return slices.Clone(ix.words)
}

// Len returns the number of words
func (ix *Index) Len() int {
	return len(ix.words)
}

// BucketCount returns the number of distinct prefix keys
func (ix *Index) BucketCount() int {
	return len(ix.buckets)
}
