package suggest

import (
	"slices"

	"github.com/bastiangx/wordmatch/pkg/index"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// trieMatcher stores each word's position in the word list as its item,
// so subtree results can be put back into word list order.
type trieMatcher struct {
	trie  *patricia.Trie
	words []string
}

func newTrieMatcher(ix *index.Index) *trieMatcher {
	m := &trieMatcher{
		trie:  patricia.NewTrie(),
		words: ix.Words(),
	}
	for pos, word := range m.words {
		m.trie.Insert(patricia.Prefix(word), pos)
	}
	return m
}

func (m *trieMatcher) Match(q string) []string {
	var positions []int

	err := m.trie.VisitSubtree(patricia.Prefix(q), func(p patricia.Prefix, item patricia.Item) error {
		pos, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		positions = append(positions, pos)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []string{}
	}

	slices.Sort(positions)
	matches := make([]string, len(positions))
	for i, pos := range positions {
		matches[i] = m.words[pos]
	}
	return matches
}
