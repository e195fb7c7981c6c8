package suggest

import (
	"strings"

	"github.com/bastiangx/wordmatch/pkg/index"
	"github.com/samber/lo"
)

type bucketMatcher struct {
	ix *index.Index
}

// Match prefers the 2-character bucket and falls back to the 1-character one.
// The 2-character bucket holds every word sharing both leading characters
// with q, so filtering it is exact.
func (m *bucketMatcher) Match(q string) []string {
	k1, k2 := index.Keys(q)
	if k1 == "" {
		return []string{}
	}

	candidates, ok := []string(nil), false
	if k2 != "" {
		candidates, ok = m.ix.Bucket(k2)
	}
	if !ok {
		candidates, _ = m.ix.Bucket(k1)
	}

	return lo.Filter(candidates, func(word string, _ int) bool {
		return strings.HasPrefix(word, q)
	})
}
