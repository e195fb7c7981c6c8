// Package suggest is the core, answering which indexed words start with a given string.
package suggest

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordmatch/pkg/index"
)

// Engine selects the lookup structure behind a Completer
type Engine string

const (
	// EngineBucket narrows candidates with the 1- and 2-character prefix buckets.
	EngineBucket Engine = "bucket"
	// EngineTrie walks a patricia trie subtree and restores word list order.
	EngineTrie Engine = "trie"
)

// ParseEngine maps a config/flag value to an Engine. Empty means EngineBucket.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineBucket:
		return EngineBucket, nil
	case EngineTrie:
		return EngineTrie, nil
	}
	return "", fmt.Errorf("unknown engine %q (want %q or %q)", s, EngineBucket, EngineTrie)
}

// Matcher answers prefix queries over an immutable word list.
//
// Match must return every word that starts with q, case-sensitive, in word
// list order, and never nil. q is already trimmed and non-empty.
type Matcher interface {
	Match(q string) []string
}

// ICompleter defines the interface for the boundaries (HTTP, IPC, CLI)
type ICompleter interface {
	// Complete returns the words starting with the trimmed input
	Complete(input string) ([]string, error)

	// WordList returns the entire word list
	WordList() ([]string, error)

	// Initialize builds the index if it isn't built yet
	Initialize() error

	// Stats returns statistics about the loaded word list
	Stats() map[string]int
}

// NewMatcher builds the matcher for engine over ix
func NewMatcher(engine Engine, ix *index.Index) Matcher {
	if engine == EngineTrie {
		return newTrieMatcher(ix)
	}
	return &bucketMatcher{ix: ix}
}
