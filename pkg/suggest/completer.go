package suggest

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bastiangx/wordmatch/internal/utils"
	"github.com/bastiangx/wordmatch/pkg/index"
	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyInput is returned for input that is empty after trimming
	ErrEmptyInput = errors.New("suggest: empty input")
	// ErrUnavailable wraps a failed word list load
	ErrUnavailable = errors.New("suggest: word list unavailable")
)

// LoadFunc produces the raw word list lines for a lazy build
type LoadFunc func() ([]string, error)

type snapshot struct {
	ix      *index.Index
	matcher Matcher
}

// Completer owns the word index and answers prefix queries.
//
// It is built exactly once, either eagerly by NewCompleter or on first use by
// NewLazyCompleter, and is read-only afterwards. Readers never lock once the
// index exists.
type Completer struct {
	engine  Engine
	load    LoadFunc
	mu      sync.Mutex
	current atomic.Pointer[snapshot]
	builds  atomic.Int32
}

// NewCompleter builds the index from words right away
func NewCompleter(words []string, engine Engine) *Completer {
	c := &Completer{engine: engine}
	c.current.Store(c.build(words))
	return c
}

// NewLazyCompleter defers loading and indexing until the first call that
// needs the index. A load error is returned to that caller and the next call
// tries again; a successful build is never repeated.
func NewLazyCompleter(load LoadFunc, engine Engine) *Completer {
	return &Completer{
		engine: engine,
		load:   load,
	}
}

func (c *Completer) build(words []string) *snapshot {
	ix := index.Build(words)
	c.builds.Add(1)
	log.Debugf("Built %s index: words=[%d], buckets=[%d]", c.engine, ix.Len(), ix.BucketCount())
	return &snapshot{
		ix:      ix,
		matcher: NewMatcher(c.engine, ix),
	}
}

// Initialize ensures the index is built
func (c *Completer) Initialize() error {
	_, err := c.ensure()
	return err
}

func (c *Completer) ensure() (*snapshot, error) {
	if s := c.current.Load(); s != nil {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.current.Load(); s != nil {
		return s, nil
	}

	if c.load == nil {
		s := c.build(nil)
		c.current.Store(s)
		return s, nil
	}

	words, err := c.load()
	if err != nil {
		log.Errorf("Failed to load word list: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	s := c.build(words)
	c.current.Store(s)
	return s, nil
}

// Complete trims input and returns every word that starts with it, in word
// list order. The result is never nil.
func (c *Completer) Complete(input string) ([]string, error) {
	q := utils.TrimWord(input)
	if q == "" {
		return nil, ErrEmptyInput
	}

	s, err := c.ensure()
	if err != nil {
		return nil, err
	}
	return s.matcher.Match(q), nil
}

// WordList returns the whole word list, unfiltered
func (c *Completer) WordList() ([]string, error) {
	s, err := c.ensure()
	if err != nil {
		return nil, err
	}
	return s.ix.Words(), nil
}

// Ready reports whether the index has been built
func (c *Completer) Ready() bool {
	return c.current.Load() != nil
}

// Engine returns the configured engine
func (c *Completer) Engine() Engine {
	return c.engine
}

// Stats returns statistics about the loaded word list. It does not trigger a
// lazy build.
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": 0,
		"buckets":    0,
		"builds":     int(c.builds.Load()),
		"ready":      0,
		"trieEngine": 0,
	}
	if c.engine == EngineTrie {
		stats["trieEngine"] = 1
	}
	if s := c.current.Load(); s != nil {
		stats["totalWords"] = s.ix.Len()
		stats["buckets"] = s.ix.BucketCount()
		stats["ready"] = 1
	}
	return stats
}
