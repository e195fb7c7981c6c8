/*
Package dictionary reads word lists from newline-delimited text sources.

Each line is a candidate word. Lines are trimmed of surrounding whitespace
(including a trailing carriage return and a leading byte order mark) and blank
lines are dropped. The
loader does not deduplicate or reorder; that is the index's job.

	words, err := dictionary.LoadFile("data/wordlist.txt")

A missing file is not an error: it yields an empty list and a warning, so a
service started without a word list simply returns no matches.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bastiangx/wordmatch/internal/utils"
	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single line; longer lines fail the scan
const maxLineSize = 1 << 20

// LoaderStats provides statistics about the last load
type LoaderStats struct {
	Lines      int
	Words      int
	BlankLines int
}

// Loader reads a word list from a path
type Loader struct {
	path  string
	stats LoaderStats
}

// NewLoader creates a loader for the given path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the file. A missing file returns an empty list.
// It matches suggest.LoadFunc so it can back a lazy completer.
func (l *Loader) Load() ([]string, error) {
	if l.path == "" {
		log.Warn("No word list path configured, running with empty word list")
		l.stats = LoaderStats{}
		return []string{}, nil
	}

	file, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warnf("Word list %s not found, running with empty word list", l.path)
			l.stats = LoaderStats{}
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to open word list %s: %w", l.path, err)
	}
	defer file.Close()

	words, stats, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", l.path, err)
	}
	l.stats = stats
	log.Debugf("Loaded %d words from %s (%d lines, %d blank)", stats.Words, l.path, stats.Lines, stats.BlankLines)
	return words, nil
}

// Stats returns statistics about the last successful load
func (l *Loader) Stats() LoaderStats {
	return l.stats
}

// LoadFile is shorthand for NewLoader(path).Load()
func LoadFile(path string) ([]string, error) {
	return NewLoader(path).Load()
}

// parse reads trimmed, non-blank lines from r in order
func parse(r io.Reader) ([]string, LoaderStats, error) {
	var stats LoaderStats
	words := []string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		word := utils.TrimWord(scanner.Text())
		if word == "" {
			stats.BlankLines++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	stats.Words = len(words)
	return words, stats, nil
}
