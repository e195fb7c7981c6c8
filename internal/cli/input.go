// Package cli handles cmd line input and paginated suggestions for DBG and testing
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordmatch/internal/utils"
	"github.com/bastiangx/wordmatch/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Commands accepted at the prompt besides a query
const (
	cmdNext = ":n"
	cmdPrev = ":p"
	cmdQuit = ":q"
)

// InputHandler reads queries from a stream and prints matches one page at a
// time. A blank line clears the results without querying.
type InputHandler struct {
	completer    suggest.ICompleter
	pager        suggest.Pager
	reader       *bufio.Reader
	w            io.Writer
	out          *log.Logger
	query        string
	results      []string
	page         int
	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout
func NewInputHandler(completer suggest.ICompleter, pageSize int) *InputHandler {
	return NewInputHandlerWithIO(completer, pageSize, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler over arbitrary streams
func NewInputHandlerWithIO(completer suggest.ICompleter, pageSize int, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		completer: completer,
		pager:     suggest.NewPager(pageSize),
		reader:    bufio.NewReader(r),
		w:         w,
		out: log.NewWithOptions(w, log.Options{
			ReportTimestamp: false,
			Level:           log.InfoLevel,
		}),
		results: []string{},
	}
}

// Start begins the interface loop. It returns nil when the input ends or
// the user types :q.
func (h *InputHandler) Start() error {
	h.out.Print("wordmatch CLI [BETA]")
	h.out.Print("type a prefix and press Enter (:n next page, :p previous page, :q quit):")

	for {
		fmt.Fprint(h.w, "> ")
		line, err := h.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		if eof && line == "" {
			return nil
		}

		if !h.handleLine(line) {
			return nil
		}
		if eof {
			return nil
		}
	}
}

// handleLine processes one line and reports whether to keep going
func (h *InputHandler) handleLine(line string) bool {
	input := strings.TrimSpace(line)
	switch input {
	case "":
		if len(h.results) > 0 {
			log.Debug("Clearing results")
		}
		h.reset()
		return true
	case cmdQuit:
		return false
	case cmdNext:
		h.turn(1)
		return true
	case cmdPrev:
		h.turn(-1)
		return true
	}

	h.handleInput(input)
	return true
}

func (h *InputHandler) reset() {
	h.query = ""
	h.results = []string{}
	h.page = 0
}

// handleInput queries the completer; new results always start at page 1
func (h *InputHandler) handleInput(input string) {
	h.requestCount++
	start := time.Now()

	matches, err := h.completer.Complete(input)
	if err != nil {
		h.out.Errorf("Lookup failed for '%s': %v", input, err)
		h.reset()
		return
	}
	log.Debugf("Took [ %v ] for input '%s'", time.Since(start), input)

	h.query = input
	h.results = matches
	h.page = 0
	h.render()
}

func (h *InputHandler) turn(delta int) {
	if len(h.results) == 0 {
		h.out.Warn("No results to page through")
		return
	}
	h.page = h.pager.Clamp(h.page+delta, len(h.results))
	h.render()
}

func (h *InputHandler) render() {
	if len(h.results) == 0 {
		h.out.Warnf("No matches found for '%s'", h.query)
		return
	}

	pages := h.pager.Pages(len(h.results))
	h.out.Printf("Found %s matches for '%s' (page %d/%d):",
		utils.FormatWithCommas(len(h.results)), h.query, h.page+1, pages)

	offset := h.page * h.pager.Size()
	for i, word := range h.pager.Page(h.results, h.page) {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", word)
		h.out.Printf("%3d. %s", offset+i+1, clWord)
	}
}

// Results returns the current result set
func (h *InputHandler) Results() []string {
	return h.results
}

// Page returns the current 0-based page
func (h *InputHandler) Page() int {
	return h.page
}

// RequestCount returns how many queries were sent to the completer
func (h *InputHandler) RequestCount() int {
	return h.requestCount
}
