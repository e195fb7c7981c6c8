package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordmatch/internal/logger"
	"github.com/bastiangx/wordmatch/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word matching
type Server struct {
	completer    suggest.ICompleter
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(completer suggest.ICompleter) *Server {
	return NewServerWithIO(completer, os.Stdin, os.Stdout, logger.New("ipc"))
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(completer suggest.ICompleter, r io.Reader, w io.Writer, l *log.Logger) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    bw,
		encoder:   msgpack.NewEncoder(bw),
		logger:    l,
	}
}

// Start announces readiness and serves requests until the input closes
func (s *Server) Start() error {
	s.logger.Debug("Starting IPC server")

	if err := s.send(StatusMessage{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requestCount++
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// RequestCount returns how many requests were handled
func (s *Server) RequestCount() int {
	return s.requestCount
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionMatch:
		return s.handleMatch(req)
	case ActionWords:
		return s.handleWords(req)
	case ActionHealth:
		stats := s.completer.Stats()
		return s.send(HealthResponse{
			ID:     req.ID,
			Status: "ok",
			Words:  stats["totalWords"],
			Ready:  stats["ready"] == 1,
		})
	default:
		s.logger.Debug("Unknown action", "id", req.ID, "action", req.Action)
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 404)
	}
}

func (s *Server) handleMatch(req Request) error {
	start := time.Now()
	matches, err := s.completer.Complete(req.Input)
	if err != nil {
		return s.sendCompletionError(req.ID, err)
	}
	elapsed := time.Since(start)
	s.logger.Debugf("Took [ %v ] for input '%s'", elapsed, req.Input)

	return s.send(MatchResponse{
		ID:        req.ID,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleWords(req Request) error {
	words, err := s.completer.WordList()
	if err != nil {
		return s.sendCompletionError(req.ID, err)
	}
	return s.send(WordsResponse{ID: req.ID, Words: words, Count: len(words)})
}

func (s *Server) sendCompletionError(id string, err error) error {
	if errors.Is(err, suggest.ErrEmptyInput) {
		return s.sendError(id, "Invalid input provided.", 400)
	}
	s.logger.Errorf("Request %s failed: %v", id, err)
	return s.sendError(id, "Word list unavailable.", 500)
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// send encodes one frame and flushes it so the client sees it immediately
func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return s.writer.Flush()
}
