/*
Package api exposes word matching over HTTP.

Routes:

	POST /api/input-match   {"input": "ap"}  ->  {"matches": ["apple", "apply", "ape"]}
	GET  /api/wordlist                        ->  {"wordList": [...]}
	GET  /health                              ->  {"status": "ok", "words": 4, "ready": true}

Rejected requests get a 400 with {"error": "..."}; the message depends on the
ErrorKind. Responses are JSON unless the client sends
Accept: application/msgpack.
*/
package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bastiangx/wordmatch/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"
)

// MatchResponse is the query endpoint reply
type MatchResponse struct {
	Matches []string `json:"matches" msgpack:"matches"`
}

// WordListResponse is the full-list endpoint reply
type WordListResponse struct {
	WordList []string `json:"wordList" msgpack:"wordList"`
}

// HealthResponse reports liveness and index state
type HealthResponse struct {
	Status string `json:"status" msgpack:"status"`
	Words  int    `json:"words" msgpack:"words"`
	Ready  bool   `json:"ready" msgpack:"ready"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error string `json:"error" msgpack:"error"`
}

// Handler serves the word matching endpoints
type Handler struct {
	completer    suggest.ICompleter
	logger       *log.Logger
	maxBodyBytes int64
}

// NewHandler creates the HTTP handler set. maxBodyBytes <= 0 disables the limit.
func NewHandler(completer suggest.ICompleter, logger *log.Logger, maxBodyBytes int) *Handler {
	return &Handler{
		completer:    completer,
		logger:       logger,
		maxBodyBytes: int64(maxBodyBytes),
	}
}

// Routes returns the mux with every endpoint wrapped in the access log
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/input-match", h.handleMatch)
	mux.HandleFunc("GET /api/wordlist", h.handleWordList)
	mux.HandleFunc("GET /health", h.handleHealth)
	return accessLog(h.logger, mux)
}

func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	input, err := decodeMatchRequest(body)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	start := time.Now()
	matches, err := h.completer.Complete(input)
	if err != nil {
		h.sendError(w, r, completionError(err))
		return
	}
	h.logger.Debug("matched", "input", input, "count", len(matches), "took", time.Since(start))

	h.sendResponse(w, r, http.StatusOK, MatchResponse{Matches: matches})
}

func (h *Handler) handleWordList(w http.ResponseWriter, r *http.Request) {
	words, err := h.completer.WordList()
	if err != nil {
		h.sendError(w, r, completionError(err))
		return
	}
	h.sendResponse(w, r, http.StatusOK, WordListResponse{WordList: words})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := h.completer.Stats()
	h.sendResponse(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Words:  stats["totalWords"],
		Ready:  stats["ready"] == 1,
	})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	reader := io.Reader(r.Body)
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, newRequestError(KindBodyTooLarge, "", err)
		}
		return nil, newRequestError(KindBodyRequired, "", err)
	}
	return body, nil
}

// completionError maps service errors onto request error kinds
func completionError(err error) *RequestError {
	if errors.Is(err, suggest.ErrEmptyInput) {
		return newRequestError(KindInvalidInput, "", err)
	}
	return newRequestError(KindUnavailable, "", err)
}

// sendError writes {"error": msg} with the status of the error's kind
func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		reqErr = newRequestError(KindUnavailable, "", err)
	}

	if reqErr.Kind == KindUnavailable {
		h.logger.Error("request failed", "path", r.URL.Path, "err", reqErr)
	} else {
		h.logger.Debug("request rejected", "path", r.URL.Path, "kind", reqErr.Kind, "err", reqErr)
	}
	h.sendResponse(w, r, reqErr.Kind.Status(), ErrorResponse{Error: reqErr.Kind.Message()})
}

// sendResponse encodes v as JSON, or msgpack when the client asks for it
func (h *Handler) sendResponse(w http.ResponseWriter, r *http.Request, status int, v any) {
	contentType := contentTypeJSON
	var (
		data []byte
		err  error
	)
	if wantsMsgpack(r) {
		contentType = contentTypeMsgpack
		data, err = msgpack.Marshal(v)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		h.logger.Error("Marshaling response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Debug("write failed", "err", err)
	}
}

func wantsMsgpack(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, contentTypeMsgpack) || strings.Contains(accept, "application/x-msgpack")
}
