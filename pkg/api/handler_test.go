package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bastiangx/wordmatch/internal/logger"
	"github.com/bastiangx/wordmatch/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

var fruit = []string{"apple", "apply", "ape", "banana"}

func newTestHandler(t *testing.T, words []string) http.Handler {
	t.Helper()
	return NewHandler(suggest.NewCompleter(words, suggest.EngineBucket), logger.Discard(), 1024).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMatchEndpoint(t *testing.T) {
	h := newTestHandler(t, fruit)

	tests := []struct {
		body string
		want string
	}{
		{`{"input": "ap"}`, `{"matches": ["apple", "apply", "ape"]}`},
		{`{"input": "a"}`, `{"matches": ["apple", "apply", "ape"]}`},
		{`{"input": "b"}`, `{"matches": ["banana"]}`},
		{`{"input": "z"}`, `{"matches": []}`},
		{`{"input": "  ap "}`, `{"matches": ["apple", "apply", "ape"]}`},
		{`{"input": "bananarama"}`, `{"matches": []}`},
		{`{"input": "ap", "extra": 1}`, `{"matches": ["apple", "apply", "ape"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/input-match", tt.body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestMatchEndpointRejects(t *testing.T) {
	h := newTestHandler(t, fruit)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"no body", "", "Request body is required."},
		{"null body", "null", "Request body is required."},
		{"false body", "false", "Request body is required."},
		{"zero body", "0", "Request body is required."},
		{"empty string body", `""`, "Request body is required."},
		{"whitespace body", " \n ", "Request body is required."},
		{"bad json", `{"input": `, "Request body must be valid JSON."},
		{"trailing garbage", `{"input": "ap"} x`, "Request body must be valid JSON."},
		{"missing input", `{}`, "Invalid input provided."},
		{"upper case key", `{"INPUT": "ap"}`, "Invalid input provided."},
		{"title case key", `{"Input": "ap"}`, "Invalid input provided."},
		{"true body", "true", "Invalid input provided."},
		{"number body", "7", "Invalid input provided."},
		{"null input", `{"input": null}`, "Invalid input provided."},
		{"number input", `{"input": 42}`, "Invalid input provided."},
		{"array input", `{"input": ["a"]}`, "Invalid input provided."},
		{"empty input", `{"input": ""}`, "Invalid input provided."},
		{"blank input", `{"input": "   "}`, "Invalid input provided."},
		{"array body", `["ap"]`, "Invalid input provided."},
		{"string body", `"ap"`, "Invalid input provided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/input-match", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error": "`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestMatchEndpointBodyTooLarge(t *testing.T) {
	h := newTestHandler(t, fruit)
	body := `{"input": "` + strings.Repeat("a", 2048) + `"}`
	rec := do(t, h, http.MethodPost, "/api/input-match", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error": "Request body is too large."}`, rec.Body.String())
}

func TestMatchEndpointMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, fruit)
	rec := do(t, h, http.MethodGet, "/api/input-match", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWordListEndpoint(t *testing.T) {
	h := newTestHandler(t, []string{"apple", "", "  ", "ape"})
	rec := do(t, h, http.MethodGet, "/api/wordlist", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"wordList": ["apple", "ape"]}`, rec.Body.String())
}

func TestWordListEndpointEmpty(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := do(t, h, http.MethodGet, "/api/wordlist", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"wordList": []}`, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t, fruit)
	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok", "words": 4, "ready": true}`, rec.Body.String())
}

func TestHealthDoesNotTriggerLazyBuild(t *testing.T) {
	c := suggest.NewLazyCompleter(func() ([]string, error) { return fruit, nil }, suggest.EngineBucket)
	h := NewHandler(c, logger.Discard(), 0).Routes()

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status": "ok", "words": 0, "ready": false}`, rec.Body.String())
	assert.False(t, c.Ready())

	rec = do(t, h, http.MethodPost, "/api/input-match", `{"input": "ban"}`)
	assert.JSONEq(t, `{"matches": ["banana"]}`, rec.Body.String())
	assert.True(t, c.Ready())
}

func TestLazyLoadFailureIs500(t *testing.T) {
	c := suggest.NewLazyCompleter(func() ([]string, error) { return nil, errors.New("gone") }, suggest.EngineBucket)
	h := NewHandler(c, logger.Discard(), 0).Routes()

	rec := do(t, h, http.MethodPost, "/api/input-match", `{"input": "a"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Word list unavailable."}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/wordlist", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMsgpackNegotiation(t *testing.T) {
	h := newTestHandler(t, fruit)

	req := httptest.NewRequest(http.MethodPost, "/api/input-match", strings.NewReader(`{"input": "ap"}`))
	req.Header.Set("Accept", "application/msgpack")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/msgpack", rec.Header().Get("Content-Type"))

	var resp MatchResponse
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"apple", "apply", "ape"}, resp.Matches)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestHandler(t, fruit)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Len(t, rec.Header().Get(RequestIDHeader), 12)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

func TestValidate(t *testing.T) {
	s := "  "
	err := Validate(&MatchRequest{Input: &s})
	require.Error(t, err)
	assert.Equal(t, "input must not be blank", err.Error())

	err = Validate(&MatchRequest{})
	require.Error(t, err)
	assert.Equal(t, "input is a required field", err.Error())

	ok := "ap"
	assert.NoError(t, Validate(&MatchRequest{Input: &ok}))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "invalid_input", KindInvalidInput.String())
	assert.Equal(t, http.StatusBadRequest, KindBodyRequired.Status())
	assert.Equal(t, http.StatusInternalServerError, KindUnavailable.Status())

	cause := errors.New("boom")
	err := newRequestError(KindUnavailable, "", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "unavailable: boom", err.Error())
}
