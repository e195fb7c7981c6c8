/*
Package server implements msgpack IPC for word matching.

The server reads msgpack-encoded requests from stdin and writes one msgpack
response per request to stdout. Logs go to stderr so stdout only ever carries
protocol frames.

# IPC

Before reading, the server announces itself:

	{"status": "ready"}

Match requests carry an ID and the raw input; the action defaults to "match":

	{"id": "req_001", "input": "ap"}

The server responds with matches in word list order, plus the count and the
time taken in microseconds:

	{"id": "req_001", "m": ["apple", "apply", "ape"], "c": 3, "t": 12}

The full word list and a health probe are available too:

	{"id": "req_002", "action": "words"}
	{"id": "req_003", "action": "health"}

Failures come back as an error message and an HTTP-style code:

	{"id": "req_004", "e": "Invalid input provided.", "c": 400}
*/
package server

// Request actions
const (
	ActionMatch  = "match"
	ActionWords  = "words"
	ActionHealth = "health"
)

// Request is a single IPC message from the client
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Input  string `msgpack:"input"`
}

// MatchResponse carries the matches for one input
type MatchResponse struct {
	ID        string   `msgpack:"id"`
	Matches   []string `msgpack:"m"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// WordsResponse carries the entire word list
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"w"`
	Count int      `msgpack:"c"`
}

// HealthResponse reports index state
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
	Ready  bool   `msgpack:"ready"`
}

// StatusMessage is the unsolicited ready frame
type StatusMessage struct {
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
