/*
Package server implements msgpack IPC for the job-title completion service.

The server reads structured messages from stdin and writes responses to
stdout, which lets editors and form frontends embed the service through
process communication. Messages are processed synchronously with timing
info included in responses.

A completion request carries an ID, the typed prefix, and an optional
result limit:

	{"id": "req_001", "p": "acc", "l": 10}

The server responds with suggestions already ranked by corpus frequency:

	{"id": "req_001", "s": [{"w": "account", "r": 1}, {"w": "accountant", "r": 2}], "c": 2, "t": 95}

An unknown prefix is a normal outcome and yields an empty suggestion list,
never an error. Error responses are reserved for malformed requests:

	{"id": "req_001", "e": "missing 'p' field", "c": 400}

The op field selects non-completion commands: "health" reports readiness,
"stats" returns vocabulary counters. An absent or "complete" op runs a
completion.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op,omitempty"` // "", "complete", "health", "stats"
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// ResponseSuggestion - minimal suggestion response
type ResponseSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
	Freq int    `msgpack:"f,omitempty"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// StatusResponse - health and stats responses
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for malformed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
