package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/jobserve/jobserve/internal/utils"
	"github.com/jobserve/jobserve/pkg/config"
	"github.com/jobserve/jobserve/pkg/suggest"
)

// Server handles the IPC for job-title word completions. The backing
// suggester is read-only, so requests could be served concurrently; the
// stdin/stdout transport keeps processing synchronous by construction.
type Server struct {
	suggester suggest.Suggester
	cfg       *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(suggester suggest.Suggester, cfg *config.Config) *Server {
	return NewServerIO(suggester, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over arbitrary streams, mainly for tests.
func NewServerIO(suggester suggest.Suggester, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		suggester: suggester,
		cfg:       cfg,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests and blocks until the input
// stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server")

	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// A decode failure leaves the stream misaligned; bail out
			// instead of spinning on garbage.
			s.sendError("", "invalid msgpack request", 400)
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request by op.
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "", "complete":
		s.handleComplete(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case "stats":
		s.send(StatusResponse{ID: request.ID, Status: "ok", Stats: s.suggester.Stats()})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown op: %s", request.Op), 400)
	}
}

// handleComplete validates the request, runs the lookup and replies with
// ranked suggestions. A prefix with no completions is answered with an
// empty list, not an error.
func (s *Server) handleComplete(request Request) {
	prefix := request.Prefix

	if prefix == "" {
		s.sendError(request.ID, "missing 'p' field", 400)
		log.Debug("Prefix is empty in request")
		return
	}
	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		log.Debug("Prefix is too short in request")
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix exceeds maximum length of %d", s.cfg.Server.MaxPrefix), 400)
		log.Debug("Prefix is too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.Server.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	// Junk prefixes (digits, symbols, keyboard mashing) never match a
	// normalized word; answer them with an empty list without a lookup.
	if s.cfg.Server.EnableFilter && !utils.IsValidPrefix(prefix) {
		s.send(CompletionResponse{ID: request.ID, Suggestions: []ResponseSuggestion{}})
		return
	}

	start := time.Now()
	suggestions := s.suggester.Suggest(prefix, limit)
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(suggestions))
	results := make([]ResponseSuggestion, len(suggestions))
	for i, sg := range suggestions {
		results[i] = ResponseSuggestion{
			Word: sg.Word,
			Rank: ranks[i],
			Freq: sg.Frequency,
		}
	}

	s.send(CompletionResponse{
		ID:          request.ID,
		Suggestions: results,
		Count:       len(results),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// send encodes one response onto the output stream.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
