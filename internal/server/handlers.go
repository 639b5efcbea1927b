package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/wordbridge/pkg/errors"
	"github.com/matzehuels/wordbridge/pkg/observability"
	"github.com/matzehuels/wordbridge/pkg/poet"
)

type renderRequest struct {
	Input string `json:"input"`
}

type renderResponse struct {
	Output string `json:"output"`
}

type bridgeResponse struct {
	Prev       string           `json:"prev"`
	Cur        string           `json:"cur"`
	Word       string           `json:"word,omitempty"`
	Weight     int              `json:"weight"`
	Found      bool             `json:"found"`
	Candidates []poet.Candidate `json:"candidates"`
}

type statsResponse struct {
	Vertices int                     `json:"vertices"`
	Edges    int                     `json:"edges"`
	Counters *observability.Snapshot `json:"counters,omitempty"`
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*errors.MaxInputLength)

	var req renderRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if err := errors.ValidateInput(req.Input); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{Output: s.poet.Render(req.Input)})
}

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prev, cur := q.Get("prev"), q.Get("cur")
	if prev == "" || cur == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "both prev and cur are required"))
		return
	}

	resp := bridgeResponse{Prev: prev, Cur: cur, Candidates: s.poet.Candidates(prev, cur)}
	if resp.Candidates == nil {
		resp.Candidates = []poet.Candidate{}
	}
	resp.Word, resp.Weight, resp.Found = s.poet.Bridge(prev, cur)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	g := s.poet.Graph()
	resp := statsResponse{Vertices: g.VertexCount(), Edges: g.EdgeCount()}
	if s.counters != nil {
		snap := s.counters.Snapshot()
		resp.Counters = &snap
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeError writes err as a JSON error body. Input errors are 400, uncoded
// errors are reported as INTERNAL_ERROR.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidArgument:
		status = http.StatusBadRequest
	case "":
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", r.URL.Path, "id", requestIDFromContext(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Error: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
