package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/katalvlaran/algokit/internal/apperror"
	"github.com/katalvlaran/algokit/internal/solver"
)

type errorBody struct {
	Error     *apperror.Error `json:"error"`
	RequestID string          `json:"request_id,omitempty"`
}

type batchRequest struct {
	Requests []*solver.Request `json:"requests"`
}

type batchResponse struct {
	Results []solver.BatchResult `json:"results"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solver.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := s.solver.Solve(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSolveBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	results, err := s.solver.SolveBatch(r.Context(), req.Requests)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": solver.Algorithms()})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ready": false, "reason": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// decodeJSON reads exactly one JSON value, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.New(apperror.CodeGraphTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		}
		return apperror.Wrap(err, apperror.CodeInvalidArgument, "malformed JSON: "+err.Error())
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		return apperror.New(apperror.CodeInvalidArgument, "request body must hold a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.FromAlgorithm(err)
	writeJSON(w, appErr.HTTPStatus(), errorBody{Error: appErr, RequestID: RequestIDFromContext(r.Context())})
}
