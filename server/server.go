// Package server exposes the gloss pipeline as a JSON REST API.
//
// Endpoints:
//
//	POST /api/isl      body: {"sentence":"..."}  ->  {"isl_gloss":"..."}
//	POST /api/english  body: {"gloss":"..."}     ->  {"english":"..."}
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rs/cors"
)

// Glosser converts raw English text to an ISL gloss.
type Glosser interface {
	Gloss(raw string) (string, error)
}

// Reverser converts an ISL gloss back to English.
type Reverser interface {
	Translate(gloss string) string
}

type Server struct {
	glosser  Glosser
	reverser Reverser
}

// New returns the API handler with CORS enabled. reverser may be nil, in
// which case /api/english returns 404.
func New(glosser Glosser, reverser Reverser) http.Handler {
	s := &Server{glosser: glosser, reverser: reverser}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/isl", s.handleGloss)
	if reverser != nil {
		mux.HandleFunc("/api/english", s.handleEnglish)
	}

	return cors.Default().Handler(mux)
}

type glossRequest struct {
	Sentence string `json:"sentence"`
}

type glossResponse struct {
	IslGloss string `json:"isl_gloss"`
}

type englishRequest struct {
	Gloss string `json:"gloss"`
}

type englishResponse struct {
	English string `json:"english"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGloss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req glossRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Sentence == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No sentence provided"})
		return
	}

	gloss, err := s.glosser.Gloss(req.Sentence)
	if err != nil {
		log.Printf("gloss %q: %v", req.Sentence, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, glossResponse{IslGloss: gloss})
}

func (s *Server) handleEnglish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req englishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Gloss == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No gloss provided"})
		return
	}

	writeJSON(w, http.StatusOK, englishResponse{English: s.reverser.Translate(req.Gloss)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
