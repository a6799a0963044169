package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poiesic/prodsearch/catalog"
	"github.com/poiesic/prodsearch/core"
)

// Client-facing error messages.
const (
	msgQueryRequired         = "query is required"
	msgModelUnavailable      = "Model is still loading or failed to load. Please try again later."
	msgEmbeddingsUnavailable = "Product embeddings are still being computed. Please try again later."
	msgSearchFailedPrefix    = "An error occurred during search: "
	msgBodyTooLarge          = "request body too large"
)

var errMissingQuery = errors.New("missing query field")

// maxFormBytes bounds the size of a /search request body.
const maxFormBytes = 1 << 20

type searchResponse struct {
	Results []core.RankedResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type categoryCount struct {
	Name  string
	Count int
}

type indexData struct {
	Title        string
	ProductCount int
	Categories   []categoryCount
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	products := s.backend.Products()

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}

	data := indexData{Title: s.title, ProductCount: len(products)}
	for _, name := range catalog.Categories(products) {
		data.Categories = append(data.Categories, categoryCount{Name: name, Count: counts[name]})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, data); err != nil {
		s.logger.Error("error rendering index", "err", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.backend.Status(r.Context()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, err := formQuery(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		writeError(w, http.StatusUnprocessableEntity, msgQueryRequired)
		return
	}

	results, err := s.backend.Search(r.Context(), query)
	if err != nil {
		status, msg := classifySearchError(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("search failed", "query", query, "status", status, "err", err)
		}
		writeError(w, status, msg)
		return
	}
	if results == nil {
		results = []core.RankedResult{}
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

// formQuery extracts the "query" field from a urlencoded or multipart body.
// A missing or empty field yields errMissingQuery; an oversized body yields
// the *http.MaxBytesError from the body reader.
func formQuery(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return "", err
	}
	values := r.PostForm["query"]
	if len(values) == 0 || values[0] == "" {
		return "", errMissingQuery
	}
	return values[0], nil
}

// classifySearchError maps search errors to an HTTP status and client message.
func classifySearchError(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrEmptyQuery):
		return http.StatusUnprocessableEntity, msgQueryRequired
	case errors.Is(err, core.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, msgModelUnavailable
	case errors.Is(err, core.ErrEmbeddingComputation):
		return http.StatusServiceUnavailable, msgEmbeddingsUnavailable
	default:
		return http.StatusInternalServerError, msgSearchFailedPrefix + err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
