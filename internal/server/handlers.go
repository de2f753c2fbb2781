package server

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/answer"
	"github.com/g5becks/desk/internal/question"
	"github.com/g5becks/desk/internal/render"
)

type listResponse struct {
	question.PageData
	Pagination question.Pagination `json:"pagination"`
}

type questionResponse struct {
	Question question.Question `json:"question"`
	Sections []answer.Section  `json:"sections"`
	Stats    answer.Stats      `json:"stats"`
}

type parseResponse struct {
	Sections     []answer.Section `json:"sections"`
	Stats        answer.Stats     `json:"stats"`
	Unstructured bool             `json:"unstructured"`
}

type askRequest struct {
	Question string `json:"question"`
}

type feedbackRequest struct {
	Rating  *string `json:"rating"`
	Comment *string `json:"comment"`
}

// handleListQuestions serves one page of the question list. Search and page
// state live in a per-request view so concurrent clients do not share it.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			jsonError(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}
		page = n
	}

	view := question.NewStore(s.store.All(), s.opts.PerPage)
	view.SetSearchTerm(r.URL.Query().Get("q"))
	view.SetCurrentPage(page)

	data := view.Page()
	writeJSON(w, http.StatusOK, listResponse{
		PageData:   data,
		Pagination: question.PageWindow(data.CurrentPage, data.TotalPages),
	})
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	q, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		jsonError(w, "question not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, newQuestionResponse(q))
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	q, err := s.store.Generate(r.Context(), req.Question)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.persist(); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newQuestionResponse(q))
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req feedbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Rating == nil && req.Comment == nil {
		jsonError(w, "rating or comment is required", http.StatusBadRequest)
		return
	}

	var rating *question.Rating
	if req.Rating != nil {
		parsed, ok := question.ParseRating(*req.Rating)
		if !ok {
			jsonError(w, fmt.Sprintf("rating must be %q or %q", question.RatingHelpful, question.RatingNotHelpful), http.StatusBadRequest)
			return
		}
		rating = &parsed
	}

	var comment *string
	if req.Comment != nil {
		trimmed := strings.TrimSpace(*req.Comment)
		comment = &trimmed
	}

	q, err := s.store.SetFeedback(id, rating, comment)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.persist(); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		jsonError(w, "reading body: "+err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	sections := answer.Parse(string(body))
	if sections == nil {
		sections = []answer.Section{}
	}

	writeJSON(w, http.StatusOK, parseResponse{
		Sections:     sections,
		Stats:        answer.Summarize(sections),
		Unstructured: answer.IsUnstructured(sections),
	})
}

func (s *Server) handleQuestionPage(w http.ResponseWriter, r *http.Request) {
	q, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!doctype html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n<h1>%s</h1>\n",
		html.EscapeString(q.Question), html.EscapeString(q.Question))

	if err := render.HTML(w, q.Sections()); err != nil {
		s.log.Error("rendering answer", "id", q.ID, "error", err)
		return
	}

	fmt.Fprint(w, "</body>\n</html>\n")
}

func newQuestionResponse(q question.Question) questionResponse {
	sections := q.Sections()
	if sections == nil {
		sections = []answer.Section{}
	}

	return questionResponse{
		Question: q,
		Sections: sections,
		Stats:    answer.Summarize(sections),
	}
}

// writeError maps an oops error code to an HTTP status.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if oopsErr, ok := oops.AsOops(err); ok {
		switch fmt.Sprint(oopsErr.Code()) {
		case "INVALID_ARGS":
			status = http.StatusBadRequest
		case "QUESTION_NOT_FOUND":
			status = http.StatusNotFound
		case "CANCELLED":
			status = http.StatusServiceUnavailable
		}
	}

	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}

	jsonError(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
