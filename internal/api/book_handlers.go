package api

import (
	"net/http"
	"strconv"

	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/models"
)

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	q := r.URL.Query()

	filter := models.BookFilter{
		ProfileID: profile.ID,
		Status:    q.Get("status"),
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("year", "must be an integer"))
			return
		}
		filter.CompletedYear = year
	}

	books, err := s.Books.ListBooks(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"books": books})
}

func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	var book models.Book
	if err := decodeJSON(r, &book); err != nil {
		handleError(w, r, err)
		return
	}
	book.ProfileID = profile.ID

	added, err := s.Books.AddBook(r.Context(), book)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, added)
}

func (s *Server) handleBookPages(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var body struct {
		PagesRead int `json:"pages_read"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	book, err := s.Books.UpdateProgress(r.Context(), id, profile.ID, body.PagesRead, s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, book)
}

func (s *Server) handleBookComplete(w http.ResponseWriter, r *http.Request) {
	s.setBookStatus(w, r, models.BookStatusCompleted)
}

func (s *Server) handleBookAbandon(w http.ResponseWriter, r *http.Request) {
	s.setBookStatus(w, r, models.BookStatusAbandoned)
}

func (s *Server) setBookStatus(w http.ResponseWriter, r *http.Request, status string) {
	profile := profileFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	book, err := s.Books.SetStatus(r.Context(), id, profile.ID, status, s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, book)
}

func (s *Server) handleBookDelete(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	id, err := urlID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Books.DeleteBook(r.Context(), id, profile.ID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
