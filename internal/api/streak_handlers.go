package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleFieldStreaks(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	today, err := queryDate(r, "date", s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Progress.FieldStreaks(r.Context(), profile.ID, chi.URLParam(r, "field"), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleHabitStats(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	today, err := queryDate(r, "date", s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.Progress.HabitStats(r.Context(), profile.ID, chi.URLParam(r, "habit"), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleAnchoredStreak(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	today, err := queryDate(r, "date", s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	status, err := s.Progress.AnchoredStreak(r.Context(), profile.ID, chi.URLParam(r, "habit"), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}

func (s *Server) handleBreakStreak(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	status, err := s.Progress.BreakStreak(r.Context(), profile.ID, chi.URLParam(r, "habit"), s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}

func (s *Server) handleRestoreStreak(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	status, err := s.Progress.RestoreStreak(r.Context(), profile.ID, chi.URLParam(r, "habit"), s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}
