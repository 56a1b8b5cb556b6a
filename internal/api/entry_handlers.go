package api

import (
	"net/http"
	"strconv"

	"github.com/mleone/ironwill/internal/models"
)

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	q := r.URL.Query()

	filter := models.EntryFilter{
		ProfileID: profile.ID,
		From:      q.Get("from"),
		To:        q.Get("to"),
	}
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	entries, total, err := s.Entries.ListEntries(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"entries": entries,
		"total":   total,
	})
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	date, err := urlDate(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.Entries.GetEntry(r.Context(), profile.ID, date)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, entry)
}

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	date, err := urlDate(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// Days default to clean: a body that never mentions weed_clean must not
	// record an explicitly broken day.
	entry := models.DailyEntry{WeedClean: true}
	if err := decodeJSON(r, &entry); err != nil {
		handleError(w, r, err)
		return
	}
	// The URL is authoritative for identity.
	entry.ProfileID = profile.ID
	entry.Date = date

	saved, err := s.Entries.SaveEntry(r.Context(), entry)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, saved)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	date, err := urlDate(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Entries.DeleteEntry(r.Context(), profile.ID, date); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
