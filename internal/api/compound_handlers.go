package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/logger"
)

func (s *Server) handleCompoundTimeline(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	log := logger.FromContext(r.Context())

	today := s.today()
	year, err := queryYear(r, today.Year())
	if err != nil {
		handleError(w, r, err)
		return
	}

	// A timeline load in January may be the first touch of the new year, so
	// freeze the previous one before reading.
	if err := s.Compound.RolloverIfNeeded(r.Context(), profile.ID, today); err != nil {
		log.Error("year rollover failed: %v", err)
		handleError(w, r, err)
		return
	}

	timeline, err := s.Compound.Timeline(r.Context(), profile.ID, year)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, timeline)
}

func (s *Server) handleReferenceCurves(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from", time.Time{})
	if err != nil {
		handleError(w, r, err)
		return
	}
	to, err := queryDate(r, "to", time.Time{})
	if err != nil {
		handleError(w, r, err)
		return
	}
	if from.IsZero() || to.IsZero() {
		handleError(w, r, errors.NewBadRequestError("from and to are required"))
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"better":  engine.ReferenceCurve(from, to, engine.RateBetter),
		"neutral": engine.ReferenceCurve(from, to, engine.RateNeutral),
		"worse":   engine.ReferenceCurve(from, to, engine.RateWorse),
	})
}

func (s *Server) handleArchiveYear(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	year, err := queryYear(r, s.today().Year()-1)
	if err != nil {
		handleError(w, r, err)
		return
	}

	archive, err := s.Compound.ArchiveYear(r.Context(), profile.ID, year)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if archive == nil {
		respondJSON(w, r, http.StatusOK, map[string]any{"archived": false, "year": year})
		return
	}
	respondJSON(w, r, http.StatusOK, archive)
}

func (s *Server) handleListArchives(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	years, err := s.Compound.ListArchivedYears(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"years": years})
}

func (s *Server) handleGetArchive(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid year"))
		return
	}

	archive, err := s.Compound.GetArchive(r.Context(), profile.ID, year)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, archive)
}
