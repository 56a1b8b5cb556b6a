package api

import (
	"net/http"
)

func (s *Server) handleTrainingStats(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	progress, err := s.Stats.IronmanProgress(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, progress.Totals)
}

func (s *Server) handleIronmanStats(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	progress, err := s.Stats.IronmanProgress(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, progress)
}

func (s *Server) handleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	day, err := queryDate(r, "date", s.today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	vol, err := s.Stats.WeeklyVolume(r.Context(), profile.ID, day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, vol)
}

func (s *Server) handleCumulativePnL(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	points, err := s.Stats.CumulativePnL(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"points": points})
}

func (s *Server) handleMonthlyPnL(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	months, err := s.Stats.MonthlyPnL(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"months": months})
}

func (s *Server) handleWellnessSummary(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	summary, err := s.Stats.WellnessSummary(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}
