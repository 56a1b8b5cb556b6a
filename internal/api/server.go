// Package api exposes the tracker over HTTP as a JSON API. Handlers stay
// thin: resolve the profile, parse parameters, call a service, respond.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mleone/ironwill/internal/services"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	Entries  services.EntryService
	Progress services.ProgressService
	Compound services.CompoundService
	Stats    services.StatsService
	Profiles services.ProfileService
	Books    services.BookService

	// Now returns the reference day for streak and rollover computations.
	// Injected so tests can pin the calendar.
	Now func() time.Time
}

func (s *Server) today() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.profileMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/profiles", s.handleListProfiles)
	r.Post("/profiles", s.handleCreateProfile)
	r.Post("/profiles/{id}/select", s.handleSelectProfile)
	r.Post("/profiles/{id}/delete", s.handleDeleteProfile)

	r.Get("/entries", s.handleListEntries)
	r.Get("/entries/{date}", s.handleGetEntry)
	r.Put("/entries/{date}", s.handleSaveEntry)
	r.Delete("/entries/{date}", s.handleDeleteEntry)

	r.Get("/streaks/{field}", s.handleFieldStreaks)
	r.Get("/habits/{habit}/stats", s.handleHabitStats)

	r.Get("/anchors/{habit}", s.handleAnchoredStreak)
	r.Post("/anchors/{habit}/break", s.handleBreakStreak)
	r.Post("/anchors/{habit}/restore", s.handleRestoreStreak)

	r.Get("/compound", s.handleCompoundTimeline)
	r.Get("/compound/reference", s.handleReferenceCurves)
	r.Post("/compound/archive", s.handleArchiveYear)
	r.Get("/compound/archives", s.handleListArchives)
	r.Get("/compound/archives/{year}", s.handleGetArchive)

	r.Get("/stats/training", s.handleTrainingStats)
	r.Get("/stats/ironman", s.handleIronmanStats)
	r.Get("/stats/weekly-volume", s.handleWeeklyVolume)
	r.Get("/stats/pnl", s.handleCumulativePnL)
	r.Get("/stats/pnl/monthly", s.handleMonthlyPnL)
	r.Get("/stats/summary", s.handleWellnessSummary)

	r.Get("/books", s.handleListBooks)
	r.Post("/books", s.handleAddBook)
	r.Post("/books/{id}/pages", s.handleBookPages)
	r.Post("/books/{id}/complete", s.handleBookComplete)
	r.Post("/books/{id}/abandon", s.handleBookAbandon)
	r.Post("/books/{id}/delete", s.handleBookDelete)

	return r
}
