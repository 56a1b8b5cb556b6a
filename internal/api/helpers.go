package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}

// urlDate reads the {date} path parameter.
func urlDate(r *http.Request) (string, error) {
	date := chi.URLParam(r, "date")
	if _, err := models.ParseDate(date); err != nil {
		return "", errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return date, nil
}

// urlID reads the {id} path parameter.
func urlID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid id")
	}
	return id, nil
}

// queryDate reads an optional date query parameter, defaulting when absent.
func queryDate(r *http.Request, key string, def time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError(key, "must be YYYY-MM-DD")
	}
	return d, nil
}

// queryYear reads an optional year query parameter, defaulting when absent.
func queryYear(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return def, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError("year", "must be an integer")
	}
	return year, nil
}
