package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Pagination is the envelope metadata on list responses.
type Pagination struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
	Count  int   `json:"count"`
}

type listEnvelope struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondList(w http.ResponseWriter, data interface{}, limit, offset int64, count int) {
	respondJSON(w, http.StatusOK, listEnvelope{
		Data:       data,
		Pagination: Pagination{Limit: limit, Offset: offset, Count: count},
	})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func respondInternal(w http.ResponseWriter, msg string, err error) {
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   msg,
		"message": err.Error(),
	})
}

// parsePagination reads limit and offset query parameters with the 100/0
// defaults. Unparsable or non-positive limits fall back to the default.
func parsePagination(r *http.Request) (limit, offset int64) {
	limit, offset = 100, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}
