package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/me/msuite/pkg/model"
)

func respondOK(w http.ResponseWriter, r *http.Request, data any) {
	respondJSON(w, r, http.StatusOK, data, nil, nil)
}

func respondList(w http.ResponseWriter, r *http.Request, data any, pg *model.Pagination) {
	respondJSON(w, r, http.StatusOK, data, pg, nil)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *model.APIError) {
	respondJSON(w, r, status, nil, nil, apiErr)
}

// respondJSON writes the REST envelope stamped with the request ID. The
// error code, if any, is noted for the request log.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any, pg *model.Pagination, apiErr *model.APIError) {
	resp := model.Response{
		Status:     "ok",
		RequestID:  RequestIDFromContext(r.Context()),
		Timestamp:  time.Now().UTC(),
		Data:       data,
		Pagination: pg,
	}
	if apiErr != nil {
		resp.Status = "error"
		resp.Error = apiErr
		noteRequest(r.Context(), "", "", "", string(apiErr.Code))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
