package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

// startRun records rec as a RUNNING call to method. It returns nil when no
// store is configured or the insert fails; run history never fails a call.
func (s *Server) startRun(ctx context.Context, method string, rec params.Record) *model.Run {
	if s.store == nil {
		return nil
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		s.logger.Warn("encode run params", "method", method, "error", err)
		return nil
	}
	run := &model.Run{
		ID:        "run_" + uuid.New().String(),
		Method:    method,
		Kind:      rec.Kind(),
		State:     model.RunStateRunning,
		Params:    raw,
		RequestID: RequestIDFromContext(ctx),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateRun(ctx, run); err != nil {
		s.logger.Warn("record run", "method", method, "error", err)
		return nil
	}
	noteRequest(ctx, "", "", run.ID, "")
	return run
}

// finishRun moves run to its terminal state. The update outlives a
// cancelled request context.
func (s *Server) finishRun(ctx context.Context, run *model.Run, result any, runErr error) {
	if run == nil {
		return
	}
	now := time.Now().UTC()
	run.CompletedAt = &now

	if runErr != nil {
		run.State = model.RunStateFailed
		run.Error = runErr.Error()
		var apiErr *model.APIError
		if errors.As(runErr, &apiErr) {
			run.Error = apiErr.Summary()
		}
	} else {
		run.State = model.RunStateSucceeded
		raw, err := json.Marshal(result)
		if err != nil {
			run.State = model.RunStateFailed
			run.Error = "encode result: " + err.Error()
		} else {
			run.Result = raw
		}
	}

	if err := s.store.UpdateRun(context.WithoutCancel(ctx), run); err != nil {
		s.logger.Warn("update run", "run_id", run.ID, "error", err)
	}
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, r, http.StatusNotFound, &model.APIError{Code: model.ErrNotFound, Message: "run history is not enabled"})
		return
	}

	q := r.URL.Query()
	opts := model.DefaultListOptions()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, model.NewBadRequestError("limit must be an integer"))
			return
		}
		opts.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, model.NewBadRequestError("offset must be an integer"))
			return
		}
		opts.Offset = n
	}
	opts.State = q.Get("state")
	opts.Kind = q.Get("kind")
	opts.Clamp()

	runs, total, err := s.store.ListRuns(r.Context(), opts)
	if err != nil {
		s.logger.Error("list runs", "error", err)
		respondError(w, r, http.StatusInternalServerError, &model.APIError{Code: model.ErrInternal, Message: "list runs failed"})
		return
	}
	if runs == nil {
		runs = []*model.Run{}
	}
	respondList(w, r, runs, &model.Pagination{
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
		HasMore: opts.Offset+len(runs) < total,
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.store == nil {
		respondError(w, r, http.StatusNotFound, model.NewNotFoundError("Run", id))
		return
	}

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.logger.Error("get run", "run_id", id, "error", err)
		respondError(w, r, http.StatusInternalServerError, &model.APIError{Code: model.ErrInternal, Message: "get run failed"})
		return
	}
	if run == nil {
		respondError(w, r, http.StatusNotFound, model.NewNotFoundError("Run", id))
		return
	}
	respondOK(w, r, run)
}
