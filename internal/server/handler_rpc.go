package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/me/msuite/pkg/kbrpc"
	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

// maxRPCBody bounds the size of a JSON-RPC request body.
const maxRPCBody = 1 << 20

type rpcHandler func(ctx context.Context, args []json.RawMessage) (any, error)

func (s *Server) rpcMethods() map[string]rpcHandler {
	return map[string]rpcHandler{
		kbrpc.MethodRunCheckM:          runMethod(s, kbrpc.MethodRunCheckM, s.runner.RunCheckM),
		kbrpc.MethodRunCheckMBinFolder: runMethod(s, kbrpc.MethodRunCheckMBinFolder, s.runner.RunBinFolder),
		kbrpc.MethodRunCheckMWorkflow:  runMethod(s, kbrpc.MethodRunCheckMWorkflow, s.runner.RunWorkflow),
		kbrpc.MethodRunCheckMLineageWf: runMethod(s, kbrpc.MethodRunCheckMLineageWf, s.runner.RunLineageWf),
		kbrpc.MethodStatus:             s.status,
	}
}

// runMethod adapts a ToolRunner method to the RPC dispatch table. The single
// positional param is decoded into a fresh record, trimmed, defaulted and
// validated before the runner sees it. With a store configured, the call is
// recorded as a run from decode onwards.
func runMethod[P any, PP interface {
	*P
	params.Record
}, R any](s *Server, method string, exec func(context.Context, PP) (R, error)) rpcHandler {
	return func(ctx context.Context, args []json.RawMessage) (any, error) {
		if len(args) != 1 {
			return nil, &kbrpc.RPCError{
				Name:    kbrpc.NameJSONRPCError,
				Code:    kbrpc.ErrCodeInvalidParams,
				Message: fmt.Sprintf("expected 1 param, got %d", len(args)),
			}
		}
		rec := PP(new(P))
		if err := rec.UnmarshalJSON(args[0]); err != nil {
			return nil, &kbrpc.RPCError{
				Name:    kbrpc.NameJSONRPCError,
				Code:    kbrpc.ErrCodeInvalidParams,
				Message: err.Error(),
			}
		}
		noteRequest(ctx, "", rec.Kind(), "", "")
		run := s.startRun(ctx, method, rec)
		if err := s.validator.Prepare(rec); err != nil {
			s.finishRun(ctx, run, nil, err)
			return nil, err
		}
		s.logger.Debug("running", "kind", rec.Kind(), "params", rec.String())
		res, err := exec(ctx, rec)
		if err != nil {
			s.finishRun(ctx, run, nil, err)
			return nil, err
		}
		s.finishRun(ctx, run, res, nil)
		return res, nil
	}
}

func (s *Server) status(_ context.Context, _ []json.RawMessage) (any, error) {
	return model.ServiceStatus{
		State:         "OK",
		Message:       "",
		Version:       Version,
		GitURL:        s.config.GitURL,
		GitCommitHash: s.config.GitCommit,
	}, nil
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRPCBody))
	if err != nil {
		writeRPCError(w, r, "", &kbrpc.RPCError{Name: kbrpc.NameJSONRPCError, Code: kbrpc.ErrCodeParseError, Message: err.Error()})
		return
	}

	var req kbrpc.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeRPCError(w, r, "", &kbrpc.RPCError{Name: kbrpc.NameJSONRPCError, Code: kbrpc.ErrCodeParseError, Message: "parse error: " + err.Error()})
		return
	}
	logger := s.logger.With("method", req.Method, "rpc_id", req.ID, "request_id", RequestIDFromContext(r.Context()))
	noteRequest(r.Context(), req.Method, "", "", "")

	if req.Method == "" {
		writeRPCError(w, r, req.ID, &kbrpc.RPCError{Name: kbrpc.NameJSONRPCError, Code: kbrpc.ErrCodeInvalidRequest, Message: "missing method"})
		return
	}
	handler, ok := s.rpcMethods()[req.Method]
	if !ok {
		writeRPCError(w, r, req.ID, &kbrpc.RPCError{Name: kbrpc.NameJSONRPCError, Code: kbrpc.ErrCodeMethodNotFound, Message: fmt.Sprintf("method %q not found", req.Method)})
		return
	}
	if req.Method != kbrpc.MethodStatus && s.config.RequireAuth && r.Header.Get("Authorization") == "" {
		writeRPCError(w, r, req.ID, &kbrpc.RPCError{Name: kbrpc.NameJSONRPCError, Code: kbrpc.ErrCodeAuthFailed, Message: "authentication required"})
		return
	}

	result, err := handler(r.Context(), req.Params)
	if err != nil {
		logger.Warn("rpc call failed", "error", err)
		writeRPCError(w, r, req.ID, toRPCError(err))
		return
	}

	logger.Debug("rpc call succeeded")
	writeRPCResult(w, r, req.ID, result)
}

// toRPCError maps handler errors onto KBase error objects.
func toRPCError(err error) *kbrpc.RPCError {
	var rpcErr *kbrpc.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && apiErr.Code == model.ErrValidation {
		return &kbrpc.RPCError{
			Name:    kbrpc.NameJSONRPCError,
			Code:    kbrpc.ErrCodeInvalidParams,
			Message: apiErr.Message,
			Detail:  apiErr.Summary(),
		}
	}
	return &kbrpc.RPCError{
		Name:    kbrpc.NameServerError,
		Code:    kbrpc.ErrCodeServerError,
		Message: err.Error(),
	}
}

func writeRPCResult(w http.ResponseWriter, r *http.Request, id string, result any) {
	raw, err := json.Marshal([]any{result})
	if err != nil {
		writeRPCError(w, r, id, toRPCError(fmt.Errorf("encoding result: %w", err)))
		return
	}
	writeRPC(w, http.StatusOK, kbrpc.Response{ID: id, Version: kbrpc.Version, Result: raw})
}

// writeRPCError sends a KBase error response. KBase servers use status 500
// for every JSON-RPC error.
func writeRPCError(w http.ResponseWriter, r *http.Request, id string, rpcErr *kbrpc.RPCError) {
	noteRequest(r.Context(), "", "", "", strconv.Itoa(rpcErr.Code))
	writeRPC(w, http.StatusInternalServerError, kbrpc.Response{ID: id, Version: kbrpc.Version, Error: rpcErr})
}

func writeRPC(w http.ResponseWriter, status int, resp kbrpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
