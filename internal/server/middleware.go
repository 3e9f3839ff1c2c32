package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// requestInfo is shared between the middleware and the handlers of one
// request. Handlers fill in what they learn so the request log line can
// name the RPC method, record kind and run. Handlers run on the request
// goroutine, so no locking is needed.
type requestInfo struct {
	id        string
	rpcMethod string
	kind      string
	runID     string
	errCode   string
}

type ctxKey struct{}

func infoFromContext(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(ctxKey{}).(*requestInfo)
	return info
}

// RequestIDFromContext returns the request ID assigned by the server, or ""
// outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if info := infoFromContext(ctx); info != nil {
		return info.id
	}
	return ""
}

// noteRequest records request details for the log line. Empty values leave
// the current ones in place.
func noteRequest(ctx context.Context, rpcMethod, kind, runID, errCode string) {
	info := infoFromContext(ctx)
	if info == nil {
		return
	}
	for _, f := range []struct {
		dst *string
		v   string
	}{{&info.rpcMethod, rpcMethod}, {&info.kind, kind}, {&info.runID, runID}, {&info.errCode, errCode}} {
		if f.v != "" {
			*f.dst = f.v
		}
	}
}

func (info *requestInfo) attrs() []any {
	var attrs []any
	if info.rpcMethod != "" {
		attrs = append(attrs, "rpc_method", info.rpcMethod)
	}
	if info.kind != "" {
		attrs = append(attrs, "kind", info.kind)
	}
	if info.runID != "" {
		attrs = append(attrs, "run_id", info.runID)
	}
	if info.errCode != "" {
		attrs = append(attrs, "error_code", info.errCode)
	}
	return attrs
}

// requestID returns "req_" plus the first 8 characters of a UUID.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// requestIDMiddleware assigns the request ID, echoes it in X-Request-ID and
// attaches the requestInfo the handlers report into.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &requestInfo{id: requestID()}
		w.Header().Set("X-Request-ID", info.id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, info)))
	})
}

// loggingMiddleware writes one line per request. A 5xx response that
// carries an error code was produced by a handler (every JSON-RPC error is a
// 500) and is logged at Warn. Other 5xx responses are logged at Error.
func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String(),
				"request_id", RequestIDFromContext(r.Context()),
			}
			level := slog.LevelInfo
			if info := infoFromContext(r.Context()); info != nil {
				attrs = append(attrs, info.attrs()...)
				if status >= 500 {
					level = slog.LevelError
					if info.errCode != "" {
						level = slog.LevelWarn
					}
				}
			}
			logger.Log(r.Context(), level, "request", attrs...)
		})
	}
}
