package kbrpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/me/msuite/pkg/params"
)

func testConfig(url string) Config {
	return DefaultConfig().WithURL(url).WithRetries(2, time.Millisecond)
}

func TestClient_Envelope(t *testing.T) {
	var got Request
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"version":"1.1","id":"x","result":[{"report_name":"r1","report_ref":"1/2/3","extra":true}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL).WithToken("tok123"), nil)
	p := (&params.CheckMLineageWfParams{}).WithInputRef("1/2/3").WithWorkspaceName("ws")

	res, err := c.RunCheckMLineageWf(context.Background(), p)
	if err != nil {
		t.Fatalf("RunCheckMLineageWf: %v", err)
	}

	if got.Method != MethodRunCheckMLineageWf {
		t.Errorf("Method = %q, want %q", got.Method, MethodRunCheckMLineageWf)
	}
	if got.Version != "1.1" {
		t.Errorf("Version = %q, want 1.1", got.Version)
	}
	if got.ID == "" {
		t.Error("ID is empty")
	}
	if len(got.Params) != 1 || string(got.Params[0]) != `{"input_ref":"1/2/3","workspace_name":"ws"}` {
		t.Errorf("Params = %s", got.Params)
	}
	if auth != "tok123" {
		t.Errorf("Authorization = %q, want tok123", auth)
	}
	if res.GetReportName() != "r1" || res.GetReportRef() != "1/2/3" {
		t.Errorf("result = %s", res)
	}
	if _, ok := res.AdditionalProperties().Get("extra"); !ok {
		t.Error("unknown result key dropped")
	}
}

func TestClient_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"version":"1.1","id":"x","error":{"name":"JSONRPCError","code":-32602,"message":"invalid parameters","error":"bin_folder: required"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	_, err := c.RunCheckM(context.Background(), &params.CheckMInputParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsInvalidParams(err) {
		t.Errorf("IsInvalidParams(%v) = false", err)
	}
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Detail != "bin_folder: required" {
		t.Errorf("RPCError = %+v", rpcErr)
	}
}

func TestClient_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"version":"1.1","result":[{"state":"OK","message":"","version":"0.0.1","git_url":"","git_commit_hash":""}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	st, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.State != "OK" {
		t.Errorf("State = %q, want OK", st.State)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}
}

func TestClient_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.Copy(io.Discard, r.Body)
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	_, err := c.Status(context.Background())
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("err = %v, want HTTP 401", err)
	}
	if !IsAuthError(err) {
		t.Error("IsAuthError = false")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestClient_Submit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.Method != MethodRunCheckMWorkflow {
			t.Errorf("Method = %q", req.Method)
		}
		w.Write([]byte(`{"version":"1.1","result":[{"checkM_results_folder":"/out"}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	rec, err := c.Submit(context.Background(), (&params.CheckMWorkflowParams{}).WithCheckMWorkflowName("lineage_wf"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	res, ok := rec.(*params.CheckMResults)
	if !ok {
		t.Fatalf("result type %T", rec)
	}
	if res.GetCheckMResultsFolder() != "/out" {
		t.Errorf("folder = %q", res.GetCheckMResultsFolder())
	}

	if _, err := c.Submit(context.Background(), &params.CheckMResults{}); !errors.Is(err, params.ErrUnknownKind) {
		t.Errorf("Submit(result record) err = %v", err)
	}
}

func TestUnmarshalResult_Empty(t *testing.T) {
	_, err := UnmarshalResult[json.RawMessage](&Response{Result: json.RawMessage(`[]`)})
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("err = %v, want ErrEmptyResult", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"503", &HTTPError{StatusCode: 503}, true},
		{"429", &HTTPError{StatusCode: 429}, true},
		{"400", &HTTPError{StatusCode: 400}, false},
		{"server error", &RPCError{Code: ErrCodeServerError}, true},
		{"auth", &RPCError{Code: ErrCodeAuthFailed}, false},
		{"invalid params", &RPCError{Code: ErrCodeInvalidParams}, false},
		{"internal", &RPCError{Code: ErrCodeInternalError}, true},
		{"transport", &transportError{err: io.ErrUnexpectedEOF}, true},
		{"other", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadTokenFromEnv(t *testing.T) {
	t.Setenv(TokenEnv, "  abc  ")
	tok, err := LoadToken()
	if err != nil || tok != "abc" {
		t.Errorf("LoadToken() = %q, %v", tok, err)
	}

	t.Setenv(TokenEnv, "")
	t.Setenv("HOME", t.TempDir())
	if _, err := LoadToken(); !errors.Is(err, ErrNoToken) {
		t.Errorf("LoadToken() err = %v, want ErrNoToken", err)
	}
}
