package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/me/msuite/pkg/kbrpc"
	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

func rpcCall(t *testing.T, srv http.Handler, auth, body string, wantStatus int) kbrpc.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/rpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != wantStatus {
		t.Fatalf("status=%d, want %d, body=%s", w.Code, wantStatus, w.Body.String())
	}
	var resp kbrpc.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return resp
}

func TestRPC_RunCheckM(t *testing.T) {
	body := `{"id":"1","version":"1.1","method":"kb_Msuite.run_checkM","params":[{"subcommand":"lineage_wf","bin_folder":"/bins","out_folder":"/out","thread":4}]}`
	resp := rpcCall(t, testServer(), "", body, http.StatusOK)

	if resp.ID != "1" || resp.Version != "1.1" {
		t.Errorf("id=%q version=%q", resp.ID, resp.Version)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	res, err := kbrpc.UnmarshalResult[params.CheckMResults](&resp)
	if err != nil {
		t.Fatalf("UnmarshalResult: %v", err)
	}
	if res.GetCheckMResultsFolder() != "/out" {
		t.Errorf("checkM_results_folder = %q, want /out", res.GetCheckMResultsFolder())
	}
	if !strings.HasPrefix(res.GetReportName(), "kb_checkM_report_") {
		t.Errorf("report_name = %q", res.GetReportName())
	}
	var cmds []string
	if err := res.AdditionalProperties().Decode("commands", &cmds); err != nil {
		t.Fatalf("commands: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != "checkm lineage_wf -t 4 /bins /out" {
		t.Errorf("commands = %v", cmds)
	}
}

func TestRPC_RunLineageWf(t *testing.T) {
	body := `{"id":"2","method":"kb_Msuite.run_checkM_lineage_wf","params":[{"input_ref":"1/2/3","workspace_name":"ws"}]}`
	resp := rpcCall(t, testServer(), "", body, http.StatusOK)

	res, err := kbrpc.UnmarshalResult[params.CheckMLineageWfResult](&resp)
	if err != nil {
		t.Fatalf("UnmarshalResult: %v", err)
	}
	var cmds []string
	res.AdditionalProperties().Decode("commands", &cmds)
	if len(cmds) != 4 {
		t.Fatalf("commands = %v, want 4", cmds)
	}
	if !strings.HasPrefix(cmds[0], "checkm lineage_wf --reduced_tree -x fna /scratch/") {
		t.Errorf("first command = %q", cmds[0])
	}
}

func TestRPC_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantName string
	}{
		{"parse error", `{not json`, kbrpc.ErrCodeParseError, kbrpc.NameJSONRPCError},
		{"missing method", `{"id":"1","params":[]}`, kbrpc.ErrCodeInvalidRequest, kbrpc.NameJSONRPCError},
		{"unknown method", `{"id":"1","method":"kb_Msuite.nope","params":[]}`, kbrpc.ErrCodeMethodNotFound, kbrpc.NameJSONRPCError},
		{"param count", `{"id":"1","method":"kb_Msuite.run_checkM","params":[]}`, kbrpc.ErrCodeInvalidParams, kbrpc.NameJSONRPCError},
		{"param type", `{"id":"1","method":"kb_Msuite.run_checkM","params":[{"thread":"x"}]}`, kbrpc.ErrCodeInvalidParams, kbrpc.NameJSONRPCError},
		{"param not object", `{"id":"1","method":"kb_Msuite.run_checkM","params":["x"]}`, kbrpc.ErrCodeInvalidParams, kbrpc.NameJSONRPCError},
		{"validation", `{"id":"1","method":"kb_Msuite.run_checkM_lineage_wf","params":[{"input_ref":"1/2/3"}]}`, kbrpc.ErrCodeInvalidParams, kbrpc.NameJSONRPCError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := rpcCall(t, testServer(), "", tt.body, http.StatusInternalServerError)
			if resp.Error == nil {
				t.Fatal("expected error")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Name != tt.wantName {
				t.Errorf("name = %q, want %q", resp.Error.Name, tt.wantName)
			}
			if resp.Result != nil {
				t.Errorf("result = %s, want none", resp.Result)
			}
		})
	}
}

func TestRPC_ValidationDetail(t *testing.T) {
	body := `{"id":"1","method":"kb_Msuite.run_checkM_lineage_wf","params":[{"input_ref":"1/2/3","save_plots_dir":3}]}`
	resp := rpcCall(t, testServer(), "", body, http.StatusInternalServerError)
	want := "invalid checkm_lineage_wf parameters: workspace_name: required; save_plots_dir: must be 0 or 1"
	if resp.Error.Detail != want {
		t.Errorf("error detail = %q, want %q", resp.Error.Detail, want)
	}
}

func TestRPC_Status(t *testing.T) {
	resp := rpcCall(t, testServer(), "", `{"id":"s","method":"kb_Msuite.status","params":[]}`, http.StatusOK)
	st, err := kbrpc.UnmarshalResult[model.ServiceStatus](&resp)
	if err != nil {
		t.Fatalf("UnmarshalResult: %v", err)
	}
	if st.State != "OK" || st.Version != Version || st.GitCommitHash != "abc123" {
		t.Errorf("status = %+v", st)
	}
}

func TestRPC_RequireAuth(t *testing.T) {
	cfg := testConfig()
	cfg.RequireAuth = true
	srv := New(cfg, testLogger())

	body := `{"id":"1","method":"kb_Msuite.run_checkM_lineage_wf","params":[{"input_ref":"1/2/3","workspace_name":"ws"}]}`
	resp := rpcCall(t, srv, "", body, http.StatusInternalServerError)
	if resp.Error == nil || resp.Error.Code != kbrpc.ErrCodeAuthFailed {
		t.Fatalf("error = %+v, want auth failure", resp.Error)
	}

	rpcCall(t, srv, "token", body, http.StatusOK)
	rpcCall(t, srv, "", `{"id":"s","method":"kb_Msuite.status","params":[]}`, http.StatusOK)
}

// failingRunner fails every run with a fixed error.
type failingRunner struct {
	DryRunRunner
	err error
}

func (f *failingRunner) RunCheckM(context.Context, *params.CheckMInputParams) (*params.CheckMResults, error) {
	return nil, f.err
}

func TestRPC_RunnerError(t *testing.T) {
	srv := testServer(WithRunner(&failingRunner{err: errors.New("checkm exited with status 1")}))
	body := `{"id":"1","method":"kb_Msuite.run_checkM","params":[{"subcommand":"tetra","seq_file":"a","tetra_file":"b"}]}`
	resp := rpcCall(t, srv, "", body, http.StatusInternalServerError)
	if resp.Error.Code != kbrpc.ErrCodeServerError || resp.Error.Name != kbrpc.NameServerError {
		t.Errorf("error = %+v", resp.Error)
	}
	if resp.Error.Message != "checkm exited with status 1" {
		t.Errorf("message = %q", resp.Error.Message)
	}
}

// recordingRunner captures the workflow record it receives.
type recordingRunner struct {
	DryRunRunner
	got *params.CheckMWorkflowParams
}

func (r *recordingRunner) RunWorkflow(_ context.Context, p *params.CheckMWorkflowParams) (*params.CheckMResults, error) {
	r.got = p
	return (&params.CheckMResults{}).WithReportName("r"), nil
}

func TestRPC_RunnerSeesPreparedRecord(t *testing.T) {
	rr := &recordingRunner{}
	srv := testServer(WithRunner(rr))
	body := `{"id":"1","method":"kb_Msuite.run_checkM_workflow","params":[{"checkM_workflow_name":"lineage_wf","putative_genomes_folder":" /g ","workspace_name":"ws","reads_list":["r1"],"x":1}]}`
	rpcCall(t, srv, "", body, http.StatusOK)

	if rr.got == nil {
		t.Fatal("runner not called")
	}
	if rr.got.GetPutativeGenomesFolder() != "/g" {
		t.Errorf("putative_genomes_folder = %q, want trimmed", rr.got.GetPutativeGenomesFolder())
	}
	if rr.got.GetThread() != 1 || rr.got.GetMarkerset() != 107 || rr.got.GetFileExtension() != "fna" {
		t.Errorf("defaults not applied: %s", rr.got)
	}
	if _, ok := rr.got.AdditionalProperties().Get("x"); !ok {
		t.Error("extension property dropped")
	}
}

func TestClientAgainstServer(t *testing.T) {
	cfg := testConfig()
	cfg.RequireAuth = true
	ts := httptest.NewServer(New(cfg, testLogger()))
	defer ts.Close()

	client := kbrpc.NewClient(kbrpc.DefaultConfig().
		WithURL(ts.URL+"/rpc").
		WithToken("tok").
		WithRetries(0, time.Millisecond), testLogger())
	ctx := context.Background()

	in := (&params.CheckMBinFolderParams{}).
		WithCheckMCmdName("taxonomy_wf").
		WithBinFolder("/bins").
		WithOutFolder("/out").
		WithFileExtension(".fa").
		WithAdditionalProperty("domain", "Archaea")
	res, err := client.RunCheckMBinFolder(ctx, in)
	if err != nil {
		t.Fatalf("RunCheckMBinFolder: %v", err)
	}
	if res.GetCheckMResultsFolder() != "/out" {
		t.Errorf("checkM_results_folder = %q", res.GetCheckMResultsFolder())
	}
	var cmds []string
	res.AdditionalProperties().Decode("commands", &cmds)
	if len(cmds) != 1 || cmds[0] != "checkm taxonomy_wf -t 1 -x fa domain Archaea /bins /out" {
		t.Errorf("commands = %v", cmds)
	}

	// Submit dispatches on the record kind.
	rec, err := client.Submit(ctx, (&params.CheckMLineageWfParams{}).WithInputRef("1/2/3").WithWorkspaceName("ws"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Kind() != params.KindCheckMLineageResult {
		t.Errorf("kind = %q", rec.Kind())
	}

	_, err = client.RunCheckMLineageWf(ctx, &params.CheckMLineageWfParams{})
	if !kbrpc.IsInvalidParams(err) {
		t.Errorf("err = %v, want invalid params", err)
	}

	st, err := client.Status(ctx)
	if err != nil || st.State != "OK" {
		t.Errorf("Status = %+v, %v", st, err)
	}

	client.SetToken("")
	_, err = client.RunCheckMBinFolder(ctx, in)
	if !kbrpc.IsAuthError(err) {
		t.Errorf("err = %v, want auth error", err)
	}
}
