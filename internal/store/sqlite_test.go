package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/me/msuite/pkg/model"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRun(id string, created time.Time) *model.Run {
	return &model.Run{
		ID:        id,
		Method:    "kb_Msuite.run_checkM",
		Kind:      "checkm_input",
		State:     model.RunStateRunning,
		Params:    json.RawMessage(`{"subcommand":"lineage_wf","bin_folder":"/bins","thread":4}`),
		RequestID: "req_0000abcd",
		CreatedAt: created,
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	st := testStore(t)
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestRunCRUD(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Millisecond)

	run := sampleRun("run_1", created)
	if err := st.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	got, err := st.GetRun(ctx, "run_1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got == nil {
		t.Fatal("GetRun returned nil")
	}
	if got.State != model.RunStateRunning || got.Kind != "checkm_input" || got.RequestID != "req_0000abcd" {
		t.Errorf("got %+v", got)
	}
	// Params keep their key order byte for byte.
	if string(got.Params) != string(run.Params) {
		t.Errorf("Params = %s, want %s", got.Params, run.Params)
	}
	if got.Result != nil {
		t.Errorf("Result = %s, want nil", got.Result)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.CompletedAt != nil {
		t.Errorf("CompletedAt = %v, want nil", got.CompletedAt)
	}

	done := created.Add(time.Second)
	run.State = model.RunStateSucceeded
	run.Result = json.RawMessage(`{"checkM_results_folder":"/out","report_name":"r"}`)
	run.CompletedAt = &done
	if err := st.UpdateRun(ctx, run); err != nil {
		t.Fatalf("UpdateRun: %v", err)
	}

	got, _ = st.GetRun(ctx, "run_1")
	if got.State != model.RunStateSucceeded {
		t.Errorf("State = %s", got.State)
	}
	if string(got.Result) != string(run.Result) {
		t.Errorf("Result = %s", got.Result)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, done)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	st := testStore(t)
	got, err := st.GetRun(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestUpdateRun_NotFound(t *testing.T) {
	st := testStore(t)
	run := sampleRun("missing", time.Now())
	if err := st.UpdateRun(context.Background(), run); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestListRuns(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i := 0; i < 5; i++ {
		run := sampleRun(fmt.Sprintf("run_%d", i), base.Add(time.Duration(i)*time.Second))
		if i%2 == 1 {
			run.State = model.RunStateFailed
			run.Kind = "checkm_lineage_wf"
		}
		if err := st.CreateRun(ctx, run); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
	}

	runs, total, err := st.ListRuns(ctx, model.ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if total != 5 || len(runs) != 2 {
		t.Fatalf("total=%d len=%d, want 5 and 2", total, len(runs))
	}
	if runs[0].ID != "run_4" || runs[1].ID != "run_3" {
		t.Errorf("order = %s, %s; want newest first", runs[0].ID, runs[1].ID)
	}

	runs, total, _ = st.ListRuns(ctx, model.ListOptions{Limit: 10, State: string(model.RunStateFailed)})
	if total != 2 || len(runs) != 2 {
		t.Errorf("failed: total=%d len=%d, want 2", total, len(runs))
	}

	runs, total, _ = st.ListRuns(ctx, model.ListOptions{Kind: "checkm_input", Offset: 2})
	if total != 3 || len(runs) != 1 || runs[0].ID != "run_0" {
		t.Errorf("kind+offset: total=%d runs=%v", total, runs)
	}
}

func TestMigrate_AddsColumnToOldTable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	path := filepath.Join(t.TempDir(), "old.db")
	st, err := NewSQLiteStore(path, logger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	// A runs table from before request_id existed.
	_, err = st.db.ExecContext(ctx, `CREATE TABLE runs (
		id TEXT PRIMARY KEY, method TEXT NOT NULL, kind TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT 'RUNNING', params TEXT NOT NULL DEFAULT '{}',
		result TEXT NOT NULL DEFAULT '', error TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL, completed_at TEXT)`)
	if err != nil {
		t.Fatalf("create old table: %v", err)
	}
	if err := st.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := st.CreateRun(ctx, sampleRun("run_1", time.Now())); err != nil {
		t.Fatalf("CreateRun after migrate: %v", err)
	}
}
