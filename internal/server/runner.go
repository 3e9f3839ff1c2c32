package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/me/msuite/internal/cmdline"
	"github.com/me/msuite/internal/logging"
	"github.com/me/msuite/pkg/params"
)

// ToolRunner executes validated CheckM records. Implementations own process
// execution, staging and report creation.
type ToolRunner interface {
	// Name identifies the runner in health output.
	Name() string

	RunCheckM(ctx context.Context, p *params.CheckMInputParams) (*params.CheckMResults, error)
	RunBinFolder(ctx context.Context, p *params.CheckMBinFolderParams) (*params.CheckMResults, error)
	RunWorkflow(ctx context.Context, p *params.CheckMWorkflowParams) (*params.CheckMResults, error)
	RunLineageWf(ctx context.Context, p *params.CheckMLineageWfParams) (*params.CheckMLineageWfResult, error)
}

// DryRunRunner plans the checkm commands for a record and reports them
// without running anything. The planned command lines are returned in the
// result's "commands" extension property.
type DryRunRunner struct {
	builder *cmdline.Builder
	logger  *slog.Logger
}

// NewDryRunRunner creates a DryRunRunner using builder.
func NewDryRunRunner(builder *cmdline.Builder, logger *slog.Logger) *DryRunRunner {
	return &DryRunRunner{builder: builder, logger: logging.Component(logger, "dry-run")}
}

// Name returns "dry-run".
func (d *DryRunRunner) Name() string { return "dry-run" }

func (d *DryRunRunner) RunCheckM(ctx context.Context, p *params.CheckMInputParams) (*params.CheckMResults, error) {
	cmds, err := d.plan(ctx, p)
	if err != nil {
		return nil, err
	}
	return d.results(p.GetOutFolder(), cmds), nil
}

func (d *DryRunRunner) RunBinFolder(ctx context.Context, p *params.CheckMBinFolderParams) (*params.CheckMResults, error) {
	cmds, err := d.plan(ctx, p)
	if err != nil {
		return nil, err
	}
	return d.results(p.GetOutFolder(), cmds), nil
}

func (d *DryRunRunner) RunWorkflow(ctx context.Context, p *params.CheckMWorkflowParams) (*params.CheckMResults, error) {
	cmds, err := d.plan(ctx, p)
	if err != nil {
		return nil, err
	}
	// The workflow command's last argument is its output folder.
	argv := cmds[0].Argv
	return d.results(argv[len(argv)-1], cmds), nil
}

func (d *DryRunRunner) RunLineageWf(ctx context.Context, p *params.CheckMLineageWfParams) (*params.CheckMLineageWfResult, error) {
	cmds, err := d.plan(ctx, p)
	if err != nil {
		return nil, err
	}
	res := (&params.CheckMLineageWfResult{}).WithReportName(reportName())
	res.SetAdditionalProperty("commands", commandLines(cmds))
	return res, nil
}

func (d *DryRunRunner) plan(ctx context.Context, rec params.Record) ([]cmdline.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cmds, err := d.builder.Build(rec)
	if err != nil {
		return nil, err
	}
	for _, c := range cmds {
		d.logger.Info("planned command", "kind", rec.Kind(), "subcommand", c.Subcommand, "command", c.String())
	}
	return cmds, nil
}

func (d *DryRunRunner) results(folder string, cmds []cmdline.Command) *params.CheckMResults {
	res := (&params.CheckMResults{}).
		WithCheckMResultsFolder(folder).
		WithReportName(reportName())
	res.SetAdditionalProperty("commands", commandLines(cmds))
	return res
}

func reportName() string {
	return "kb_checkM_report_" + uuid.New().String()
}

func commandLines(cmds []cmdline.Command) []string {
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}
