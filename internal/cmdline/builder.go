// Package cmdline builds the checkm command lines a tool runner would
// execute for a parameter record. Nothing here runs a process.
package cmdline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/me/msuite/pkg/params"
)

// DefaultBinary is the checkm executable name.
const DefaultBinary = "checkm"

// DefaultDomain is passed to taxonomy_wf when the record names none.
const DefaultDomain = "Bacteria"

// DefaultDistValue is the reference percentile used for dist_plot in the
// lineage workflow.
const DefaultDistValue = 95

var (
	// ErrUnknownSubcommand is returned for a subcommand with no command shape.
	ErrUnknownSubcommand = errors.New("unknown checkm subcommand")

	// ErrMissingField is returned when a positional argument has no value.
	ErrMissingField = errors.New("missing required field")
)

// Positional arguments of each supported subcommand, by record field name.
// Options (-t, -x, --reduced_tree, -q) come before these.
var subcommands = map[string][]string{
	"lineage_wf":  {"bin_folder", "out_folder"},
	"taxonomy_wf": {"bin_folder", "out_folder"},
	"bin_qa_plot": {"out_folder", "bin_folder", "plots_folder"},
	"gc_plot":     {"bin_folder", "plots_folder", "dist_value"},
	"marker_plot": {"out_folder", "bin_folder", "plots_folder"},
	"tetra":       {"seq_file", "tetra_file"},
	"dist_plot":   {"out_folder", "bin_folder", "plots_folder", "tetra_file", "dist_value"},
}

// Workflows are the subcommands the bin-folder and workflow records accept.
var Workflows = []string{"lineage_wf", "taxonomy_wf"}

// RequiredFields returns the record fields a subcommand needs as positional
// arguments. ok is false for an unsupported subcommand.
func RequiredFields(subcommand string) (fields []string, ok bool) {
	fields, ok = subcommands[subcommand]
	return fields, ok
}

// Subcommands returns the supported subcommands in a stable order.
func Subcommands() []string {
	return []string{"lineage_wf", "taxonomy_wf", "bin_qa_plot", "gc_plot", "marker_plot", "tetra", "dist_plot"}
}

// Command is one planned checkm invocation.
type Command struct {
	// Subcommand is the checkm subcommand, e.g. "lineage_wf".
	Subcommand string

	// Argv is the full argument vector including the binary.
	Argv []string
}

// String renders the command as a single shell-quoted line.
func (c Command) String() string {
	return shellescape.QuoteCommand(c.Argv)
}

// Builder plans checkm command lines for parameter records.
type Builder struct {
	// Binary is the checkm executable; DefaultBinary when empty.
	Binary string

	// ScratchDir holds folders for records that do not name their own
	// output location.
	ScratchDir string
}

// NewBuilder creates a Builder rooted at scratchDir.
func NewBuilder(binary, scratchDir string) *Builder {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Builder{Binary: binary, ScratchDir: scratchDir}
}

// Build returns the commands for rec in the order they would run.
func (b *Builder) Build(rec params.Record) ([]Command, error) {
	switch p := rec.(type) {
	case *params.CheckMInputParams:
		cmd, err := b.input(p)
		if err != nil {
			return nil, err
		}
		return []Command{cmd}, nil
	case *params.CheckMBinFolderParams:
		cmd, err := b.binFolder(p)
		if err != nil {
			return nil, err
		}
		return []Command{cmd}, nil
	case *params.CheckMWorkflowParams:
		return b.workflow(p)
	case *params.CheckMLineageWfParams:
		return b.lineageWf(p)
	default:
		return nil, fmt.Errorf("%w: %s has no command", params.ErrUnknownKind, rec.Kind())
	}
}

// input builds the single command for a generic invocation.
func (b *Builder) input(p *params.CheckMInputParams) (Command, error) {
	sub := p.GetSubcommand()
	positional, ok := subcommands[sub]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownSubcommand, sub)
	}

	var opts []string
	if p.Thread != nil {
		opts = append(opts, "-t", strconv.FormatInt(p.GetThread(), 10))
	}
	if p.GetReducedTree() == 1 && sub == "lineage_wf" {
		opts = append(opts, "--reduced_tree")
	}
	if p.GetQuiet() == 1 {
		opts = append(opts, "-q")
	}

	values := map[string]string{
		"bin_folder":   p.GetBinFolder(),
		"out_folder":   p.GetOutFolder(),
		"plots_folder": p.GetPlotsFolder(),
		"seq_file":     p.GetSeqFile(),
		"tetra_file":   p.GetTetraFile(),
	}
	if p.DistValue != nil {
		values["dist_value"] = strconv.FormatInt(p.GetDistValue(), 10)
	}

	args, err := positionalArgs(positional, values)
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", sub, err)
	}
	if sub == "taxonomy_wf" {
		args = append([]string{"domain", domainOf(p.AdditionalProperties())}, args...)
	}
	return b.command(sub, opts, args), nil
}

func (b *Builder) binFolder(p *params.CheckMBinFolderParams) (Command, error) {
	sub := p.GetCheckMCmdName()
	if !isWorkflow(sub) {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownSubcommand, sub)
	}
	opts := threadAndExtension(p.Thread, p.FileExtension)
	args, err := positionalArgs(subcommands[sub], map[string]string{
		"bin_folder": p.GetBinFolder(),
		"out_folder": p.GetOutFolder(),
	})
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", sub, err)
	}
	if sub == "taxonomy_wf" {
		args = append([]string{"domain", domainOf(p.AdditionalProperties())}, args...)
	}
	return b.command(sub, opts, args), nil
}

// workflow builds the workflow command and, when plotmarker is 1, the
// marker plot that follows it. Output lands under the scratch directory.
func (b *Builder) workflow(p *params.CheckMWorkflowParams) ([]Command, error) {
	sub := p.GetCheckMWorkflowName()
	if !isWorkflow(sub) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubcommand, sub)
	}
	bins := p.GetPutativeGenomesFolder()
	if bins == "" {
		return nil, fmt.Errorf("%s: %w: putative_genomes_folder", sub, ErrMissingField)
	}
	out := b.scratch("checkM_results")
	plots := b.scratch("checkM_plots")

	opts := threadAndExtension(p.Thread, p.FileExtension)
	if p.GetExternalGenes() == 1 {
		opts = append(opts, "--genes")
	}
	args := []string{bins, out}
	if sub == "taxonomy_wf" {
		args = append([]string{"domain", domainOf(p.AdditionalProperties())}, args...)
	}

	cmds := []Command{b.command(sub, opts, args)}
	if p.GetPlotmarker() == 1 {
		cmds = append(cmds, b.command("marker_plot", nil, []string{out, bins, plots}))
	}
	return cmds, nil
}

// lineageWf plans the lineage workflow over staged input followed by the
// QA, tetranucleotide and distance plots.
func (b *Builder) lineageWf(p *params.CheckMLineageWfParams) ([]Command, error) {
	if p.GetInputRef() == "" {
		return nil, fmt.Errorf("lineage_wf: %w: input_ref", ErrMissingField)
	}
	base := b.scratch(refDirName(p.GetInputRef()))
	bins := filepath.Join(base, "bins")
	out := filepath.Join(base, "output")
	plots := filepath.Join(base, "plots")
	allSeq := filepath.Join(base, "all_sequences.fna")
	tetra := filepath.Join(base, "tetra.tsv")
	dist := strconv.Itoa(DefaultDistValue)

	return []Command{
		b.command("lineage_wf", []string{"--reduced_tree", "-x", "fna"}, []string{bins, out}),
		b.command("bin_qa_plot", nil, []string{out, bins, plots}),
		b.command("tetra", nil, []string{allSeq, tetra}),
		b.command("dist_plot", nil, []string{out, bins, plots, tetra, dist}),
	}, nil
}

func (b *Builder) command(sub string, opts, args []string) Command {
	binary := b.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	argv := make([]string, 0, 2+len(opts)+len(args))
	argv = append(argv, binary, sub)
	argv = append(argv, opts...)
	argv = append(argv, args...)
	return Command{Subcommand: sub, Argv: argv}
}

func (b *Builder) scratch(name string) string {
	return filepath.Join(b.ScratchDir, name)
}

func positionalArgs(fields []string, values map[string]string) ([]string, error) {
	args := make([]string, 0, len(fields))
	for _, f := range fields {
		v := values[f]
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f)
		}
		args = append(args, v)
	}
	return args, nil
}

func threadAndExtension(thread *int64, ext *string) []string {
	var opts []string
	if thread != nil {
		opts = append(opts, "-t", strconv.FormatInt(*thread, 10))
	}
	if ext != nil && *ext != "" {
		opts = append(opts, "-x", strings.TrimPrefix(*ext, "."))
	}
	return opts
}

func isWorkflow(name string) bool {
	for _, w := range Workflows {
		if w == name {
			return true
		}
	}
	return false
}

// domainOf reads the taxonomy domain from the extension bag.
func domainOf(extra *params.Properties) string {
	var domain string
	if err := extra.Decode("domain", &domain); err != nil || domain == "" {
		return DefaultDomain
	}
	return domain
}

// refDirName turns an object reference such as "12/3/4" into a folder name.
func refDirName(ref string) string {
	return "ref_" + strings.NewReplacer("/", "_", ";", "_", " ", "_").Replace(ref)
}
