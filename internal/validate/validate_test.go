package validate

import (
	"reflect"
	"testing"

	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

func fieldsOf(apiErr *model.APIError) []string {
	if apiErr == nil {
		return nil
	}
	return apiErr.Fields()
}

func TestValidate_Input(t *testing.T) {
	tests := []struct {
		name string
		rec  *params.CheckMInputParams
		want []string
	}{
		{
			name: "valid lineage_wf",
			rec:  (&params.CheckMInputParams{}).WithSubcommand("lineage_wf").WithBinFolder("/b").WithOutFolder("/o"),
		},
		{
			name: "missing subcommand",
			rec:  &params.CheckMInputParams{},
			want: []string{"subcommand"},
		},
		{
			name: "unsupported subcommand",
			rec:  (&params.CheckMInputParams{}).WithSubcommand("tree"),
			want: []string{"subcommand"},
		},
		{
			name: "tetra missing tetra_file",
			rec:  (&params.CheckMInputParams{}).WithSubcommand("tetra").WithSeqFile("/all.fna"),
			want: []string{"tetra_file"},
		},
		{
			name: "dist_plot out of range",
			rec: (&params.CheckMInputParams{}).WithSubcommand("dist_plot").
				WithOutFolder("/o").WithBinFolder("/b").WithPlotsFolder("/p").WithTetraFile("/t").
				WithDistValue(101),
			want: []string{"dist_value"},
		},
		{
			name: "bad thread and flags",
			rec: (&params.CheckMInputParams{}).WithSubcommand("lineage_wf").WithBinFolder("/b").WithOutFolder("/o").
				WithThread(0).WithReducedTree(2).WithQuiet(-1),
			want: []string{"thread", "reduced_tree", "quiet"},
		},
	}

	v := NewValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldsOf(v.Validate(tt.rec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("failing fields = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate_BinFolder(t *testing.T) {
	v := NewValidator(nil)

	ok := (&params.CheckMBinFolderParams{}).
		WithBinFolder("/b").WithOutFolder("/o").WithCheckMCmdName("taxonomy_wf").WithFileExtension(".fa")
	if apiErr := v.Validate(ok); apiErr != nil {
		t.Errorf("Validate() = %v, want nil", apiErr)
	}

	bad := (&params.CheckMBinFolderParams{}).WithCheckMCmdName("qa").WithFileExtension("txt")
	want := []string{"bin_folder", "out_folder", "checkM_cmd_name", "file_extension"}
	if got := fieldsOf(v.Validate(bad)); !reflect.DeepEqual(got, want) {
		t.Errorf("failing fields = %v, want %v", got, want)
	}
}

func TestValidate_Workflow(t *testing.T) {
	base := func() *params.CheckMWorkflowParams {
		return (&params.CheckMWorkflowParams{}).
			WithCheckMWorkflowName("lineage_wf").
			WithPutativeGenomesFolder("/g").
			WithWorkspaceName("ws").
			WithAbundList([]string{"abund.tsv"})
	}

	tests := []struct {
		name string
		rec  *params.CheckMWorkflowParams
		want []string
	}{
		{name: "valid", rec: base()},
		{name: "no lists", rec: base().WithAbundList(nil), want: []string{"abund_list"}},
		{name: "reads only", rec: base().WithAbundList(nil).WithReadsList([]string{"r"})},
		{name: "prob zero", rec: base().WithProbThreshold(0), want: []string{"prob_threshold"}},
		{name: "prob one", rec: base().WithProbThreshold(1)},
		{name: "markerset", rec: base().WithMarkerset(50), want: []string{"markerset"}},
		{name: "min contig", rec: base().WithMinContigLength(0), want: []string{"min_contig_length"}},
		{name: "external genes", rec: base().WithExternalGenes(1), want: []string{"external_genes_file"}},
		{name: "reassembly", rec: base().WithReassembly(1), want: []string{"reads_list"}},
		{
			name: "missing required",
			rec:  (&params.CheckMWorkflowParams{}).WithReadsList([]string{"r"}),
			want: []string{"checkM_workflow_name", "putative_genomes_folder", "workspace_name"},
		},
	}

	v := NewValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldsOf(v.Validate(tt.rec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("failing fields = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate_LineageWf(t *testing.T) {
	v := NewValidator(nil)
	got := fieldsOf(v.Validate((&params.CheckMLineageWfParams{}).WithInputRef("  ").WithSavePlotsDir(3)))
	want := []string{"input_ref", "workspace_name", "save_plots_dir"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("failing fields = %v, want %v", got, want)
	}
	if apiErr := v.Validate(&params.CheckMResults{}); apiErr != nil {
		t.Errorf("result records should pass, got %v", apiErr)
	}
}

func TestApplyDefaults_OnlyUnset(t *testing.T) {
	p := (&params.CheckMWorkflowParams{}).WithThread(8).WithFileExtension("")
	ApplyDefaults(p)

	if p.GetThread() != 8 {
		t.Errorf("thread = %d, want 8", p.GetThread())
	}
	if p.FileExtension == nil || p.GetFileExtension() != "" {
		t.Errorf("file_extension = %v, want explicit empty string kept", p.FileExtension)
	}
	if p.GetMarkerset() != DefaultMarkerset {
		t.Errorf("markerset = %d, want %d", p.GetMarkerset(), DefaultMarkerset)
	}
	if p.ExternalGenes == nil || p.Plotmarker == nil {
		t.Error("flags not defaulted")
	}

	b := &params.CheckMBinFolderParams{}
	ApplyDefaults(b)
	if b.GetThread() != 1 || b.GetFileExtension() != "fna" {
		t.Errorf("bin folder defaults = %s", b)
	}
}

func TestTrimStrings(t *testing.T) {
	p := (&params.CheckMWorkflowParams{}).
		WithCheckMWorkflowName(" lineage_wf\n").
		WithReadsList([]string{" a ", "b"}).
		WithAdditionalProperty("note", "  kept  ")
	if err := TrimStrings(p); err != nil {
		t.Fatalf("TrimStrings() = %v", err)
	}

	if p.GetCheckMWorkflowName() != "lineage_wf" {
		t.Errorf("name = %q", p.GetCheckMWorkflowName())
	}
	if !reflect.DeepEqual(p.GetReadsList(), []string{"a", "b"}) {
		t.Errorf("reads_list = %q", p.GetReadsList())
	}
	if v, _ := p.AdditionalProperties().Get("note"); v != "  kept  " {
		t.Errorf("bag value changed: %q", v)
	}
}

func TestTrimStrings_EveryKind(t *testing.T) {
	for _, kind := range params.Kinds() {
		t.Run(kind, func(t *testing.T) {
			rec, err := params.New(kind)
			if err != nil {
				t.Fatal(err)
			}
			for _, f := range params.Fields(rec) {
				switch f.Type {
				case "string":
					err = params.SetField(rec, f.Name, " v\t")
				case "list<string>":
					err = params.SetField(rec, f.Name, []string{" v "})
				}
				if err != nil {
					t.Fatalf("SetField(%s) = %v", f.Name, err)
				}
			}

			if err := TrimStrings(rec); err != nil {
				t.Fatalf("TrimStrings() = %v", err)
			}
			for _, f := range params.Fields(rec) {
				switch v := f.Value.(type) {
				case string:
					if v != "v" {
						t.Errorf("%s = %q", f.Name, v)
					}
				case []string:
					if !reflect.DeepEqual(v, []string{"v"}) {
						t.Errorf("%s = %q", f.Name, v)
					}
				}
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	v := NewValidator(nil)

	p := (&params.CheckMBinFolderParams{}).
		WithBinFolder(" /b ").WithOutFolder("/o").WithCheckMCmdName("lineage_wf ")
	if err := v.Prepare(p); err != nil {
		t.Fatalf("Prepare() = %v", err)
	}
	if p.GetBinFolder() != "/b" || p.GetThread() != 1 {
		t.Errorf("prepared record = %s", p)
	}

	err := v.Prepare(&params.CheckMLineageWfParams{})
	if !model.IsValidationError(err) {
		t.Errorf("Prepare() = %v, want validation error", err)
	}
}
