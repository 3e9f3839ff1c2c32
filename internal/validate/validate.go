// Package validate checks CheckM parameter records before they are handed
// to a tool runner. Records hold whatever they are given; the rules
// documented for each field are enforced here, on the caller side.
package validate

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/me/msuite/internal/cmdline"
	"github.com/me/msuite/internal/logging"
	"github.com/me/msuite/pkg/model"
	"github.com/me/msuite/pkg/params"
)

// FastaExtensions are the bin file extensions CheckM is run against.
var FastaExtensions = []string{"fasta", "fas", "fa", "fsa", "seq", "fna", "ffn", "faa", "frn"}

// Markersets are the accepted marker gene set sizes.
var Markersets = []int64{40, 107}

// Validator performs caller-side validation on parameter records.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a Validator with the given logger.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logging.Component(logger, "validator")}
}

// Validate checks rec against the rules for its kind.
// Returns nil if valid, or an *model.APIError with FieldError details.
// Result records carry no rules and always pass.
func (v *Validator) Validate(rec params.Record) *model.APIError {
	var errs []model.FieldError
	switch p := rec.(type) {
	case *params.CheckMInputParams:
		errs = v.validateInput(p)
	case *params.CheckMBinFolderParams:
		errs = v.validateBinFolder(p)
	case *params.CheckMWorkflowParams:
		errs = v.validateWorkflow(p)
	case *params.CheckMLineageWfParams:
		errs = v.validateLineageWf(p)
	}
	if len(errs) == 0 {
		return nil
	}
	v.logger.Debug("validation failed", "kind", rec.Kind(), "errors", len(errs))
	return model.NewValidationError(fmt.Sprintf("invalid %s parameters", rec.Kind()), errs...)
}

func (v *Validator) validateInput(p *params.CheckMInputParams) []model.FieldError {
	var errs []model.FieldError
	sub := p.GetSubcommand()
	if p.Subcommand == nil || sub == "" {
		errs = append(errs, required("subcommand"))
	} else if positional, ok := cmdline.RequiredFields(sub); !ok {
		errs = append(errs, model.FieldError{
			Field:   "subcommand",
			Message: fmt.Sprintf("unsupported subcommand %q; expected one of %s", sub, strings.Join(cmdline.Subcommands(), ", ")),
		})
	} else {
		set := map[string]bool{
			"bin_folder":   p.GetBinFolder() != "",
			"out_folder":   p.GetOutFolder() != "",
			"plots_folder": p.GetPlotsFolder() != "",
			"seq_file":     p.GetSeqFile() != "",
			"tetra_file":   p.GetTetraFile() != "",
			"dist_value":   p.DistValue != nil,
		}
		for _, f := range positional {
			if !set[f] {
				errs = append(errs, model.FieldError{Field: f, Message: fmt.Sprintf("required by %s", sub)})
			}
		}
	}

	if p.DistValue != nil && (p.GetDistValue() < 0 || p.GetDistValue() > 100) {
		errs = append(errs, model.FieldError{Field: "dist_value", Message: "must be between 0 and 100"})
	}
	errs = append(errs, checkThread(p.Thread)...)
	errs = append(errs, checkFlag("reduced_tree", p.ReducedTree)...)
	errs = append(errs, checkFlag("quiet", p.Quiet)...)
	return errs
}

func (v *Validator) validateBinFolder(p *params.CheckMBinFolderParams) []model.FieldError {
	var errs []model.FieldError
	errs = append(errs, requireString("bin_folder", p.BinFolder)...)
	errs = append(errs, requireString("out_folder", p.OutFolder)...)
	errs = append(errs, checkWorkflowName("checkM_cmd_name", p.CheckMCmdName)...)
	errs = append(errs, checkExtension(p.FileExtension)...)
	errs = append(errs, checkThread(p.Thread)...)
	return errs
}

func (v *Validator) validateWorkflow(p *params.CheckMWorkflowParams) []model.FieldError {
	var errs []model.FieldError
	errs = append(errs, checkWorkflowName("checkM_workflow_name", p.CheckMWorkflowName)...)
	errs = append(errs, requireString("putative_genomes_folder", p.PutativeGenomesFolder)...)
	errs = append(errs, requireString("workspace_name", p.WorkspaceName)...)
	errs = append(errs, checkExtension(p.FileExtension)...)
	errs = append(errs, checkThread(p.Thread)...)
	errs = append(errs, checkFlag("external_genes", p.ExternalGenes)...)
	errs = append(errs, checkFlag("reassembly", p.Reassembly)...)
	errs = append(errs, checkFlag("plotmarker", p.Plotmarker)...)

	if p.GetExternalGenes() == 1 && strings.TrimSpace(p.GetExternalGenesFile()) == "" {
		errs = append(errs, model.FieldError{Field: "external_genes_file", Message: "required when external_genes is 1"})
	}
	if p.ProbThreshold != nil && (p.GetProbThreshold() <= 0 || p.GetProbThreshold() > 1) {
		errs = append(errs, model.FieldError{Field: "prob_threshold", Message: "must be in (0, 1]"})
	}
	if p.Markerset != nil && !slices.Contains(Markersets, p.GetMarkerset()) {
		errs = append(errs, model.FieldError{Field: "markerset", Message: "must be 40 or 107"})
	}
	if p.MinContigLength != nil && p.GetMinContigLength() <= 0 {
		errs = append(errs, model.FieldError{Field: "min_contig_length", Message: "must be greater than 0"})
	}
	if len(p.GetAbundList()) == 0 && len(p.GetReadsList()) == 0 {
		errs = append(errs, model.FieldError{Field: "abund_list", Message: "at least one of abund_list or reads_list is required"})
	}
	if p.GetReassembly() == 1 && len(p.GetReadsList()) == 0 {
		errs = append(errs, model.FieldError{Field: "reads_list", Message: "required when reassembly is 1"})
	}
	return errs
}

func (v *Validator) validateLineageWf(p *params.CheckMLineageWfParams) []model.FieldError {
	var errs []model.FieldError
	errs = append(errs, requireString("input_ref", p.InputRef)...)
	errs = append(errs, requireString("workspace_name", p.WorkspaceName)...)
	errs = append(errs, checkFlag("save_output_dir", p.SaveOutputDir)...)
	errs = append(errs, checkFlag("save_plots_dir", p.SavePlotsDir)...)
	return errs
}

func required(field string) model.FieldError {
	return model.FieldError{Field: field, Message: "required"}
}

func requireString(field string, v *string) []model.FieldError {
	if v == nil || strings.TrimSpace(*v) == "" {
		return []model.FieldError{required(field)}
	}
	return nil
}

func checkWorkflowName(field string, v *string) []model.FieldError {
	if v == nil || *v == "" {
		return []model.FieldError{required(field)}
	}
	if !slices.Contains(cmdline.Workflows, *v) {
		return []model.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("unsupported workflow %q; expected one of %s", *v, strings.Join(cmdline.Workflows, ", ")),
		}}
	}
	return nil
}

func checkThread(v *int64) []model.FieldError {
	if v != nil && *v < 1 {
		return []model.FieldError{{Field: "thread", Message: "must be at least 1"}}
	}
	return nil
}

func checkFlag(field string, v *int64) []model.FieldError {
	if v != nil && *v != 0 && *v != 1 {
		return []model.FieldError{{Field: field, Message: "must be 0 or 1"}}
	}
	return nil
}

func checkExtension(v *string) []model.FieldError {
	if v == nil {
		return nil
	}
	ext := strings.TrimPrefix(*v, ".")
	if !slices.Contains(FastaExtensions, ext) {
		return []model.FieldError{{
			Field:   "file_extension",
			Message: fmt.Sprintf("unsupported extension %q; expected one of %s", *v, strings.Join(FastaExtensions, ", ")),
		}}
	}
	return nil
}
