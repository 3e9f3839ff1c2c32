package validate

import (
	"fmt"
	"strings"

	"github.com/me/msuite/pkg/params"
)

// Default values documented for the parameter records.
const (
	DefaultThread        = 1
	DefaultFileExtension = "fna"
	DefaultMarkerset     = 107
)

// ApplyDefaults fills unset fields of rec with their documented defaults.
// Fields that are set, even to a zero value, are left alone.
func ApplyDefaults(rec params.Record) {
	switch p := rec.(type) {
	case *params.CheckMInputParams:
		if p.Thread == nil {
			p.SetThread(DefaultThread)
		}
	case *params.CheckMBinFolderParams:
		if p.Thread == nil {
			p.SetThread(DefaultThread)
		}
		if p.FileExtension == nil {
			p.SetFileExtension(DefaultFileExtension)
		}
	case *params.CheckMWorkflowParams:
		if p.Thread == nil {
			p.SetThread(DefaultThread)
		}
		if p.FileExtension == nil {
			p.SetFileExtension(DefaultFileExtension)
		}
		if p.Markerset == nil {
			p.SetMarkerset(DefaultMarkerset)
		}
		if p.ExternalGenes == nil {
			p.SetExternalGenes(0)
		}
		if p.Plotmarker == nil {
			p.SetPlotmarker(0)
		}
	case *params.CheckMLineageWfParams:
		if p.SaveOutputDir == nil {
			p.SetSaveOutputDir(0)
		}
		if p.SavePlotsDir == nil {
			p.SetSavePlotsDir(0)
		}
	}
}

// TrimStrings strips surrounding whitespace from every set string field and
// every list element of rec. The extension bag is left untouched.
func TrimStrings(rec params.Record) error {
	for _, f := range params.Fields(rec) {
		if !f.Set {
			continue
		}
		var err error
		switch v := f.Value.(type) {
		case string:
			if t := strings.TrimSpace(v); t != v {
				err = params.SetField(rec, f.Name, t)
			}
		case []string:
			trimmed := make([]string, len(v))
			for i, s := range v {
				trimmed[i] = strings.TrimSpace(s)
			}
			err = params.SetField(rec, f.Name, trimmed)
		}
		if err != nil {
			return fmt.Errorf("trim %s: %w", f.Name, err)
		}
	}
	return nil
}

// Prepare trims, applies defaults and validates rec, in that order.
func (v *Validator) Prepare(rec params.Record) error {
	if err := TrimStrings(rec); err != nil {
		return err
	}
	ApplyDefaults(rec)
	if apiErr := v.Validate(rec); apiErr != nil {
		return apiErr
	}
	return nil
}
