package params

import "gopkg.in/yaml.v3"

// CheckMLineageWfParams runs the lineage workflow on upstream data.
//
// InputRef points at an Assembly or BinnedContigs object in the data
// service; its format belongs to that service. SaveOutputDir and
// SavePlotsDir are 0/1 flags selecting which directories are kept as
// workspace artifacts.
type CheckMLineageWfParams struct {
	InputRef      *string `json:"input_ref,omitempty"`
	WorkspaceName *string `json:"workspace_name,omitempty"`
	SaveOutputDir *int64  `json:"save_output_dir,omitempty"`
	SavePlotsDir  *int64  `json:"save_plots_dir,omitempty"`

	additional Properties
}

// Kind returns "checkm_lineage_wf".
func (p *CheckMLineageWfParams) Kind() string {
	return KindCheckMLineageWf
}

// AdditionalProperties returns the bag of undeclared keys.
func (p *CheckMLineageWfParams) AdditionalProperties() *Properties {
	return &p.additional
}

// SetAdditionalProperty stores an undeclared key.
func (p *CheckMLineageWfParams) SetAdditionalProperty(name string, value any) {
	p.additional.Set(name, value)
}

// WithAdditionalProperty stores an undeclared key and returns p.
func (p *CheckMLineageWfParams) WithAdditionalProperty(name string, value any) *CheckMLineageWfParams {
	p.additional.Set(name, value)
	return p
}

// MarshalJSON writes the set fields in declared order, then the extension bag.
func (p *CheckMLineageWfParams) MarshalJSON() ([]byte, error) {
	return encodeJSON(p, &p.additional)
}

// UnmarshalJSON resets p and reads a JSON object. Unknown keys go to the
// extension bag.
func (p *CheckMLineageWfParams) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, &p.additional)
}

// MarshalYAML builds a mapping with the same key order as MarshalJSON.
func (p *CheckMLineageWfParams) MarshalYAML() (any, error) {
	return encodeYAML(p, &p.additional)
}

// UnmarshalYAML resets p and reads a YAML mapping. Unknown keys go to the
// extension bag.
func (p *CheckMLineageWfParams) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p, &p.additional)
}

// String renders every field, set or not, and the extension bag.
func (p *CheckMLineageWfParams) String() string {
	return formatRecord(p, &p.additional)
}

// GetInputRef returns input_ref, or the zero value when unset.
func (p *CheckMLineageWfParams) GetInputRef() string {
	return deref(p.InputRef)
}

// SetInputRef sets input_ref.
func (p *CheckMLineageWfParams) SetInputRef(v string) {
	p.InputRef = &v
}

// WithInputRef sets input_ref and returns p.
func (p *CheckMLineageWfParams) WithInputRef(v string) *CheckMLineageWfParams {
	p.SetInputRef(v)
	return p
}

// GetWorkspaceName returns workspace_name, or the zero value when unset.
func (p *CheckMLineageWfParams) GetWorkspaceName() string {
	return deref(p.WorkspaceName)
}

// SetWorkspaceName sets workspace_name.
func (p *CheckMLineageWfParams) SetWorkspaceName(v string) {
	p.WorkspaceName = &v
}

// WithWorkspaceName sets workspace_name and returns p.
func (p *CheckMLineageWfParams) WithWorkspaceName(v string) *CheckMLineageWfParams {
	p.SetWorkspaceName(v)
	return p
}

// GetSaveOutputDir returns save_output_dir, or the zero value when unset.
func (p *CheckMLineageWfParams) GetSaveOutputDir() int64 {
	return deref(p.SaveOutputDir)
}

// SetSaveOutputDir sets save_output_dir.
func (p *CheckMLineageWfParams) SetSaveOutputDir(v int64) {
	p.SaveOutputDir = &v
}

// WithSaveOutputDir sets save_output_dir and returns p.
func (p *CheckMLineageWfParams) WithSaveOutputDir(v int64) *CheckMLineageWfParams {
	p.SetSaveOutputDir(v)
	return p
}

// GetSavePlotsDir returns save_plots_dir, or the zero value when unset.
func (p *CheckMLineageWfParams) GetSavePlotsDir() int64 {
	return deref(p.SavePlotsDir)
}

// SetSavePlotsDir sets save_plots_dir.
func (p *CheckMLineageWfParams) SetSavePlotsDir(v int64) {
	p.SavePlotsDir = &v
}

// WithSavePlotsDir sets save_plots_dir and returns p.
func (p *CheckMLineageWfParams) WithSavePlotsDir(v int64) *CheckMLineageWfParams {
	p.SetSavePlotsDir(v)
	return p
}
