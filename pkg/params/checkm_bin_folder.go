package params

import "gopkg.in/yaml.v3"

// CheckMBinFolderParams runs a CheckM workflow over a folder of genome bins
// and names the workspace that receives the results. The workspace name is
// passed through to the storage service untouched.
//
// CheckMCmdName is the workflow name, lineage_wf or taxonomy_wf.
// FileExtension is the bin file extension; the tool assumes fna.
type CheckMBinFolderParams struct {
	BinFolder     *string `json:"bin_folder,omitempty"`
	OutFolder     *string `json:"out_folder,omitempty"`
	CheckMCmdName *string `json:"checkM_cmd_name,omitempty"`
	WorkspaceName *string `json:"workspace_name,omitempty"`
	FileExtension *string `json:"file_extension,omitempty"`
	Thread        *int64  `json:"thread,omitempty"`

	additional Properties
}

// Kind returns "checkm_bin_folder".
func (p *CheckMBinFolderParams) Kind() string {
	return KindCheckMBinFolder
}

// AdditionalProperties returns the bag of undeclared keys.
func (p *CheckMBinFolderParams) AdditionalProperties() *Properties {
	return &p.additional
}

// SetAdditionalProperty stores an undeclared key.
func (p *CheckMBinFolderParams) SetAdditionalProperty(name string, value any) {
	p.additional.Set(name, value)
}

// WithAdditionalProperty stores an undeclared key and returns p.
func (p *CheckMBinFolderParams) WithAdditionalProperty(name string, value any) *CheckMBinFolderParams {
	p.additional.Set(name, value)
	return p
}

// MarshalJSON writes the set fields in declared order, then the extension bag.
func (p *CheckMBinFolderParams) MarshalJSON() ([]byte, error) {
	return encodeJSON(p, &p.additional)
}

// UnmarshalJSON resets p and reads a JSON object. Unknown keys go to the
// extension bag.
func (p *CheckMBinFolderParams) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, &p.additional)
}

// MarshalYAML builds a mapping with the same key order as MarshalJSON.
func (p *CheckMBinFolderParams) MarshalYAML() (any, error) {
	return encodeYAML(p, &p.additional)
}

// UnmarshalYAML resets p and reads a YAML mapping. Unknown keys go to the
// extension bag.
func (p *CheckMBinFolderParams) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p, &p.additional)
}

// String renders every field, set or not, and the extension bag.
func (p *CheckMBinFolderParams) String() string {
	return formatRecord(p, &p.additional)
}

// GetBinFolder returns bin_folder, or the zero value when unset.
func (p *CheckMBinFolderParams) GetBinFolder() string {
	return deref(p.BinFolder)
}

// SetBinFolder sets bin_folder.
func (p *CheckMBinFolderParams) SetBinFolder(v string) {
	p.BinFolder = &v
}

// WithBinFolder sets bin_folder and returns p.
func (p *CheckMBinFolderParams) WithBinFolder(v string) *CheckMBinFolderParams {
	p.SetBinFolder(v)
	return p
}

// GetOutFolder returns out_folder, or the zero value when unset.
func (p *CheckMBinFolderParams) GetOutFolder() string {
	return deref(p.OutFolder)
}

// SetOutFolder sets out_folder.
func (p *CheckMBinFolderParams) SetOutFolder(v string) {
	p.OutFolder = &v
}

// WithOutFolder sets out_folder and returns p.
func (p *CheckMBinFolderParams) WithOutFolder(v string) *CheckMBinFolderParams {
	p.SetOutFolder(v)
	return p
}

// GetCheckMCmdName returns checkM_cmd_name, or the zero value when unset.
func (p *CheckMBinFolderParams) GetCheckMCmdName() string {
	return deref(p.CheckMCmdName)
}

// SetCheckMCmdName sets checkM_cmd_name.
func (p *CheckMBinFolderParams) SetCheckMCmdName(v string) {
	p.CheckMCmdName = &v
}

// WithCheckMCmdName sets checkM_cmd_name and returns p.
func (p *CheckMBinFolderParams) WithCheckMCmdName(v string) *CheckMBinFolderParams {
	p.SetCheckMCmdName(v)
	return p
}

// GetWorkspaceName returns workspace_name, or the zero value when unset.
func (p *CheckMBinFolderParams) GetWorkspaceName() string {
	return deref(p.WorkspaceName)
}

// SetWorkspaceName sets workspace_name.
func (p *CheckMBinFolderParams) SetWorkspaceName(v string) {
	p.WorkspaceName = &v
}

// WithWorkspaceName sets workspace_name and returns p.
func (p *CheckMBinFolderParams) WithWorkspaceName(v string) *CheckMBinFolderParams {
	p.SetWorkspaceName(v)
	return p
}

// GetFileExtension returns file_extension, or the zero value when unset.
func (p *CheckMBinFolderParams) GetFileExtension() string {
	return deref(p.FileExtension)
}

// SetFileExtension sets file_extension.
func (p *CheckMBinFolderParams) SetFileExtension(v string) {
	p.FileExtension = &v
}

// WithFileExtension sets file_extension and returns p.
func (p *CheckMBinFolderParams) WithFileExtension(v string) *CheckMBinFolderParams {
	p.SetFileExtension(v)
	return p
}

// GetThread returns thread, or the zero value when unset.
func (p *CheckMBinFolderParams) GetThread() int64 {
	return deref(p.Thread)
}

// SetThread sets thread.
func (p *CheckMBinFolderParams) SetThread(v int64) {
	p.Thread = &v
}

// WithThread sets thread and returns p.
func (p *CheckMBinFolderParams) WithThread(v int64) *CheckMBinFolderParams {
	p.SetThread(v)
	return p
}
