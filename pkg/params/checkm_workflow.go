package params

import "gopkg.in/yaml.v3"

// CheckMWorkflowParams carries a full workflow invocation with its tuning
// options.
//
// At least one of AbundList and ReadsList is expected by the service, and
// ProbThreshold, Markerset and MinContigLength have documented domains
// ((0,1], 40 or 107, > 0). The record enforces none of this.
//
// CheckMWorkflowName is lineage_wf or taxonomy_wf. ExternalGenes set to 1
// uses an external gene call instead of prodigal. Markerset selects 107
// (the default) or 40 marker genes. AbundList and ReadsList hold files or
// references.
type CheckMWorkflowParams struct {
	CheckMWorkflowName    *string  `json:"checkM_workflow_name,omitempty"`
	PutativeGenomesFolder *string  `json:"putative_genomes_folder,omitempty"`
	FileExtension         *string  `json:"file_extension,omitempty"`
	WorkspaceName         *string  `json:"workspace_name,omitempty"`
	Thread                *int64   `json:"thread,omitempty"`
	ExternalGenes         *int64   `json:"external_genes,omitempty"`
	ExternalGenesFile     *string  `json:"external_genes_file,omitempty"`
	Reassembly            *int64   `json:"reassembly,omitempty"`
	ProbThreshold         *float64 `json:"prob_threshold,omitempty"`
	Markerset             *int64   `json:"markerset,omitempty"`
	MinContigLength       *int64   `json:"min_contig_length,omitempty"`
	Plotmarker            *int64   `json:"plotmarker,omitempty"`
	AbundList             []string `json:"abund_list,omitempty"`
	ReadsList             []string `json:"reads_list,omitempty"`

	additional Properties
}

// Kind returns "checkm_workflow".
func (p *CheckMWorkflowParams) Kind() string {
	return KindCheckMWorkflow
}

// AdditionalProperties returns the bag of undeclared keys.
func (p *CheckMWorkflowParams) AdditionalProperties() *Properties {
	return &p.additional
}

// SetAdditionalProperty stores an undeclared key.
func (p *CheckMWorkflowParams) SetAdditionalProperty(name string, value any) {
	p.additional.Set(name, value)
}

// WithAdditionalProperty stores an undeclared key and returns p.
func (p *CheckMWorkflowParams) WithAdditionalProperty(name string, value any) *CheckMWorkflowParams {
	p.additional.Set(name, value)
	return p
}

// MarshalJSON writes the set fields in declared order, then the extension bag.
func (p *CheckMWorkflowParams) MarshalJSON() ([]byte, error) {
	return encodeJSON(p, &p.additional)
}

// UnmarshalJSON resets p and reads a JSON object. Unknown keys go to the
// extension bag.
func (p *CheckMWorkflowParams) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, &p.additional)
}

// MarshalYAML builds a mapping with the same key order as MarshalJSON.
func (p *CheckMWorkflowParams) MarshalYAML() (any, error) {
	return encodeYAML(p, &p.additional)
}

// UnmarshalYAML resets p and reads a YAML mapping. Unknown keys go to the
// extension bag.
func (p *CheckMWorkflowParams) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p, &p.additional)
}

// String renders every field, set or not, and the extension bag.
func (p *CheckMWorkflowParams) String() string {
	return formatRecord(p, &p.additional)
}

// GetCheckMWorkflowName returns checkM_workflow_name, or the zero value when unset.
func (p *CheckMWorkflowParams) GetCheckMWorkflowName() string {
	return deref(p.CheckMWorkflowName)
}

// SetCheckMWorkflowName sets checkM_workflow_name.
func (p *CheckMWorkflowParams) SetCheckMWorkflowName(v string) {
	p.CheckMWorkflowName = &v
}

// WithCheckMWorkflowName sets checkM_workflow_name and returns p.
func (p *CheckMWorkflowParams) WithCheckMWorkflowName(v string) *CheckMWorkflowParams {
	p.SetCheckMWorkflowName(v)
	return p
}

// GetPutativeGenomesFolder returns putative_genomes_folder, or the zero value when unset.
func (p *CheckMWorkflowParams) GetPutativeGenomesFolder() string {
	return deref(p.PutativeGenomesFolder)
}

// SetPutativeGenomesFolder sets putative_genomes_folder.
func (p *CheckMWorkflowParams) SetPutativeGenomesFolder(v string) {
	p.PutativeGenomesFolder = &v
}

// WithPutativeGenomesFolder sets putative_genomes_folder and returns p.
func (p *CheckMWorkflowParams) WithPutativeGenomesFolder(v string) *CheckMWorkflowParams {
	p.SetPutativeGenomesFolder(v)
	return p
}

// GetFileExtension returns file_extension, or the zero value when unset.
func (p *CheckMWorkflowParams) GetFileExtension() string {
	return deref(p.FileExtension)
}

// SetFileExtension sets file_extension.
func (p *CheckMWorkflowParams) SetFileExtension(v string) {
	p.FileExtension = &v
}

// WithFileExtension sets file_extension and returns p.
func (p *CheckMWorkflowParams) WithFileExtension(v string) *CheckMWorkflowParams {
	p.SetFileExtension(v)
	return p
}

// GetWorkspaceName returns workspace_name, or the zero value when unset.
func (p *CheckMWorkflowParams) GetWorkspaceName() string {
	return deref(p.WorkspaceName)
}

// SetWorkspaceName sets workspace_name.
func (p *CheckMWorkflowParams) SetWorkspaceName(v string) {
	p.WorkspaceName = &v
}

// WithWorkspaceName sets workspace_name and returns p.
func (p *CheckMWorkflowParams) WithWorkspaceName(v string) *CheckMWorkflowParams {
	p.SetWorkspaceName(v)
	return p
}

// GetThread returns thread, or the zero value when unset.
func (p *CheckMWorkflowParams) GetThread() int64 {
	return deref(p.Thread)
}

// SetThread sets thread.
func (p *CheckMWorkflowParams) SetThread(v int64) {
	p.Thread = &v
}

// WithThread sets thread and returns p.
func (p *CheckMWorkflowParams) WithThread(v int64) *CheckMWorkflowParams {
	p.SetThread(v)
	return p
}

// GetExternalGenes returns external_genes, or the zero value when unset.
func (p *CheckMWorkflowParams) GetExternalGenes() int64 {
	return deref(p.ExternalGenes)
}

// SetExternalGenes sets external_genes.
func (p *CheckMWorkflowParams) SetExternalGenes(v int64) {
	p.ExternalGenes = &v
}

// WithExternalGenes sets external_genes and returns p.
func (p *CheckMWorkflowParams) WithExternalGenes(v int64) *CheckMWorkflowParams {
	p.SetExternalGenes(v)
	return p
}

// GetExternalGenesFile returns external_genes_file, or the zero value when unset.
func (p *CheckMWorkflowParams) GetExternalGenesFile() string {
	return deref(p.ExternalGenesFile)
}

// SetExternalGenesFile sets external_genes_file.
func (p *CheckMWorkflowParams) SetExternalGenesFile(v string) {
	p.ExternalGenesFile = &v
}

// WithExternalGenesFile sets external_genes_file and returns p.
func (p *CheckMWorkflowParams) WithExternalGenesFile(v string) *CheckMWorkflowParams {
	p.SetExternalGenesFile(v)
	return p
}

// GetReassembly returns reassembly, or the zero value when unset.
func (p *CheckMWorkflowParams) GetReassembly() int64 {
	return deref(p.Reassembly)
}

// SetReassembly sets reassembly.
func (p *CheckMWorkflowParams) SetReassembly(v int64) {
	p.Reassembly = &v
}

// WithReassembly sets reassembly and returns p.
func (p *CheckMWorkflowParams) WithReassembly(v int64) *CheckMWorkflowParams {
	p.SetReassembly(v)
	return p
}

// GetProbThreshold returns prob_threshold, or the zero value when unset.
func (p *CheckMWorkflowParams) GetProbThreshold() float64 {
	return deref(p.ProbThreshold)
}

// SetProbThreshold sets prob_threshold.
func (p *CheckMWorkflowParams) SetProbThreshold(v float64) {
	p.ProbThreshold = &v
}

// WithProbThreshold sets prob_threshold and returns p.
func (p *CheckMWorkflowParams) WithProbThreshold(v float64) *CheckMWorkflowParams {
	p.SetProbThreshold(v)
	return p
}

// GetMarkerset returns markerset, or the zero value when unset.
func (p *CheckMWorkflowParams) GetMarkerset() int64 {
	return deref(p.Markerset)
}

// SetMarkerset sets markerset.
func (p *CheckMWorkflowParams) SetMarkerset(v int64) {
	p.Markerset = &v
}

// WithMarkerset sets markerset and returns p.
func (p *CheckMWorkflowParams) WithMarkerset(v int64) *CheckMWorkflowParams {
	p.SetMarkerset(v)
	return p
}

// GetMinContigLength returns min_contig_length, or the zero value when unset.
func (p *CheckMWorkflowParams) GetMinContigLength() int64 {
	return deref(p.MinContigLength)
}

// SetMinContigLength sets min_contig_length.
func (p *CheckMWorkflowParams) SetMinContigLength(v int64) {
	p.MinContigLength = &v
}

// WithMinContigLength sets min_contig_length and returns p.
func (p *CheckMWorkflowParams) WithMinContigLength(v int64) *CheckMWorkflowParams {
	p.SetMinContigLength(v)
	return p
}

// GetPlotmarker returns plotmarker, or the zero value when unset.
func (p *CheckMWorkflowParams) GetPlotmarker() int64 {
	return deref(p.Plotmarker)
}

// SetPlotmarker sets plotmarker.
func (p *CheckMWorkflowParams) SetPlotmarker(v int64) {
	p.Plotmarker = &v
}

// WithPlotmarker sets plotmarker and returns p.
func (p *CheckMWorkflowParams) WithPlotmarker(v int64) *CheckMWorkflowParams {
	p.SetPlotmarker(v)
	return p
}

// GetAbundList returns abund_list, or the zero value when unset.
func (p *CheckMWorkflowParams) GetAbundList() []string {
	return p.AbundList
}

// SetAbundList sets abund_list.
func (p *CheckMWorkflowParams) SetAbundList(v []string) {
	p.AbundList = v
}

// WithAbundList sets abund_list and returns p.
func (p *CheckMWorkflowParams) WithAbundList(v []string) *CheckMWorkflowParams {
	p.SetAbundList(v)
	return p
}

// GetReadsList returns reads_list, or the zero value when unset.
func (p *CheckMWorkflowParams) GetReadsList() []string {
	return p.ReadsList
}

// SetReadsList sets reads_list.
func (p *CheckMWorkflowParams) SetReadsList(v []string) {
	p.ReadsList = v
}

// WithReadsList sets reads_list and returns p.
func (p *CheckMWorkflowParams) WithReadsList(v []string) *CheckMWorkflowParams {
	p.SetReadsList(v)
	return p
}
