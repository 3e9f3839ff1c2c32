package params

import "gopkg.in/yaml.v3"

// CheckMResults is returned by the bin-folder, workflow and generic runs.
// CheckMResultsFolder is the folder holding the CheckM results.
type CheckMResults struct {
	CheckMResultsFolder *string `json:"checkM_results_folder,omitempty"`
	ReportName          *string `json:"report_name,omitempty"`
	ReportRef           *string `json:"report_ref,omitempty"`

	additional Properties
}

// Kind returns "checkm_results".
func (p *CheckMResults) Kind() string {
	return KindCheckMResults
}

// AdditionalProperties returns the bag of undeclared keys.
func (p *CheckMResults) AdditionalProperties() *Properties {
	return &p.additional
}

// SetAdditionalProperty stores an undeclared key.
func (p *CheckMResults) SetAdditionalProperty(name string, value any) {
	p.additional.Set(name, value)
}

// WithAdditionalProperty stores an undeclared key and returns p.
func (p *CheckMResults) WithAdditionalProperty(name string, value any) *CheckMResults {
	p.additional.Set(name, value)
	return p
}

// MarshalJSON writes the set fields in declared order, then the extension bag.
func (p *CheckMResults) MarshalJSON() ([]byte, error) {
	return encodeJSON(p, &p.additional)
}

// UnmarshalJSON resets p and reads a JSON object. Unknown keys go to the
// extension bag.
func (p *CheckMResults) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, &p.additional)
}

// MarshalYAML builds a mapping with the same key order as MarshalJSON.
func (p *CheckMResults) MarshalYAML() (any, error) {
	return encodeYAML(p, &p.additional)
}

// UnmarshalYAML resets p and reads a YAML mapping. Unknown keys go to the
// extension bag.
func (p *CheckMResults) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p, &p.additional)
}

// String renders every field, set or not, and the extension bag.
func (p *CheckMResults) String() string {
	return formatRecord(p, &p.additional)
}

// GetCheckMResultsFolder returns checkM_results_folder, or the zero value when unset.
func (p *CheckMResults) GetCheckMResultsFolder() string {
	return deref(p.CheckMResultsFolder)
}

// SetCheckMResultsFolder sets checkM_results_folder.
func (p *CheckMResults) SetCheckMResultsFolder(v string) {
	p.CheckMResultsFolder = &v
}

// WithCheckMResultsFolder sets checkM_results_folder and returns p.
func (p *CheckMResults) WithCheckMResultsFolder(v string) *CheckMResults {
	p.SetCheckMResultsFolder(v)
	return p
}

// GetReportName returns report_name, or the zero value when unset.
func (p *CheckMResults) GetReportName() string {
	return deref(p.ReportName)
}

// SetReportName sets report_name.
func (p *CheckMResults) SetReportName(v string) {
	p.ReportName = &v
}

// WithReportName sets report_name and returns p.
func (p *CheckMResults) WithReportName(v string) *CheckMResults {
	p.SetReportName(v)
	return p
}

// GetReportRef returns report_ref, or the zero value when unset.
func (p *CheckMResults) GetReportRef() string {
	return deref(p.ReportRef)
}

// SetReportRef sets report_ref.
func (p *CheckMResults) SetReportRef(v string) {
	p.ReportRef = &v
}

// WithReportRef sets report_ref and returns p.
func (p *CheckMResults) WithReportRef(v string) *CheckMResults {
	p.SetReportRef(v)
	return p
}

// CheckMLineageWfResult is returned by the lineage workflow run.
type CheckMLineageWfResult struct {
	ReportName *string `json:"report_name,omitempty"`
	ReportRef  *string `json:"report_ref,omitempty"`

	additional Properties
}

// Kind returns "checkm_lineage_wf_result".
func (p *CheckMLineageWfResult) Kind() string {
	return KindCheckMLineageResult
}

// AdditionalProperties returns the bag of undeclared keys.
func (p *CheckMLineageWfResult) AdditionalProperties() *Properties {
	return &p.additional
}

// SetAdditionalProperty stores an undeclared key.
func (p *CheckMLineageWfResult) SetAdditionalProperty(name string, value any) {
	p.additional.Set(name, value)
}

// WithAdditionalProperty stores an undeclared key and returns p.
func (p *CheckMLineageWfResult) WithAdditionalProperty(name string, value any) *CheckMLineageWfResult {
	p.additional.Set(name, value)
	return p
}

// MarshalJSON writes the set fields in declared order, then the extension bag.
func (p *CheckMLineageWfResult) MarshalJSON() ([]byte, error) {
	return encodeJSON(p, &p.additional)
}

// UnmarshalJSON resets p and reads a JSON object. Unknown keys go to the
// extension bag.
func (p *CheckMLineageWfResult) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, &p.additional)
}

// MarshalYAML builds a mapping with the same key order as MarshalJSON.
func (p *CheckMLineageWfResult) MarshalYAML() (any, error) {
	return encodeYAML(p, &p.additional)
}

// UnmarshalYAML resets p and reads a YAML mapping. Unknown keys go to the
// extension bag.
func (p *CheckMLineageWfResult) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p, &p.additional)
}

// String renders every field, set or not, and the extension bag.
func (p *CheckMLineageWfResult) String() string {
	return formatRecord(p, &p.additional)
}

// GetReportName returns report_name, or the zero value when unset.
func (p *CheckMLineageWfResult) GetReportName() string {
	return deref(p.ReportName)
}

// SetReportName sets report_name.
func (p *CheckMLineageWfResult) SetReportName(v string) {
	p.ReportName = &v
}

// WithReportName sets report_name and returns p.
func (p *CheckMLineageWfResult) WithReportName(v string) *CheckMLineageWfResult {
	p.SetReportName(v)
	return p
}

// GetReportRef returns report_ref, or the zero value when unset.
func (p *CheckMLineageWfResult) GetReportRef() string {
	return deref(p.ReportRef)
}

// SetReportRef sets report_ref.
func (p *CheckMLineageWfResult) SetReportRef(v string) {
	p.ReportRef = &v
}

// WithReportRef sets report_ref and returns p.
func (p *CheckMLineageWfResult) WithReportRef(v string) *CheckMLineageWfResult {
	p.SetReportRef(v)
	return p
}
