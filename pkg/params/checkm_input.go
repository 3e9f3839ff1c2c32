package params

import "gopkg.in/yaml.v3"

// CheckMInputParams runs CheckM as a command line local function.
//
//	subcommand   - the CheckM subcommand: lineage_wf, tetra, bin_qa_plot or dist_plot
//	bin_folder   - folder of FASTA files, one per bin (extension .fna)
//	out_folder   - folder that receives the CheckM output
//	plots_folder - folder that receives plots
//	seq_file     - concatenated FASTA of all contigs in the bins, used by tetra
//	tetra_file   - tetranucleotide frequency file written by tetra, read by dist_plot
//	dist_value   - reference distribution percentile for dist_plot, 0 to 100
//	thread       - number of threads
//	reduced_tree - 1 runs with --reduced_tree, keeping memory under 16GB
//	quiet        - 1 passes --quiet
//
// None of these constraints are checked here.
type CheckMInputParams struct {
	Subcommand  *string `json:"subcommand,omitempty"`
	BinFolder   *string `json:"bin_folder,omitempty"`
	OutFolder   *string `json:"out_folder,omitempty"`
	PlotsFolder *string `json:"plots_folder,omitempty"`
	SeqFile     *string `json:"seq_file,omitempty"`
	TetraFile   *string `json:"tetra_file,omitempty"`
	DistValue   *int64  `json:"dist_value,omitempty"`
	Thread      *int64  `json:"thread,omitempty"`
	ReducedTree *int64  `json:"reduced_tree,omitempty"`
	Quiet       *int64  `json:"quiet,omitempty"`

	additional Properties
}

// Kind returns "checkm_input".
func (p *CheckMInputParams) Kind() string {
	return KindCheckMInput
}

// AdditionalProperties returns the bag of undeclared keys.
func (p *CheckMInputParams) AdditionalProperties() *Properties {
	return &p.additional
}

// SetAdditionalProperty stores an undeclared key.
func (p *CheckMInputParams) SetAdditionalProperty(name string, value any) {
	p.additional.Set(name, value)
}

// WithAdditionalProperty stores an undeclared key and returns p.
func (p *CheckMInputParams) WithAdditionalProperty(name string, value any) *CheckMInputParams {
	p.additional.Set(name, value)
	return p
}

// MarshalJSON writes the set fields in declared order, then the extension bag.
func (p *CheckMInputParams) MarshalJSON() ([]byte, error) {
	return encodeJSON(p, &p.additional)
}

// UnmarshalJSON resets p and reads a JSON object. Unknown keys go to the
// extension bag.
func (p *CheckMInputParams) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, &p.additional)
}

// MarshalYAML builds a mapping with the same key order as MarshalJSON.
func (p *CheckMInputParams) MarshalYAML() (any, error) {
	return encodeYAML(p, &p.additional)
}

// UnmarshalYAML resets p and reads a YAML mapping. Unknown keys go to the
// extension bag.
func (p *CheckMInputParams) UnmarshalYAML(node *yaml.Node) error {
	return decodeYAML(node, p, &p.additional)
}

// String renders every field, set or not, and the extension bag.
func (p *CheckMInputParams) String() string {
	return formatRecord(p, &p.additional)
}

// GetSubcommand returns subcommand, or the zero value when unset.
func (p *CheckMInputParams) GetSubcommand() string {
	return deref(p.Subcommand)
}

// SetSubcommand sets subcommand.
func (p *CheckMInputParams) SetSubcommand(v string) {
	p.Subcommand = &v
}

// WithSubcommand sets subcommand and returns p.
func (p *CheckMInputParams) WithSubcommand(v string) *CheckMInputParams {
	p.SetSubcommand(v)
	return p
}

// GetBinFolder returns bin_folder, or the zero value when unset.
func (p *CheckMInputParams) GetBinFolder() string {
	return deref(p.BinFolder)
}

// SetBinFolder sets bin_folder.
func (p *CheckMInputParams) SetBinFolder(v string) {
	p.BinFolder = &v
}

// WithBinFolder sets bin_folder and returns p.
func (p *CheckMInputParams) WithBinFolder(v string) *CheckMInputParams {
	p.SetBinFolder(v)
	return p
}

// GetOutFolder returns out_folder, or the zero value when unset.
func (p *CheckMInputParams) GetOutFolder() string {
	return deref(p.OutFolder)
}

// SetOutFolder sets out_folder.
func (p *CheckMInputParams) SetOutFolder(v string) {
	p.OutFolder = &v
}

// WithOutFolder sets out_folder and returns p.
func (p *CheckMInputParams) WithOutFolder(v string) *CheckMInputParams {
	p.SetOutFolder(v)
	return p
}

// GetPlotsFolder returns plots_folder, or the zero value when unset.
func (p *CheckMInputParams) GetPlotsFolder() string {
	return deref(p.PlotsFolder)
}

// SetPlotsFolder sets plots_folder.
func (p *CheckMInputParams) SetPlotsFolder(v string) {
	p.PlotsFolder = &v
}

// WithPlotsFolder sets plots_folder and returns p.
func (p *CheckMInputParams) WithPlotsFolder(v string) *CheckMInputParams {
	p.SetPlotsFolder(v)
	return p
}

// GetSeqFile returns seq_file, or the zero value when unset.
func (p *CheckMInputParams) GetSeqFile() string {
	return deref(p.SeqFile)
}

// SetSeqFile sets seq_file.
func (p *CheckMInputParams) SetSeqFile(v string) {
	p.SeqFile = &v
}

// WithSeqFile sets seq_file and returns p.
func (p *CheckMInputParams) WithSeqFile(v string) *CheckMInputParams {
	p.SetSeqFile(v)
	return p
}

// GetTetraFile returns tetra_file, or the zero value when unset.
func (p *CheckMInputParams) GetTetraFile() string {
	return deref(p.TetraFile)
}

// SetTetraFile sets tetra_file.
func (p *CheckMInputParams) SetTetraFile(v string) {
	p.TetraFile = &v
}

// WithTetraFile sets tetra_file and returns p.
func (p *CheckMInputParams) WithTetraFile(v string) *CheckMInputParams {
	p.SetTetraFile(v)
	return p
}

// GetDistValue returns dist_value, or the zero value when unset.
func (p *CheckMInputParams) GetDistValue() int64 {
	return deref(p.DistValue)
}

// SetDistValue sets dist_value.
func (p *CheckMInputParams) SetDistValue(v int64) {
	p.DistValue = &v
}

// WithDistValue sets dist_value and returns p.
func (p *CheckMInputParams) WithDistValue(v int64) *CheckMInputParams {
	p.SetDistValue(v)
	return p
}

// GetThread returns thread, or the zero value when unset.
func (p *CheckMInputParams) GetThread() int64 {
	return deref(p.Thread)
}

// SetThread sets thread.
func (p *CheckMInputParams) SetThread(v int64) {
	p.Thread = &v
}

// WithThread sets thread and returns p.
func (p *CheckMInputParams) WithThread(v int64) *CheckMInputParams {
	p.SetThread(v)
	return p
}

// GetReducedTree returns reduced_tree, or the zero value when unset.
func (p *CheckMInputParams) GetReducedTree() int64 {
	return deref(p.ReducedTree)
}

// SetReducedTree sets reduced_tree.
func (p *CheckMInputParams) SetReducedTree(v int64) {
	p.ReducedTree = &v
}

// WithReducedTree sets reduced_tree and returns p.
func (p *CheckMInputParams) WithReducedTree(v int64) *CheckMInputParams {
	p.SetReducedTree(v)
	return p
}

// GetQuiet returns quiet, or the zero value when unset.
func (p *CheckMInputParams) GetQuiet() int64 {
	return deref(p.Quiet)
}

// SetQuiet sets quiet.
func (p *CheckMInputParams) SetQuiet(v int64) {
	p.Quiet = &v
}

// WithQuiet sets quiet and returns p.
func (p *CheckMInputParams) WithQuiet(v int64) *CheckMInputParams {
	p.SetQuiet(v)
	return p
}
