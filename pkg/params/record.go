// Package params holds the parameter records exchanged with the CheckM
// tool-wrapping service.
//
// Every record is a flat, schema-typed set of declared fields plus an ordered
// extension bag for keys the schema does not declare. Declared fields are
// pointers: nil means unset and unset fields are never serialized. Unknown
// keys survive a decode/encode round trip unchanged, in JSON and in YAML.
//
// Records never validate or default their own values; see internal/validate.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record kinds, one per parameter or result shape.
const (
	KindCheckMInput         = "checkm_input"
	KindCheckMBinFolder     = "checkm_bin_folder"
	KindCheckMWorkflow      = "checkm_workflow"
	KindCheckMLineageWf     = "checkm_lineage_wf"
	KindCheckMResults       = "checkm_results"
	KindCheckMLineageResult = "checkm_lineage_wf_result"
)

// Wire formats understood by Encode and Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrUnknownKind is returned for a kind with no registered record.
	ErrUnknownKind = errors.New("params: unknown record kind")

	// ErrUnknownField is returned when a name is not a declared field.
	ErrUnknownField = errors.New("params: unknown field")

	// ErrUnknownFormat is returned for a wire format other than json or yaml.
	ErrUnknownFormat = errors.New("params: unknown format")
)

// Record is implemented by every parameter and result record.
type Record interface {
	// Kind returns the registry name of the record shape.
	Kind() string

	// AdditionalProperties returns the extension bag.
	AdditionalProperties() *Properties

	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
	fmt.Stringer
}

var registry = map[string]func() Record{
	KindCheckMInput:         func() Record { return &CheckMInputParams{} },
	KindCheckMBinFolder:     func() Record { return &CheckMBinFolderParams{} },
	KindCheckMWorkflow:      func() Record { return &CheckMWorkflowParams{} },
	KindCheckMLineageWf:     func() Record { return &CheckMLineageWfParams{} },
	KindCheckMResults:       func() Record { return &CheckMResults{} },
	KindCheckMLineageResult: func() Record { return &CheckMLineageWfResult{} },
}

// New returns a fresh, empty record of the given kind.
func New(kind string) (Record, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}

// Kinds returns the registered kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Decode parses data in the given format into a new record of kind.
func Decode(kind string, data []byte, format string) (Record, error) {
	rec, err := New(kind)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case FormatJSON, "":
		err = json.Unmarshal(data, rec)
	case FormatYAML, "yml":
		err = yaml.Unmarshal(data, rec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return rec, nil
}

// Encode serializes rec in the given format.
func Encode(rec Record, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return json.Marshal(rec)
	case FormatYAML, "yml":
		return yaml.Marshal(rec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatForPath picks the wire format from a file name extension.
func FormatForPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Field describes one declared field of a record.
type Field struct {
	// Name is the wire name, e.g. "bin_folder".
	Name string

	// GoName is the struct field name, e.g. "BinFolder".
	GoName string

	// Type is the schema type: string, int, float or list<string>.
	Type string

	// Set reports whether the field holds a value.
	Set bool

	// Value is the dereferenced value when Set is true.
	Value any
}

// Fields returns the declared fields of rec in declaration order.
func Fields(rec Record) []Field {
	v := recordValue(rec)
	infos := declaredFields(v.Type())
	out := make([]Field, 0, len(infos))
	for _, f := range infos {
		fv := v.Field(f.index)
		field := Field{Name: f.name, GoName: f.goName, Type: schemaType(f.typ)}
		if !fv.IsNil() {
			field.Set = true
			field.Value = derefValue(fv)
		}
		out = append(out, field)
	}
	return out
}

// FieldNames returns the declared wire names of kind in declaration order.
func FieldNames(kind string) ([]string, error) {
	rec, err := New(kind)
	if err != nil {
		return nil, err
	}
	fields := Fields(rec)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names, nil
}

// SetField assigns a declared field by wire name. A nil value unsets the
// field; other values are converted through their JSON form.
func SetField(rec Record, name string, value any) error {
	v := recordValue(rec)
	f, ok := lookupField(declaredFields(v.Type()), name)
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, v.Type().Name(), name)
	}
	fv := v.Field(f.index)
	if value == nil {
		fv.Set(reflect.Zero(f.typ))
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return &CodecError{Record: v.Type().Name(), Field: name, Err: err}
	}
	ptr := reflect.New(f.typ)
	if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
		return &CodecError{Record: v.Type().Name(), Field: name, Err: err}
	}
	fv.Set(ptr.Elem())
	return nil
}

func schemaType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Slice:
		return "list<" + schemaType(t.Elem()) + ">"
	default:
		return t.Kind().String()
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
