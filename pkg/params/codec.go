package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// CodecError reports a field whose value could not be encoded or decoded.
type CodecError struct {
	Record string
	Field  string
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("params: %s field %q: %v", e.Record, e.Field, e.Err)
}

// Unwrap returns the underlying codec error.
func (e *CodecError) Unwrap() error {
	return e.Err
}

var errNotObject = errors.New("params: record input must be an object")

// fieldInfo describes one declared field of a record struct.
type fieldInfo struct {
	name   string // wire name
	goName string
	index  int
	typ    reflect.Type
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// declaredFields returns the declared fields of a record struct type in
// declaration order. Only exported fields with a json tag take part.
func declaredFields(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("json")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, fieldInfo{name: name, goName: sf.Name, index: i, typ: sf.Type})
	}
	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]fieldInfo)
}

func lookupField(fields []fieldInfo, name string) (fieldInfo, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return fieldInfo{}, false
}

func recordValue(rec any) reflect.Value {
	return reflect.ValueOf(rec).Elem()
}

// encodeJSON writes set declared fields in declaration order, then the
// extension bag. Bag entries shadowed by a declared name are skipped.
func encodeJSON(rec any, extra *Properties) ([]byte, error) {
	v := recordValue(rec)
	fields := declaredFields(v.Type())

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	writeEntry := func(name string, val []byte) {
		if n > 0 {
			buf.WriteByte(',')
		}
		key, _ := marshalJSON(name)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		n++
	}

	for _, f := range fields {
		fv := v.Field(f.index)
		if fv.IsNil() {
			continue
		}
		b, err := marshalJSON(fv.Interface())
		if err != nil {
			return nil, &CodecError{Record: v.Type().Name(), Field: f.name, Err: err}
		}
		writeEntry(f.name, b)
	}

	for _, p := range extra.List() {
		if _, shadowed := lookupField(fields, p.Name); shadowed {
			continue
		}
		b, err := ValueJSON(p.Value)
		if err != nil {
			return nil, &CodecError{Record: v.Type().Name(), Field: p.Name, Err: err}
		}
		writeEntry(p.Name, b)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON is json.Marshal without HTML escaping.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ValueJSON renders an extension bag value as JSON. Raw JSON is returned
// as is and YAML nodes keep their mapping order. YAML scalars JSON cannot
// hold (timestamps, .nan, .inf) become their literal text as a string.
func ValueJSON(value any) (json.RawMessage, error) {
	switch v := value.(type) {
	case json.RawMessage:
		if !json.Valid(v) {
			return nil, errors.New("invalid raw JSON value")
		}
		return v, nil
	case *yaml.Node:
		return yamlNodeJSON(v)
	default:
		return marshalJSON(v)
	}
}

// decodeJSON resets rec and fills it from a JSON object. Keys are read in
// input order so unknown keys land in the bag in that order.
func decodeJSON(data []byte, rec any, extra *Properties) error {
	v := recordValue(rec)
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	v.Set(reflect.Zero(v.Type()))
	extra.reset()
	fields := declaredFields(v.Type())

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		f, declared := lookupField(fields, key)
		if !declared {
			extra.Set(key, raw)
			continue
		}
		ptr := reflect.New(f.typ)
		if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
			return &CodecError{Record: v.Type().Name(), Field: key, Err: err}
		}
		v.Field(f.index).Set(ptr.Elem())
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// encodeYAML builds a mapping node with the same ordering rules as encodeJSON.
func encodeYAML(rec any, extra *Properties) (any, error) {
	v := recordValue(rec)
	fields := declaredFields(v.Type())
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	add := func(name string, val *yaml.Node) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		node.Content = append(node.Content, key, val)
	}

	for _, f := range fields {
		fv := v.Field(f.index)
		if fv.IsNil() {
			continue
		}
		val := &yaml.Node{}
		if err := val.Encode(fv.Interface()); err != nil {
			return nil, &CodecError{Record: v.Type().Name(), Field: f.name, Err: err}
		}
		add(f.name, val)
	}

	for _, p := range extra.List() {
		if _, shadowed := lookupField(fields, p.Name); shadowed {
			continue
		}
		val, err := yamlValueNode(p.Value)
		if err != nil {
			return nil, &CodecError{Record: v.Type().Name(), Field: p.Name, Err: err}
		}
		add(p.Name, val)
	}
	return node, nil
}

// yamlValueNode converts a bag value to a YAML node. Nodes decoded from
// YAML are emitted unchanged. Raw JSON is parsed as YAML so nested key order
// survives.
func yamlValueNode(value any) (*yaml.Node, error) {
	if n, ok := value.(*yaml.Node); ok {
		return n, nil
	}
	if raw, ok := value.(json.RawMessage); ok {
		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		node := &doc
		if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
			node = doc.Content[0]
		}
		clearStyle(node)
		return node, nil
	}
	val := &yaml.Node{}
	if err := val.Encode(value); err != nil {
		return nil, err
	}
	return val, nil
}

// clearStyle drops the flow and quoting styles inherited from JSON input so
// the node is emitted as block YAML.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// yamlNodeJSON renders a YAML node as compact JSON, keeping mapping order.
func yamlNodeJSON(n *yaml.Node) (json.RawMessage, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	var buf bytes.Buffer
	switch n.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := marshalJSON(n.Content[i].Value)
			if err != nil {
				return nil, err
			}
			val, err := yamlNodeJSON(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			val, err := yamlNodeJSON(c)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte(']')
	default:
		var x any
		if err := n.Decode(&x); err != nil {
			return nil, err
		}
		switch val := x.(type) {
		case float64:
			if math.IsNaN(val) || math.IsInf(val, 0) {
				x = n.Value
			}
		default:
			if n.ShortTag() == "!!timestamp" {
				x = n.Value
			}
		}
		b, err := marshalJSON(x)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// detachNode deep-copies n with aliases replaced by copies of their anchors,
// so the node can be emitted outside its source document.
func detachNode(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return detachNode(n.Alias)
	}
	c := *n
	c.Anchor = ""
	c.Alias = nil
	c.Content = make([]*yaml.Node, len(n.Content))
	for i, child := range n.Content {
		c.Content[i] = detachNode(child)
	}
	return &c
}

// decodeYAML resets rec and fills it from a YAML mapping node.
func decodeYAML(node *yaml.Node, rec any, extra *Properties) error {
	v := recordValue(rec)
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errNotObject
	}
	v.Set(reflect.Zero(v.Type()))
	extra.reset()
	fields := declaredFields(v.Type())

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		f, declared := lookupField(fields, key)
		if !declared {
			extra.Set(key, detachNode(val))
			continue
		}
		ptr := reflect.New(f.typ)
		if err := val.Decode(ptr.Interface()); err != nil {
			return &CodecError{Record: v.Type().Name(), Field: key, Err: err}
		}
		v.Field(f.index).Set(ptr.Elem())
	}
	return nil
}

// formatRecord renders every declared field in order followed by the bag.
func formatRecord(rec any, extra *Properties) string {
	v := recordValue(rec)
	var b strings.Builder
	b.WriteString(v.Type().Name())
	b.WriteByte('{')
	for i, f := range declaredFields(v.Type()) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteByte('=')
		fv := v.Field(f.index)
		if fv.IsNil() {
			b.WriteString("<unset>")
			continue
		}
		b.WriteString(formatValue(derefValue(fv)))
	}
	b.WriteString(", additionalProperties={")
	for i, p := range extra.List() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(formatValue(p.Value))
	}
	b.WriteString("}}")
	return b.String()
}

func derefValue(fv reflect.Value) any {
	if fv.Kind() == reflect.Pointer {
		return fv.Elem().Interface()
	}
	return fv.Interface()
}

func formatValue(x any) string {
	switch val := x.(type) {
	case json.RawMessage:
		return string(val)
	case *yaml.Node:
		if b, err := yamlNodeJSON(val); err == nil {
			return string(b)
		}
		return val.Value
	case string:
		return strconv.Quote(val)
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, " ") + "]"
	default:
		return fmt.Sprint(val)
	}
}
