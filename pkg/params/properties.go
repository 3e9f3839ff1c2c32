package params

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Property is one entry of a record's extension bag.
type Property struct {
	Name  string
	Value any
}

// Properties is the ordered extension bag holding keys a record does not
// declare. Entries keep the order in which they were first set. Values
// decoded from JSON are stored as json.RawMessage and values decoded from
// YAML as *yaml.Node, so each is re-emitted verbatim in its own format.
//
// The zero value is an empty bag ready to use.
type Properties struct {
	items []Property
}

// Len returns the number of entries.
func (ps *Properties) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.items)
}

// Get returns the value stored under name.
func (ps *Properties) Get(name string) (any, bool) {
	if ps == nil {
		return nil, false
	}
	for _, p := range ps.items {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Set stores value under name. An existing entry keeps its position.
func (ps *Properties) Set(name string, value any) {
	for i := range ps.items {
		if ps.items[i].Name == name {
			ps.items[i].Value = value
			return
		}
	}
	ps.items = append(ps.items, Property{Name: name, Value: value})
}

// Delete removes name from the bag and reports whether it was present.
func (ps *Properties) Delete(name string) bool {
	for i, p := range ps.items {
		if p.Name == name {
			ps.items = append(ps.items[:i], ps.items[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the entry names in order.
func (ps *Properties) Names() []string {
	names := make([]string, 0, ps.Len())
	for _, p := range ps.List() {
		names = append(names, p.Name)
	}
	return names
}

// List returns a copy of the entries in order.
func (ps *Properties) List() []Property {
	if ps == nil {
		return nil
	}
	out := make([]Property, len(ps.items))
	copy(out, ps.items)
	return out
}

// Map returns the entries as a plain map. Raw JSON and YAML values are
// decoded.
func (ps *Properties) Map() map[string]any {
	m := make(map[string]any, ps.Len())
	for _, p := range ps.List() {
		switch raw := p.Value.(type) {
		case json.RawMessage:
			var v any
			if err := json.Unmarshal(raw, &v); err == nil {
				m[p.Name] = v
				continue
			}
		case *yaml.Node:
			var v any
			if err := raw.Decode(&v); err == nil {
				m[p.Name] = v
				continue
			}
		}
		m[p.Name] = p.Value
	}
	return m
}

// Decode unmarshals the value stored under name into dst.
func (ps *Properties) Decode(name string, dst any) error {
	v, ok := ps.Get(name)
	if !ok {
		return fmt.Errorf("params: additional property %q not set", name)
	}
	if n, ok := v.(*yaml.Node); ok {
		if err := n.Decode(dst); err != nil {
			return fmt.Errorf("params: additional property %q: %w", name, err)
		}
		return nil
	}
	raw, err := ValueJSON(v)
	if err != nil {
		return fmt.Errorf("params: additional property %q: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("params: additional property %q: %w", name, err)
	}
	return nil
}

func (ps *Properties) reset() {
	ps.items = nil
}
