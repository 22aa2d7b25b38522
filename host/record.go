package host

import "strings"

// Record is the in-memory attribute map for one managed network device.
// Name is the inventory key; Data holds the structured attributes described
// by the schema registry (strings, numbers, booleans, lists, and nested
// maps, exactly as an inventory loader produced them).
//
// The filtering and extraction engines only read records. The single
// declared write path is Set, used by tasks recording results back onto
// the device they ran against.
type Record struct {
	// Name is the unique inventory name, usually the FQDN. Stack members
	// carry a ":n" position suffix until master election strips it.
	Name string `yaml:"name" json:"name"`

	// Hostname is the address automation connects to.
	Hostname string `yaml:"hostname" json:"hostname"`

	// Port is the management port, zero when unset.
	Port int `yaml:"port,omitempty" json:"port,omitempty"`

	// Platform is the connection driver hint (e.g. "cisco_ios").
	Platform string `yaml:"platform,omitempty" json:"platform,omitempty"`

	// Data is the structured attribute map keyed by field name.
	Data map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
}

// Lookup resolves a dotted field path against the record's attribute map,
// descending through nested maps. It returns the value and true when every
// segment resolves, nil and false otherwise.
func (r *Record) Lookup(path string) (any, bool) {
	if r == nil || r.Data == nil {
		return nil, false
	}

	cur := any(r.Data)
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set writes a value at a dotted field path, creating intermediate maps as
// needed. A non-map intermediate value is replaced; the caller has declared
// the path to be nested by using it.
func (r *Record) Set(path string, value any) {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}

	segs := strings.Split(path, ".")
	m := r.Data
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m = next
	}
	m[segs[len(segs)-1]] = value
}

// Delete removes the value at a dotted field path, if present. Intermediate
// maps are left in place.
func (r *Record) Delete(path string) {
	if r == nil || r.Data == nil {
		return
	}

	segs := strings.Split(path, ".")
	m := r.Data
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			return
		}
		m = next
	}
	delete(m, segs[len(segs)-1])
}

// Normalize returns the record's short name: lowercased, with any domain
// suffix removed. Filter sets and name comparisons operate on short names
// so "SW01.corp.example.com" and "sw01" refer to the same device.
func (r *Record) Normalize() string {
	name, _, _ := strings.Cut(r.Name, ".")
	return strings.ToLower(name)
}

// StackPosition splits a ":n" stack position suffix off the record name.
// It returns the bare name and the suffix including the colon, which is
// empty for non-stack names.
func (r *Record) StackPosition() (name, position string) {
	name, pos, found := strings.Cut(r.Name, ":")
	if !found {
		return name, ""
	}
	return name, ":" + pos
}
