package registry

import (
	"sort"

	"github.com/challey74/netinv"
	"github.com/challey74/netinv/field"
)

// Registry is the catalogue of recognized device attributes: a mapping from
// top-level name to field Spec or Group. It is constructed once at startup
// and read-only afterwards, so a single Registry value can be shared across
// goroutines and injected wherever field paths need resolving.
type Registry struct {
	flat   []field.Flat
	byPath map[string]*field.Spec
}

// New builds a registry from top-level Specs and Groups. It returns a
// configuration error if two entries flatten to the same dotted path.
func New(entries ...field.Node) (*Registry, error) {
	r := &Registry{byPath: make(map[string]*field.Spec)}

	for _, entry := range entries {
		switch e := entry.(type) {
		case *field.Spec:
			if err := r.add(field.Flat{Path: e.Key, Spec: e}); err != nil {
				return nil, err
			}
		case *field.Group:
			for _, f := range e.Flatten("") {
				if err := r.add(f); err != nil {
					return nil, err
				}
			}
		}
	}

	// Custom fields first, then netbox, alphabetical within each category.
	sort.SliceStable(r.flat, func(i, j int) bool {
		ci, cj := r.flat[i].Spec.Category, r.flat[j].Spec.Category
		if ci != cj {
			return ci == field.CategoryCustom
		}
		return r.flat[i].Path < r.flat[j].Path
	})

	return r, nil
}

// MustNew is like New but panics on error. Intended for registries built
// from compile-time constant field definitions.
func MustNew(entries ...field.Node) *Registry {
	r, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(f field.Flat) error {
	if _, exists := r.byPath[f.Path]; exists {
		return netinv.NewConfigError("Registry.New", netinv.ErrDuplicateField).
			WithContext(map[string]any{"field": f.Path})
	}
	r.byPath[f.Path] = f.Spec
	r.flat = append(r.flat, f)
	return nil
}

// Flatten returns the ordered sequence of (dotted path, Spec) pairs for
// every leaf field in the registry. The slice is freshly allocated; callers
// may reorder it.
func (r *Registry) Flatten() []field.Flat {
	out := make([]field.Flat, len(r.flat))
	copy(out, r.flat)
	return out
}

// Paths returns the ordered dotted paths of every leaf field. This is the
// surface used to auto-generate per-field CLI and API options.
func (r *Registry) Paths() []string {
	out := make([]string, len(r.flat))
	for i, f := range r.flat {
		out[i] = f.Path
	}
	return out
}

// Lookup resolves a dotted field path to its Spec. An unrecognized path is
// a reported not-found error, never a panic, because paths originate from
// user input such as --filter-<field> flags.
func (r *Registry) Lookup(path string) (*field.Spec, error) {
	spec, ok := r.byPath[path]
	if !ok {
		return nil, netinv.NewNotFoundError("Registry.Lookup", netinv.ErrFieldNotFound).
			WithContext(map[string]any{"field": path})
	}
	return spec, nil
}

// Len returns the number of leaf fields in the registry.
func (r *Registry) Len() int {
	return len(r.flat)
}
