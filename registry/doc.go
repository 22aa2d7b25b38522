// Package registry provides the enumerable catalogue of device attribute
// definitions.
//
// A Registry maps top-level field names to Specs and Groups and is
// read-only after construction. Flatten exposes the full vocabulary as
// dotted paths, which callers use to generate per-field CLI and API
// options; Lookup resolves externally supplied field names to exactly one
// known Spec, reporting unknown names as errors rather than panicking.
//
//	reg := registry.Default()
//	spec, err := reg.Lookup("platform.slug")
//	for _, f := range reg.Flatten() {
//		fmt.Println(f.Path, f.Spec.Type)
//	}
//
// Default returns the standard device vocabulary. Tests and alternate
// inventories construct their own registries with New; nothing in this
// package is ambient process state.
package registry
