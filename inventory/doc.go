// Package inventory loads host records from local YAML files and performs
// pre-run hygiene on the loaded collection.
//
// The loader is a producer for the schema and filtering core: it turns
// hosts files into ordered host.Record collections, validates their
// attributes against a schema registry, drops hosts with non-conforming
// names, and resolves stacked devices down to their elected masters.
// Saved inventories carry a YAML metadata sidecar with a unique ID, the
// save name, and the capture time.
//
// Fetching inventories from the upstream source of truth over HTTP is a
// concern of the surrounding tooling; this package only reads files.
package inventory
