// Package extract provides bulk, validated reads of several fields from a
// host record with a single success/failure signal.
//
// Task logic consuming many attributes at once needs to fail closed with
// one branch instead of one nil check per field: a device with an unknown
// current image must halt that device's task, not proceed with partial
// data. Extract gives exactly that:
//
//	res := extract.Extract(rec, []*field.Spec{primaryImage, stackInfo})
//	if !res.OK {
//		return fmt.Errorf("missing required host data")
//	}
//	image := res.Values[0].(string)
//
// Extraction never returns an error and never panics; one device's bad
// data must not abort a whole batch. Callers that need the reason consult
// the Missing and Invalid diagnostics, which are also logged.
package extract

import (
	"log/slog"

	"github.com/challey74/netinv/field"
	"github.com/challey74/netinv/host"
	"github.com/challey74/netinv/registry"
)

// Result is the outcome of one extraction call.
//
// Values matches the requested field order; entries for failed fields are
// nil, so a caller can short-circuit on !OK without knowing which field
// failed. Missing and Invalid name the failed fields for diagnostics and
// must not be used in place of the OK flag.
type Result struct {
	// OK is true iff every requested field was present and valid.
	OK bool

	// Values holds the validated value per requested field, nil on failure.
	Values []any

	// Missing lists fields absent from the host's attribute map.
	Missing []string

	// Invalid lists fields whose value failed type or validator checks.
	Invalid []string
}

// Extractor performs validated reads against host records. The zero value
// is usable and logs through slog.Default().
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor logging through the given logger. A nil logger
// falls back to slog.Default().
func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract looks up each requested field on the host in order, validates it
// against the field's spec, and collects the validated values. A field that
// is absent or fails validation makes the overall result unsuccessful; the
// remaining fields are still evaluated so diagnostics name every problem,
// but no further validator runs for a field once one has failed.
func (e *Extractor) Extract(rec *host.Record, fields []*field.Spec) Result {
	res := Result{OK: true, Values: make([]any, len(fields))}

	for i, spec := range fields {
		value, ok := rec.Lookup(spec.Key)
		if !ok {
			res.Missing = append(res.Missing, spec.Key)
			res.OK = false
			continue
		}
		if err := spec.Validate(value); err != nil {
			res.Invalid = append(res.Invalid, spec.Key)
			res.OK = false
			continue
		}
		res.Values[i] = value
	}

	e.report(rec, res)
	return res
}

// ExtractPaths is like Extract but resolves dotted field paths through the
// registry, so nested attributes such as "virtual_chassis.master.id" can be
// required directly. An unknown path counts as missing.
func (e *Extractor) ExtractPaths(rec *host.Record, reg *registry.Registry, paths ...string) Result {
	res := Result{OK: true, Values: make([]any, len(paths))}

	for i, path := range paths {
		spec, err := reg.Lookup(path)
		if err != nil {
			res.Missing = append(res.Missing, path)
			res.OK = false
			continue
		}
		value, ok := rec.Lookup(path)
		if !ok {
			res.Missing = append(res.Missing, path)
			res.OK = false
			continue
		}
		if err := spec.Validate(value); err != nil {
			res.Invalid = append(res.Invalid, path)
			res.OK = false
			continue
		}
		res.Values[i] = value
	}

	e.report(rec, res)
	return res
}

func (e *Extractor) report(rec *host.Record, res Result) {
	if res.OK {
		return
	}

	logger := e.logger
	if logger == nil {
		logger = slog.Default()
	}
	if len(res.Missing) > 0 {
		logger.Error("required fields not found for host",
			"host", rec.Name,
			"fields", res.Missing)
	}
	if len(res.Invalid) > 0 {
		logger.Error("required fields not valid for host",
			"host", rec.Name,
			"fields", res.Invalid)
	}
}

// Extract performs a validated read using the default extractor.
func Extract(rec *host.Record, fields []*field.Spec) Result {
	return (&Extractor{}).Extract(rec, fields)
}

// ExtractPaths performs a validated dotted-path read using the default
// extractor.
func ExtractPaths(rec *host.Record, reg *registry.Registry, paths ...string) Result {
	return (&Extractor{}).ExtractPaths(rec, reg, paths...)
}
