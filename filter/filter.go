package filter

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/challey74/netinv/cast"
	"github.com/challey74/netinv/field"
	"github.com/challey74/netinv/host"
	"github.com/challey74/netinv/registry"
)

// Op is a comparison operator applied between a host's field value and a
// criterion's expected value.
type Op string

const (
	// OpEquals matches when the field value equals the expected value.
	OpEquals Op = "equals"

	// OpContains matches when the expected string is a case-insensitive
	// substring of the field value's string form.
	OpContains Op = "contains"

	// OpIn matches when the field value equals any member of the expected
	// value set.
	OpIn Op = "in"
)

// Criterion is one typed comparison built from raw CLI or API input. It is
// created per invocation and never persisted.
type Criterion struct {
	// Path is the dotted field path the criterion reads on each host.
	Path string

	// Spec is the resolved field definition for Path.
	Spec *field.Spec

	// Op is the comparison operator.
	Op Op

	// Want is the expected value, already cast to the field's declared or
	// overridden type. For OpIn it is a []any of members.
	Want any
}

// NewCriterion resolves the field path and casts the raw expected value,
// returning a ready-to-evaluate criterion. An unknown path or uncastable
// value is reported to the caller; it indicates a malformed command, so it
// surfaces at construction time rather than being ignored at filter time.
func NewCriterion(reg *registry.Registry, path string, op Op, raw string) (Criterion, error) {
	spec, err := reg.Lookup(path)
	if err != nil {
		return Criterion{}, err
	}

	switch op {
	case OpContains:
		// Substring matching operates on string forms; no cast needed.
		return Criterion{Path: path, Spec: spec, Op: op, Want: raw}, nil
	case OpIn:
		members, err := cast.CastList(raw, spec)
		if err != nil {
			return Criterion{}, err
		}
		return Criterion{Path: path, Spec: spec, Op: op, Want: members}, nil
	case OpEquals:
		want, err := cast.Cast(raw, spec)
		if err != nil {
			return Criterion{}, err
		}
		return Criterion{Path: path, Spec: spec, Op: op, Want: want}, nil
	default:
		return Criterion{}, fmt.Errorf("unknown filter operator %q", op)
	}
}

// ParseCriteria expands a comma-separated raw value into one equality
// criterion per element, each cast independently with the type-tag override
// honored per element. The criteria then combine with all others through
// the engine's OR semantics, which is how "host1,host2" becomes
// set-membership.
func ParseCriteria(reg *registry.Registry, path, raw string) ([]Criterion, error) {
	spec, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	members, err := cast.CastList(raw, spec)
	if err != nil {
		return nil, err
	}

	out := make([]Criterion, len(members))
	for i, want := range members {
		out[i] = Criterion{Path: path, Spec: spec, Op: OpEquals, Want: want}
	}
	return out, nil
}

// Matches evaluates the criterion against one host. A host without the
// field never matches.
func (c Criterion) Matches(rec *host.Record) bool {
	val, ok := rec.Lookup(c.Path)
	if !ok {
		return false
	}

	switch c.Op {
	case OpEquals:
		return valueEqual(val, c.Want)
	case OpContains:
		want, _ := c.Want.(string)
		return strings.Contains(
			strings.ToLower(fmt.Sprintf("%v", val)),
			strings.ToLower(want),
		)
	case OpIn:
		members, _ := c.Want.([]any)
		for _, member := range members {
			if valueEqual(val, member) {
				return true
			}
		}
	}
	return false
}

// Filter evaluates the criteria set against each host and returns a freshly
// allocated collection in the input order. With exclude false the result is
// the hosts matching at least one criterion; with exclude true it is the
// hosts matching none, i.e. any host matching any criterion is dropped.
//
// Filter is stateless and performs a pure O(hosts x criteria) scan, so it
// is safe to call concurrently.
func Filter(hosts []*host.Record, criteria []Criterion, exclude bool) []*host.Record {
	out := make([]*host.Record, 0, len(hosts))
	for _, rec := range hosts {
		if matchesAny(rec, criteria) != exclude {
			out = append(out, rec)
		}
	}
	return out
}

// Count returns how many hosts match at least one criterion.
func Count(hosts []*host.Record, criteria []Criterion) int {
	n := 0
	for _, rec := range hosts {
		if matchesAny(rec, criteria) {
			n++
		}
	}
	return n
}

// matchesAny is the single policy point for combining criteria: a host
// matches the set iff at least one criterion matches, including multiple
// criteria on the same field. Criteria are never AND-ed. A future policy
// change swaps this function, nothing else.
func matchesAny(rec *host.Record, criteria []Criterion) bool {
	for _, c := range criteria {
		if c.Matches(rec) {
			return true
		}
	}
	return false
}

// valueEqual compares a host's attribute value with an expected value,
// coercing across the numeric representations JSON and YAML decoding
// produce (int, int64, float64).
func valueEqual(got, want any) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}

	if gf, ok := asFloat(got); ok {
		if wf, wok := asFloat(want); wok {
			return gf == wf
		}
		return false
	}

	switch g := got.(type) {
	case string:
		w, ok := want.(string)
		return ok && g == w
	case bool:
		w, ok := want.(bool)
		return ok && g == w
	}

	return reflect.DeepEqual(got, want)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
