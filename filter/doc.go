// Package filter evaluates per-field criteria against collections of host
// records.
//
// A Criterion is one typed comparison (field path, operator, expected
// value) built from raw string input at invocation time: the field path is
// resolved through the schema registry and the value is cast to the field's
// declared type, so a malformed flag fails when the command is built, not
// silently at filter time.
//
//	criteria, err := filter.ParseCriteria(reg, "platform.slug", "ios,iosxe")
//	if err != nil {
//		return err // unknown field or uncastable value
//	}
//	kept := filter.Filter(hosts, criteria, false)
//
// # Match Semantics
//
// A host matches the criteria set iff at least one criterion matches (OR
// across all criteria). This holds even for multiple criteria on the same
// field; there is no implicit AND grouping per field. Passing exclude=true
// inverts the selection: any host matching any criterion is dropped.
//
// Filtering preserves input order, allocates its result freshly, and keeps
// no state between calls.
package filter
