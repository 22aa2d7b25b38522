// Package host defines the in-memory record for one managed network device.
//
// A Record pairs connection metadata (name, hostname, port, platform) with
// a structured attribute map produced by an inventory loader. Attributes
// are resolved by dotted field path, descending through nested maps:
//
//	rec.Lookup("virtual_chassis.master.id")
//
// The type-coercing accessors (GetString, GetInt, GetBool, GetFloat,
// GetStringSlice, GetMap) return defaults on mismatch and are meant for
// display and convenience paths. Task logic that must halt on missing or
// invalid data uses the extract package, which gives one hard
// success/failure signal across all required fields.
package host
