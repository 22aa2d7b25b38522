// Package field defines typed, named attribute definitions for network
// device inventories.
//
// A Spec describes one leaf attribute: its key, declared value type, and an
// ordered list of validators. A Group composes Specs (and nested Groups)
// into structured sub-objects such as a device's platform or virtual chassis
// info.
//
// # Basic Usage
//
// Creating field specs:
//
//	name    := field.String("name", field.NotEmpty)
//	id      := field.Int("id", field.PositiveInt)
//	status  := field.Enum("status", "active", "offline", "planned")
//	isStack := field.Bool("is_stack").Custom()
//
// Creating nested groups:
//
//	platform := field.NewGroup("platform",
//		field.Int("id", field.PositiveInt),
//		field.String("name", field.NotEmpty),
//		field.String("slug", field.NotEmpty),
//	)
//
// # Validation
//
// Spec.Validate checks the declared type first, then runs the validators in
// order, stopping at the first failure:
//
//	err := name.Validate("")    // error: string must not be empty
//	err = name.Validate("sw01") // nil
//
// Ad hoc constraints can be expressed as CEL expressions:
//
//	minFlash, err := field.CEL("value >= 1048576")
//
// Specs and Groups are immutable after registry construction; modifier
// methods like WithDefault and Custom return copies.
package field
