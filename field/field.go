package field

import (
	"fmt"
	"reflect"
)

// Type identifies the declared value type of a field.
// The set of types is closed so that switches over it are exhaustive.
type Type string

const (
	// TypeString is a plain string value.
	TypeString Type = "string"

	// TypeInt is an integer value. Whole-number floats are accepted because
	// JSON decoding produces float64 for all numbers.
	TypeInt Type = "integer"

	// TypeFloat is a floating point value.
	TypeFloat Type = "number"

	// TypeBool is a boolean value.
	TypeBool Type = "boolean"

	// TypeEnum is a string value restricted to an enumerated set of choices.
	TypeEnum Type = "enum"

	// TypeList is a list of arbitrary values.
	TypeList Type = "list"

	// TypeObject is a nested attribute map.
	TypeObject Type = "object"
)

// Category groups fields by their origin. Locally written attributes are
// custom; attributes mirrored from the upstream source of truth are netbox.
// Flattening a registry lists custom fields before netbox fields.
type Category string

const (
	CategoryCustom Category = "custom"
	CategoryNetBox Category = "netbox"
)

// Validator checks a single typed value and reports why it is unacceptable.
// Validators run in declaration order; the first failure wins.
type Validator func(value any) error

// Spec is a typed, named leaf attribute definition with an ordered list of
// validators. A Spec is immutable after registry construction; the With*
// methods return modified copies rather than mutating the receiver.
type Spec struct {
	// Key is the field name, unique within its level of nesting.
	Key string

	// Type is the declared value type.
	Type Type

	// Category is the field origin, used for flatten ordering.
	Category Category

	// Choices holds the allowed values for TypeEnum fields.
	Choices []string

	// Validators run in order after the type check.
	Validators []Validator

	// Default is the optional default value, nil when absent.
	Default any
}

// String creates a string field spec with the given validators.
func String(key string, validators ...Validator) *Spec {
	return &Spec{Key: key, Type: TypeString, Category: CategoryNetBox, Validators: validators}
}

// Int creates an integer field spec with the given validators.
func Int(key string, validators ...Validator) *Spec {
	return &Spec{Key: key, Type: TypeInt, Category: CategoryNetBox, Validators: validators}
}

// Float creates a floating point field spec with the given validators.
func Float(key string, validators ...Validator) *Spec {
	return &Spec{Key: key, Type: TypeFloat, Category: CategoryNetBox, Validators: validators}
}

// Bool creates a boolean field spec.
func Bool(key string, validators ...Validator) *Spec {
	return &Spec{Key: key, Type: TypeBool, Category: CategoryNetBox, Validators: validators}
}

// Enum creates a field spec whose value must be one of the given choices.
func Enum(key string, choices ...string) *Spec {
	return &Spec{Key: key, Type: TypeEnum, Category: CategoryNetBox, Choices: choices}
}

// List creates a field spec holding a list of arbitrary values.
func List(key string, validators ...Validator) *Spec {
	return &Spec{Key: key, Type: TypeList, Category: CategoryNetBox, Validators: validators}
}

// Object creates a field spec holding a nested attribute map whose shape is
// not described by the schema (e.g. raw upstream payloads).
func Object(key string, validators ...Validator) *Spec {
	return &Spec{Key: key, Type: TypeObject, Category: CategoryNetBox, Validators: validators}
}

// WithDefault returns a copy of the spec with the given default value.
func (s *Spec) WithDefault(v any) *Spec {
	copied := *s
	copied.Default = v
	return &copied
}

// WithCategory returns a copy of the spec assigned to the given category.
func (s *Spec) WithCategory(c Category) *Spec {
	copied := *s
	copied.Category = c
	return &copied
}

// Custom returns a copy of the spec in the custom category.
func (s *Spec) Custom() *Spec {
	return s.WithCategory(CategoryCustom)
}

// String returns the field key.
func (s *Spec) String() string {
	return s.Key
}

// Validate checks the value against the declared type and then runs each
// validator in order, returning the first failure. A value that passes
// Validate satisfies every declared constraint of the field.
func (s *Spec) Validate(value any) error {
	if value == nil {
		return fmt.Errorf("field %s: expected %s, got nil", s.Key, s.Type)
	}

	if err := s.checkType(value); err != nil {
		return err
	}

	for _, v := range s.Validators {
		if err := v(value); err != nil {
			return fmt.Errorf("field %s: %w", s.Key, err)
		}
	}

	return nil
}

// checkType verifies the value's dynamic type against the declared type.
func (s *Spec) checkType(value any) error {
	v := reflect.ValueOf(value)

	switch s.Type {
	case TypeString:
		if v.Kind() != reflect.String {
			return fmt.Errorf("field %s: expected string, got %T", s.Key, value)
		}
	case TypeInt:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			// Valid integer types
		case reflect.Float32, reflect.Float64:
			// JSON numbers decode as float64; accept whole numbers
			f := v.Float()
			if f != float64(int64(f)) {
				return fmt.Errorf("field %s: expected integer, got float with decimal: %v", s.Key, value)
			}
		default:
			return fmt.Errorf("field %s: expected integer, got %T", s.Key, value)
		}
	case TypeFloat:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			// Valid number types
		default:
			return fmt.Errorf("field %s: expected number, got %T", s.Key, value)
		}
	case TypeBool:
		if v.Kind() != reflect.Bool {
			return fmt.Errorf("field %s: expected boolean, got %T", s.Key, value)
		}
	case TypeEnum:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s: expected one of %v, got %T", s.Key, s.Choices, value)
		}
		for _, c := range s.Choices {
			if str == c {
				return nil
			}
		}
		return fmt.Errorf("field %s: value %q is not one of the allowed values: %v", s.Key, str, s.Choices)
	case TypeList:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return fmt.Errorf("field %s: expected list, got %T", s.Key, value)
		}
	case TypeObject:
		if v.Kind() != reflect.Map {
			return fmt.Errorf("field %s: expected object, got %T", s.Key, value)
		}
	}

	return nil
}
