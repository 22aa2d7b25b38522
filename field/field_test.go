package field

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	spec := String("name")

	if spec.Type != TypeString {
		t.Errorf("expected Type to be %q, got %q", TypeString, spec.Type)
	}

	if err := spec.Validate("sw01"); err != nil {
		t.Errorf("expected valid string, got error: %v", err)
	}

	if err := spec.Validate(123); err == nil {
		t.Error("expected error for integer, got nil")
	}
	if err := spec.Validate(true); err == nil {
		t.Error("expected error for boolean, got nil")
	}
}

func TestInt(t *testing.T) {
	spec := Int("id")

	validInts := []any{
		int(42),
		int8(42),
		int16(42),
		int32(42),
		int64(42),
		uint(42),
	}
	for _, val := range validInts {
		if err := spec.Validate(val); err != nil {
			t.Errorf("expected valid integer for %T(%v), got error: %v", val, val, err)
		}
	}

	// JSON decodes all numbers as float64
	if err := spec.Validate(42.0); err != nil {
		t.Errorf("expected valid for whole number float, got error: %v", err)
	}
	if err := spec.Validate(3.14); err == nil {
		t.Error("expected error for float with decimal, got nil")
	}
	if err := spec.Validate("42"); err == nil {
		t.Error("expected error for string, got nil")
	}
}

func TestFloat(t *testing.T) {
	spec := Float("latitude")

	for _, val := range []any{3.14, float32(3.14), 42, int64(42)} {
		if err := spec.Validate(val); err != nil {
			t.Errorf("expected valid number for %T(%v), got error: %v", val, val, err)
		}
	}
	if err := spec.Validate("3.14"); err == nil {
		t.Error("expected error for string, got nil")
	}
}

func TestBool(t *testing.T) {
	spec := Bool("is_stack")

	if err := spec.Validate(true); err != nil {
		t.Errorf("expected valid boolean, got error: %v", err)
	}
	if err := spec.Validate("true"); err == nil {
		t.Error("expected error for string, got nil")
	}
	if err := spec.Validate(1); err == nil {
		t.Error("expected error for integer, got nil")
	}
}

func TestEnum(t *testing.T) {
	spec := Enum("status", "active", "offline")

	if err := spec.Validate("active"); err != nil {
		t.Errorf("expected valid enum member, got error: %v", err)
	}
	if err := spec.Validate("retired"); err == nil {
		t.Error("expected error for non-member, got nil")
	}
	if err := spec.Validate(7); err == nil {
		t.Error("expected error for non-string, got nil")
	}
}

func TestListAndObject(t *testing.T) {
	list := List("tags")
	if err := list.Validate([]any{"a", "b"}); err != nil {
		t.Errorf("expected valid list, got error: %v", err)
	}
	if err := list.Validate("a,b"); err == nil {
		t.Error("expected error for string against list, got nil")
	}

	obj := Object("cluster")
	if err := obj.Validate(map[string]any{"id": 1}); err != nil {
		t.Errorf("expected valid object, got error: %v", err)
	}
	if err := obj.Validate([]any{}); err == nil {
		t.Error("expected error for list against object, got nil")
	}
}

func TestValidateNil(t *testing.T) {
	if err := String("name").Validate(nil); err == nil {
		t.Error("expected error for nil value, got nil")
	}
}

func TestValidatorOrder(t *testing.T) {
	var ran []string
	first := func(any) error {
		ran = append(ran, "first")
		return errFail
	}
	second := func(any) error {
		ran = append(ran, "second")
		return nil
	}

	spec := String("name", first, second)
	if err := spec.Validate("x"); err == nil {
		t.Fatal("expected validation failure, got nil")
	}

	// First failure wins and later validators never run
	if len(ran) != 1 || ran[0] != "first" {
		t.Errorf("expected only the first validator to run, ran: %v", ran)
	}
}

var errFail = &validatorError{}

type validatorError struct{}

func (*validatorError) Error() string { return "fail" }

func TestWithDefaultCopies(t *testing.T) {
	base := String("serial")
	withDef := base.WithDefault("unknown")

	if base.Default != nil {
		t.Error("WithDefault mutated the receiver")
	}
	if withDef.Default != "unknown" {
		t.Errorf("expected default %q, got %v", "unknown", withDef.Default)
	}
}

func TestCustomCopies(t *testing.T) {
	base := String("ios_version")
	custom := base.Custom()

	if base.Category != CategoryNetBox {
		t.Error("Custom mutated the receiver")
	}
	if custom.Category != CategoryCustom {
		t.Errorf("expected custom category, got %q", custom.Category)
	}
}

func TestValidateErrorNamesField(t *testing.T) {
	err := Int("flash_space_available").Validate("lots")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "flash_space_available") {
		t.Errorf("expected error to name the field, got: %v", err)
	}
}
