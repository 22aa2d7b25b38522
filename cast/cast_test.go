package cast

import (
	"errors"
	"testing"

	"github.com/challey74/netinv"
	"github.com/challey74/netinv/field"
)

func TestCastString(t *testing.T) {
	got, err := Cast("sw01", field.String("name"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "sw01" {
		t.Errorf("expected passthrough %q, got %v", "sw01", got)
	}
}

func TestCastInt(t *testing.T) {
	got, err := Cast("1234", field.Int("id"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1234 {
		t.Errorf("expected 1234, got %v (%T)", got, got)
	}

	if _, err := Cast("twelve", field.Int("id")); err == nil {
		t.Error("expected error for non-numeric string, got nil")
	}
}

func TestCastFloat(t *testing.T) {
	got, err := Cast("52.37", field.Float("latitude"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 52.37 {
		t.Errorf("expected 52.37, got %v", got)
	}
}

func TestCastBool(t *testing.T) {
	for raw, want := range map[string]bool{
		"true":  true,
		"True":  true,
		"FALSE": false,
		"false": false,
	} {
		got, err := Cast(raw, field.Bool("is_stack"))
		if err != nil {
			t.Fatalf("Cast(%q): unexpected error: %v", raw, err)
		}
		if got != want {
			t.Errorf("Cast(%q): expected %v, got %v", raw, want, got)
		}
	}

	// Only the fixed token set is accepted
	for _, raw := range []string{"yes", "1", "t", ""} {
		if _, err := Cast(raw, field.Bool("is_stack")); err == nil {
			t.Errorf("Cast(%q): expected error, got nil", raw)
		}
	}
}

func TestCastEnum(t *testing.T) {
	spec := field.Enum("status.value", "active", "offline")

	got, err := Cast("active", spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "active" {
		t.Errorf("expected %q, got %v", "active", got)
	}

	if _, err := Cast("retired", spec); err == nil {
		t.Error("expected error for non-member, got nil")
	}
}

func TestCastComplexNeedsOverride(t *testing.T) {
	if _, err := Cast("hq", field.Object("site")); err == nil {
		t.Error("expected error casting to object without an override, got nil")
	}
	if _, err := Cast("a,b", field.List("tags")); err == nil {
		t.Error("expected error casting to list without an override, got nil")
	}
}

// The "int:1234" override casts the literal as an integer even against a
// field declared as string: the override takes precedence over the
// declared type.
func TestCastOverridePrecedence(t *testing.T) {
	got, err := Cast("int:1234", field.String("serial"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1234 {
		t.Errorf("expected integer 1234, got %v (%T)", got, got)
	}
}

func TestCastOverrideTags(t *testing.T) {
	spec := field.Object("cluster")

	tests := []struct {
		raw  string
		want any
	}{
		{"str:42", "42"},
		{"int:42", 42},
		{"float:4.2", 4.2},
		{"bool:true", true},
		{"BOOL:False", false}, // tag is case-insensitive
		{"none:", nil},
		{"none:none", nil},
	}
	for _, tt := range tests {
		got, err := Cast(tt.raw, spec)
		if err != nil {
			t.Errorf("Cast(%q): unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Cast(%q): expected %v (%T), got %v (%T)", tt.raw, tt.want, tt.want, got, got)
		}
	}

	if _, err := Cast("int:", spec); err == nil {
		t.Error("expected error for empty override literal, got nil")
	}
	if _, err := Cast("int:abc", spec); err == nil {
		t.Error("expected error for non-numeric override literal, got nil")
	}
}

// A colon only starts an override when the prefix is a recognized tag, so
// values that naturally contain colons cast normally.
func TestCastColonLiteral(t *testing.T) {
	got, err := Cast("03:30 14 jun", field.String("reload_time"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "03:30 14 jun" {
		t.Errorf("expected literal passthrough, got %v", got)
	}
}

func TestCastList(t *testing.T) {
	got, err := CastList("host1, host2 ,host3", field.String("name"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{"host1", "host2", "host3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestCastListEachElementIndependent(t *testing.T) {
	got, err := CastList("int:1,2,str:3", field.Int("id"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 1 || got[1] != 2 || got[2] != "3" {
		t.Errorf("expected per-element casting [1 2 \"3\"], got %v", got)
	}
}

func TestCastListEmptySegment(t *testing.T) {
	// An empty segment is an error, not a silently skipped value
	for _, raw := range []string{"host1,,host2", ",host1", "host1,", ""} {
		if _, err := CastList(raw, field.String("name")); err == nil {
			t.Errorf("CastList(%q): expected error, got nil", raw)
		}
	}
}

func TestCastErrorUnwraps(t *testing.T) {
	_, err := Cast("abc", field.Int("id"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, netinv.ErrCastFailed) {
		t.Errorf("expected errors.Is(err, ErrCastFailed), got %v", err)
	}

	var castErr *Error
	if !errors.As(err, &castErr) {
		t.Fatalf("expected *cast.Error, got %T", err)
	}
	if castErr.Field != "id" || castErr.Raw != "abc" {
		t.Errorf("expected error to carry field and raw value, got %+v", castErr)
	}
}

// Round-trip: a stringified value of each supported type casts back to
// itself.
func TestCastRoundTrip(t *testing.T) {
	tests := []struct {
		spec *field.Spec
		raw  string
		want any
	}{
		{field.String("name"), "sw01", "sw01"},
		{field.Int("id"), "77", 77},
		{field.Float("latitude"), "52.37", 52.37},
		{field.Bool("is_stack"), "true", true},
		{field.Enum("status.value", "active", "offline"), "offline", "offline"},
	}
	for _, tt := range tests {
		got, err := Cast(tt.raw, tt.spec)
		if err != nil {
			t.Errorf("Cast(%q, %s): unexpected error: %v", tt.raw, tt.spec.Key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Cast(%q, %s): expected %v, got %v", tt.raw, tt.spec.Key, tt.want, got)
		}
	}
}
