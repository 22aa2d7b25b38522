package field

import "testing"

func TestNotEmpty(t *testing.T) {
	if err := NotEmpty("sw01"); err != nil {
		t.Errorf("expected valid, got error: %v", err)
	}
	if err := NotEmpty(""); err == nil {
		t.Error("expected error for empty string, got nil")
	}
	if err := NotEmpty("   "); err == nil {
		t.Error("expected error for whitespace-only string, got nil")
	}
	if err := NotEmpty(42); err == nil {
		t.Error("expected error for non-string, got nil")
	}
}

func TestPositiveInt(t *testing.T) {
	for _, val := range []any{1, int64(10), 500.0} {
		if err := PositiveInt(val); err != nil {
			t.Errorf("expected valid for %T(%v), got error: %v", val, val, err)
		}
	}
	for _, val := range []any{0, -1, 1.5, "1"} {
		if err := PositiveInt(val); err == nil {
			t.Errorf("expected error for %T(%v), got nil", val, val)
		}
	}
}

func TestMatches(t *testing.T) {
	v := Matches(`^c9\d{3}$`)

	if err := v("c9300"); err != nil {
		t.Errorf("expected match, got error: %v", err)
	}
	if err := v("c3850"); err == nil {
		t.Error("expected error for non-match, got nil")
	}
	if err := v(9300); err == nil {
		t.Error("expected error for non-string, got nil")
	}
}

func TestReloadWindow(t *testing.T) {
	tests := []struct {
		value   any
		wantErr bool
	}{
		{"03:30 14 jun", false},
		{"23:59 31 jan", false},
		{"  03:30 14 JUN  ", false}, // case and whitespace insensitive
		{"03:30 31 jun", true},      // june has 30 days
		{"03:30 30 feb", true},
		{"24:00 14 jun", true}, // invalid hour
		{"03:30 14", true},     // month required
		{"tomorrow", true},
		{1430, true},
	}

	for _, tt := range tests {
		err := ReloadWindow(tt.value)
		if tt.wantErr && err == nil {
			t.Errorf("ReloadWindow(%v): expected error, got nil", tt.value)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ReloadWindow(%v): expected valid, got error: %v", tt.value, err)
		}
	}
}
