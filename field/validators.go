package field

import (
	"fmt"
	"regexp"
	"strings"
)

// NotEmpty rejects strings that are empty after stripping whitespace.
func NotEmpty(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if strings.TrimSpace(str) == "" {
		return fmt.Errorf("string must not be empty")
	}
	return nil
}

// PositiveInt rejects integers that are not greater than zero.
// Whole-number floats are accepted for the same reason as the type check.
func PositiveInt(value any) error {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != float64(int64(v)) {
			return fmt.Errorf("expected integer, got float with decimal: %v", v)
		}
		n = int64(v)
	default:
		return fmt.Errorf("expected integer, got %T", value)
	}
	if n <= 0 {
		return fmt.Errorf("value %d must be greater than 0", n)
	}
	return nil
}

// Matches returns a validator that rejects strings not matching the pattern.
// The pattern is compiled once at construction; an invalid pattern panics,
// which is acceptable because patterns are registry literals.
func Matches(pattern string) Validator {
	re := regexp.MustCompile(pattern)
	return func(value any) error {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("value %q does not match pattern %s", str, pattern)
		}
		return nil
	}
}

// reloadRe matches the "HH:MM DD MMM" reload window format used by device
// reload scheduling, e.g. "03:30 14 jun".
var reloadRe = regexp.MustCompile(
	`^(?P<hour>[01]\d|2[0-3]):(?P<minutes>[0-5]\d)\s(?P<day>[0-2]\d|3[01])\s(?P<month>jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)$`)

// shortMonths are the months with fewer than 31 days, keyed by abbreviation.
var shortMonths = map[string]int{
	"feb": 29,
	"apr": 30,
	"jun": 30,
	"sep": 30,
	"nov": 30,
}

// ReloadWindow validates a scheduled reload time in "HH:MM DD MMM" format,
// checking the day against the named month's length.
func ReloadWindow(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	str = strings.ToLower(strings.TrimSpace(str))
	m := reloadRe.FindStringSubmatch(str)
	if m == nil {
		return fmt.Errorf("reload window %q must use HH:MM DD MMM format", str)
	}

	day := (int(m[3][0]-'0') * 10) + int(m[3][1]-'0')
	month := m[4]
	if max, short := shortMonths[month]; short && day > max {
		return fmt.Errorf("reload window %q: day %d exceeds days in %s", str, day, month)
	}

	return nil
}
