// Package cast converts untyped string tokens, as received from CLI flags
// or API parameters, into the value type declared by a field spec.
//
// By default a token is cast per the spec's declared type. A token of the
// form "<tag>:<literal>" with tag in {str, int, float, bool, none} is an
// explicit override: the literal is cast per the tag instead of the
// declared type. This is how callers compare against fields declared as
// nested or complex, or force a type mismatch check. A colon only triggers
// an override when the prefix is a recognized tag, so values like
// "03:30 14 jun" cast normally.
//
// Cast failures are always reported to the caller; nothing in this package
// silently defaults.
package cast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/challey74/netinv"
	"github.com/challey74/netinv/field"
)

// Error reports a raw value that could not be converted to its target type.
// It unwraps to netinv.ErrCastFailed for errors.Is checks.
type Error struct {
	// Field is the key of the field being cast, empty for bare overrides.
	Field string

	// Raw is the offending input token.
	Raw string

	// Target names the declared type or override tag the cast was for.
	Target string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot cast %q to %s", e.Raw, e.Target)
	}
	return fmt.Sprintf("field %s: cannot cast %q to %s", e.Field, e.Raw, e.Target)
}

func (e *Error) Unwrap() error {
	return netinv.ErrCastFailed
}

// Override type tags accepted in "<tag>:<literal>" tokens.
const (
	TagString = "str"
	TagInt    = "int"
	TagFloat  = "float"
	TagBool   = "bool"
	TagNone   = "none"
)

// Cast converts a raw string token to the type declared by spec, honoring
// the explicit override syntax. The override takes precedence over the
// declared type and never touches the spec itself.
func Cast(raw string, spec *field.Spec) (any, error) {
	if tag, literal, ok := splitOverride(raw); ok {
		return castTag(spec.Key, tag, literal)
	}

	switch spec.Type {
	case field.TypeString:
		return raw, nil
	case field.TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &Error{Field: spec.Key, Raw: raw, Target: string(spec.Type)}
		}
		return n, nil
	case field.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &Error{Field: spec.Key, Raw: raw, Target: string(spec.Type)}
		}
		return f, nil
	case field.TypeBool:
		return castBool(spec.Key, raw)
	case field.TypeEnum:
		for _, c := range spec.Choices {
			if raw == c {
				return raw, nil
			}
		}
		return nil, &Error{Field: spec.Key, Raw: raw, Target: string(spec.Type)}
	default:
		// Complex fields have no scalar representation of their own; the
		// caller must pick one with an override tag.
		return nil, &Error{Field: spec.Key, Raw: raw, Target: string(spec.Type)}
	}
}

// CastList converts a comma-joined token into independently cast elements.
// Whitespace around elements is trimmed; an empty element is an error, not
// a silently skipped value.
func CastList(raw string, spec *field.Spec) ([]any, error) {
	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &Error{Field: spec.Key, Raw: raw, Target: string(spec.Type)}
		}
		v, err := Cast(part, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// splitOverride recognizes "<tag>:<literal>" tokens. Only known tags count;
// any other colon-bearing value is an ordinary literal.
func splitOverride(raw string) (tag, literal string, ok bool) {
	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		return "", "", false
	}
	tag = strings.ToLower(raw[:idx])
	switch tag {
	case TagString, TagInt, TagFloat, TagBool, TagNone:
		return tag, raw[idx+1:], true
	}
	return "", "", false
}

func castTag(key, tag, literal string) (any, error) {
	switch tag {
	case TagString:
		return literal, nil
	case TagInt:
		n, err := strconv.Atoi(literal)
		if err != nil {
			return nil, &Error{Field: key, Raw: literal, Target: tag}
		}
		return n, nil
	case TagFloat:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, &Error{Field: key, Raw: literal, Target: tag}
		}
		return f, nil
	case TagBool:
		return castBool(key, literal)
	case TagNone:
		return nil, nil
	default:
		return nil, &Error{Field: key, Raw: literal, Target: tag}
	}
}

// castBool accepts only the fixed token set true/false, case-insensitive.
func castBool(key, raw string) (any, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, &Error{Field: key, Raw: raw, Target: TagBool}
}
