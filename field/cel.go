package field

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// CEL compiles a CEL expression into a Validator. The expression is
// evaluated with the field value bound to the variable "value" and must
// produce a boolean. This lets operators declare ad hoc constraints
// (e.g. `value >= 1024`, `value.startsWith("c9300")`) without new Go code.
func CEL(expr string) (Validator, error) {
	env, err := cel.NewEnv(cel.Variable("value", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("cel environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, iss.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}

	return func(value any) error {
		out, _, err := prg.Eval(map[string]any{"value": value})
		if err != nil {
			return fmt.Errorf("eval %q: %w", expr, err)
		}
		ok, isBool := out.Value().(bool)
		if !isBool {
			return fmt.Errorf("expression %q did not produce a boolean", expr)
		}
		if !ok {
			return fmt.Errorf("value %v failed expression %q", value, expr)
		}
		return nil
	}, nil
}

// MustCEL is like CEL but panics on a compile error. Intended for registry
// literals where the expression is a compile-time constant.
func MustCEL(expr string) Validator {
	v, err := CEL(expr)
	if err != nil {
		panic(err)
	}
	return v
}
