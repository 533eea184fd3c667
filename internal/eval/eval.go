// Package eval implements the two-stage expression evaluator: {key}
// template substitution over a record context, followed by arithmetic and
// boolean evaluation of the substituted script via expr-lang/expr.
package eval

import (
	"fmt"
	"math"
	"reflect"
	"regexp"

	"github.com/expr-lang/expr"

	"github.com/leslieo2/sbrdgen/internal/value"
)

// Context is the read-only view over already-produced values for the
// record currently being generated, keyed by field name.
type Context map[string]value.Value

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// FormatScript performs stage one: every occurrence of {name} where name is
// a key in ctx is replaced by that value's format_string. Occurrences whose
// name is absent from ctx are left literal. Substitution is non-recursive
// and left-to-right; replacement text is never re-scanned.
func FormatScript(script string, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(script, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := ctx[name]
		if !ok {
			return match
		}
		return v.FormatString()
	})
}

// builtins supplies the evaluator's extra functions beyond what expr-lang
// already provides (len, min, max are expr-lang builtins; is_empty is ours).
var builtins = map[string]interface{}{
	"is_empty": func(v interface{}) bool {
		if v == nil {
			return true
		}
		if s, ok := v.(string); ok {
			return len(s) == 0
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
			return rv.Len() == 0
		default:
			return false
		}
	},
}

func evalRaw(script string, ctx Context) (interface{}, string, error) {
	substituted := FormatScript(script, ctx)

	env := make(map[string]interface{}, len(builtins))
	for k, v := range builtins {
		env[k] = v
	}

	out, err := expr.Eval(substituted, env)
	if err != nil {
		return nil, substituted, failEval(script, substituted, err)
	}
	return out, substituted, nil
}

// EvalInt evaluates script and coerces the result to Int.
func EvalInt(script string, ctx Context) (int32, error) {
	out, substituted, err := evalRaw(script, ctx)
	if err != nil {
		return 0, err
	}
	switch n := out.(type) {
	case int:
		return int32(n), nil
	case int64:
		return int32(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, failEval(script, substituted, fmt.Errorf("result %v is not an integer", n))
		}
		return int32(n), nil
	default:
		return 0, failEval(script, substituted, fmt.Errorf("result %v (%T) is not numeric", out, out))
	}
}

// EvalReal evaluates script and coerces the result to Real.
func EvalReal(script string, ctx Context) (float32, error) {
	out, substituted, err := evalRaw(script, ctx)
	if err != nil {
		return 0, err
	}
	switch n := out.(type) {
	case float64:
		return float32(n), nil
	case int:
		return float32(n), nil
	case int64:
		return float32(n), nil
	default:
		return 0, failEval(script, substituted, fmt.Errorf("result %v (%T) is not numeric", out, out))
	}
}

// EvalBool evaluates script and coerces the result to Bool.
func EvalBool(script string, ctx Context) (bool, error) {
	out, substituted, err := evalRaw(script, ctx)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, failEval(script, substituted, fmt.Errorf("result %v (%T) is not boolean", out, out))
	}
	return b, nil
}

// EvalValue evaluates script and preserves the evaluator's native result
// type as a DataValue. Tuples and other unsupported shapes are treated as
// Null rather than failing.
func EvalValue(script string, ctx Context) (value.Value, error) {
	out, _, err := evalRaw(script, ctx)
	if err != nil {
		return value.Value{}, err
	}
	switch n := out.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(n), nil
	case int:
		return value.Int(int32(n)), nil
	case int64:
		return value.Int(int32(n)), nil
	case float64:
		return value.Real(float32(n)), nil
	case string:
		return value.String(n), nil
	default:
		return value.Null(), nil
	}
}
