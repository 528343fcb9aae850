// Package filter evaluates CEL expressions against list items.
//
// Each item is exposed to the expression as the map variable `item`,
// shaped like its JSON form: `item.stock <= item.minStock`,
// `item.category == "Tools"`, `double(item.price) > 10.0`. Money fields
// are JSON strings, so compare them through double().
package filter

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"shopledger/internal/core/apperror"
)

// Variable is the name items are bound to inside an expression.
const Variable = "item"

var newEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(Variable, cel.MapType(cel.StringType, cel.DynType)),
		cel.CrossTypeNumericComparisons(true),
	)
})

// Expression is a compiled, reusable filter.
type Expression struct {
	source  string
	program cel.Program
}

// Compile parses and type-checks expr. Errors are validation errors
// carrying the compiler message.
func Compile(expr string) (*Expression, error) {
	env, err := newEnv()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("cel env: %w", err))
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, invalid(expr, iss.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, invalid(expr, fmt.Errorf("expression yields %s, want bool", out))
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, invalid(expr, err)
	}
	return &Expression{source: expr, program: program}, nil
}

// String returns the source text.
func (e *Expression) String() string {
	return e.source
}

// Match reports whether item satisfies the expression. An item the
// expression cannot be evaluated on (missing key, wrong type) does not match.
func (e *Expression) Match(item any) (bool, error) {
	fields, err := toMap(item)
	if err != nil {
		return false, err
	}
	out, _, err := e.program.Eval(map[string]any{Variable: fields})
	if err != nil {
		return false, nil
	}
	matched, ok := out.Value().(bool)
	return ok && matched, nil
}

// Apply returns the items of list matching expr, in order.
// An empty expr returns list unchanged.
func Apply[T any](expr string, list []T) ([]T, error) {
	if expr == "" {
		return list, nil
	}
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(list))
	for _, item := range list {
		ok, err := e.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func toMap(item any) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("encode filter item: %w", err))
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("decode filter item: %w", err))
	}
	return fields, nil
}

func invalid(expr string, err error) error {
	return apperror.NewValidation("invalid filter expression").
		WithDetail("filter", expr).
		WithDetail("error", err.Error())
}
