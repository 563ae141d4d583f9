package field

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/moengage/p2ee"
)

// ExprField validates values against a CEL expression. The value is bound to
// the variable "value" and the expression must evaluate to true for the
// value to pass. The value itself is returned unchanged.
//
//	f := &field.ExprField{Expression: `value.startsWith("user-") && value.size() < 64`}
//
// The expression is compiled on first use. A malformed expression, or one
// that does not produce a boolean, surfaces as a definition error.
type ExprField struct {
	Core

	// Expression is the CEL expression evaluated against each value.
	Expression string

	once sync.Once
	prg  cel.Program
	err  error
}

// Kind returns the descriptor's display name.
func (f *ExprField) Kind() string { return "ExprField" }

// Validate evaluates the expression against the value.
func (f *ExprField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	prg, err := f.program()
	if err != nil {
		return nil, p2ee.NewDefinitionError(f.FieldName, fmt.Sprintf("invalid expression %q: %v", f.Expression, err))
	}
	out, _, err := prg.Eval(map[string]any{"value": value})
	if err != nil {
		return nil, f.fail(value, fmt.Sprintf("expression evaluation failed: %v", err))
	}
	ok, isBool := out.Value().(bool)
	if !isBool {
		return nil, p2ee.NewDefinitionError(f.FieldName,
			fmt.Sprintf("expression %q must evaluate to a boolean, got %T", f.Expression, out.Value()))
	}
	if !ok {
		return nil, f.fail(value, fmt.Sprintf("value did not satisfy expression %q", f.Expression))
	}
	if err := f.checkChoices(value); err != nil {
		return nil, err
	}
	return value, nil
}

func (f *ExprField) program() (cel.Program, error) {
	f.once.Do(func() {
		if f.Expression == "" {
			f.err = fmt.Errorf("expression is empty")
			return
		}
		env, err := cel.NewEnv(cel.Variable("value", cel.DynType))
		if err != nil {
			f.err = err
			return
		}
		ast, iss := env.Compile(f.Expression)
		if iss != nil && iss.Err() != nil {
			f.err = iss.Err()
			return
		}
		f.prg, f.err = env.Program(ast)
	})
	return f.prg, f.err
}
