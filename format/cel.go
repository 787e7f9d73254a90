package format

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// celValidator evaluates a compiled CEL program against each subject. The
// program is compiled once at construction and is safe for concurrent
// evaluation.
type celValidator struct {
	name string
	expr string
	prg  cel.Program
}

// CEL builds a validator from a CEL expression over the string variable
// "value". The expression must produce a boolean; true means the subject
// conforms. Compilation errors are returned here, at construction time, so an
// invalid validator can never reach a schema node.
//
//	semver, err := format.CEL("semver",
//		`value.matches("^[0-9]+\\.[0-9]+\\.[0-9]+$")`)
func CEL(name, expression string) (Validator, error) {
	env, err := cel.NewEnv(
		cel.Variable("value", cel.StringType),
		ext.Strings(),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	ast, iss := env.Compile(expression)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile CEL expression for format %q: %w", name, iss.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build CEL program for format %q: %w", name, err)
	}

	return &celValidator{name: name, expr: expression, prg: prg}, nil
}

func (v *celValidator) FormatName() string { return v.name }

func (v *celValidator) Validate(subject string) string {
	out, _, err := v.prg.Eval(map[string]any{"value": subject})
	if err != nil {
		return fmt.Sprintf("format %q failed to evaluate: %v", v.name, err)
	}

	ok, isBool := out.Value().(bool)
	if !isBool {
		return fmt.Sprintf("format %q expression did not produce a boolean", v.name)
	}
	if !ok {
		return fmt.Sprintf("[%s] is not a valid %s", subject, v.name)
	}
	return ""
}
