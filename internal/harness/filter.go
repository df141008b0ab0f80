package harness

import (
	"fmt"
	"path/filepath"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
)

// CaseFilter selects which discovered scripts take part in a run. Each
// filter is a CEL expression over the case's path attributes; a case is
// selected only if every expression evaluates to true.
type CaseFilter struct {
	programs []cel.Program
}

// NewCaseFilter compiles the given CEL expressions. Expressions see three
// string variables: name (base filename), path (full path as discovered)
// and dir (containing directory).
func NewCaseFilter(exprs []string) (*CaseFilter, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("dir", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %v", err)
	}

	programs := make([]cel.Program, 0, len(exprs))
	for _, expr := range exprs {
		ast, issues := env.Compile(expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("filter compilation error in %q: %v", expr, issues.Err())
		}
		program, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("filter program creation error in %q: %v", expr, err)
		}
		programs = append(programs, program)
	}
	return &CaseFilter{programs: programs}, nil
}

// Matches evaluates every filter expression against the script path.
func (f *CaseFilter) Matches(scriptPath string) (bool, error) {
	if f == nil {
		return true, nil
	}
	evalCtx := map[string]interface{}{
		"name": filepath.Base(scriptPath),
		"path": scriptPath,
		"dir":  filepath.Dir(scriptPath),
	}
	for _, program := range f.programs {
		result, _, err := program.Eval(evalCtx)
		if err != nil {
			return false, fmt.Errorf("filter evaluation error: %v", err)
		}
		if result.Type() != types.BoolType {
			return false, fmt.Errorf("filter expression must return boolean, got %v", result.Type())
		}
		if !result.Value().(bool) {
			return false, nil
		}
	}
	return true, nil
}
