// Package filter compiles node filter expressions for scans.
//
// Filters are CEL expressions (https://github.com/google/cel-go) evaluated
// per node against a small set of facts:
//
//	name    string  the node's own name
//	path    string  full ancestry path, "Root/Child/Leaf"
//	scene   string  the scene's name
//	active  bool    the node's active flag
//	depth   int     hops from the node up to its root
//
// An expression must yield a boolean. Examples:
//
//	name == "Player"
//	path.startsWith("UI/") && active
//	depth < 3
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/lanternworks/refscan/scene"
)

// Expr is a compiled node filter. Compile once, match many times; a
// compiled expression is safe for concurrent use.
type Expr struct {
	program cel.Program
	source  string
}

// Compile type-checks the expression against the node facts and prepares
// it for evaluation.
func Compile(src string) (*Expr, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("scene", cel.StringType),
		cel.Variable("active", cel.BoolType),
		cel.Variable("depth", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("filter: create environment: %w", err)
	}

	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", src, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter: expression %q must yield a boolean, got %s", src, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("filter: build program: %w", err)
	}

	return &Expr{program: program, source: src}, nil
}

// String returns the source expression.
func (e *Expr) String() string {
	return e.source
}

// Match evaluates the expression against one node's facts. Unknown ids do
// not match.
func (e *Expr) Match(sc *scene.Scene, id scene.NodeID) (bool, error) {
	n := sc.Node(id)
	if n == nil {
		return false, nil
	}

	out, _, err := e.program.Eval(map[string]any{
		"name":   n.Name,
		"path":   scene.FullPath(sc, id),
		"scene":  sc.Name(),
		"active": n.Active,
		"depth":  scene.Depth(sc, id),
	})
	if err != nil {
		return false, fmt.Errorf("filter: eval %q: %w", e.source, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter: expression %q yielded %T, want bool", e.source, out.Value())
	}
	return matched, nil
}
