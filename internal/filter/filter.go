// Package filter evaluates CEL expressions against study sessions, e.g.
//
//	priority == "High" && !completed
//	subject.startsWith("Calc") && date >= "2025-03-01"
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/abhisek/studyplan/internal/sessions"
)

var ErrNotBoolean = errors.New("filter must evaluate to a boolean")

// Filter is a compiled session predicate.
type Filter struct {
	expr string
	prg  cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("subject", cel.StringType),
		cel.Variable("date", cel.StringType),
		cel.Variable("weekday", cel.StringType),
		cel.Variable("start", cel.StringType),
		cel.Variable("end", cel.StringType),
		cel.Variable("priority", cel.StringType),
		cel.Variable("status", cel.StringType),
		cel.Variable("duration", cel.IntType),
		cel.Variable("completed", cel.BoolType),
		cel.CrossTypeNumericComparisons(true),
	)
}

// Compile parses and type-checks expr. An empty expression matches everything.
func Compile(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &Filter{}, nil
	}

	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("build filter env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w, got %s", ErrNotBoolean, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build filter program: %w", err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match reports whether s satisfies the filter.
func (f *Filter) Match(s sessions.Session) (bool, error) {
	if f.prg == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(map[string]any{
		"subject":   s.Subject,
		"date":      s.DateKey(),
		"weekday":   s.Date.Weekday().String(),
		"start":     s.Start,
		"end":       s.End,
		"priority":  string(s.Priority),
		"status":    string(s.Status),
		"duration":  int64(s.Duration),
		"completed": s.Completed(),
	})
	if err != nil {
		return false, fmt.Errorf("evaluate filter: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, ErrNotBoolean
	}
	return b, nil
}

// Apply returns the sessions matching f, in order.
func (f *Filter) Apply(all []sessions.Session) ([]sessions.Session, error) {
	var out []sessions.Session
	for _, s := range all {
		ok, err := f.Match(s)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}
