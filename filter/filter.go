// Package filter compiles expr expressions for client-side filtering
// of API result rows (spins, log entries) in the CLI. The backend
// filters server-side where it can; this covers everything else.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled filter expression evaluated against one row at
// a time. Rows are the decoded JSON objects the API returned, so field
// names in expressions match the API's JSON keys.
type Filter struct {
	program    *vm.Program
	expression string
}

// helpers are the functions available inside filter expressions.
func helpers() map[string]any {
	return map[string]any{
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"hoursAgo": func(hours int) time.Time {
			return time.Now().Add(-time.Duration(hours) * time.Hour)
		},
		"parseTime": func(value string) time.Time {
			t, _ := time.Parse(time.RFC3339, value)
			return t
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// Compile compiles a filter expression. Row fields are resolved at
// evaluation time, so unknown names are allowed here.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, expression: expression}, nil
}

// Match evaluates the filter against one row.
func (f *Filter) Match(row map[string]any) (bool, error) {
	env := helpers()
	for key, value := range row {
		env[key] = value
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
	}
	return matched, nil
}

// Apply returns the rows matching the filter, preserving order.
func (f *Filter) Apply(rows []map[string]any) ([]map[string]any, error) {
	var out []map[string]any
	for _, row := range rows {
		matched, err := f.Match(row)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, row)
		}
	}
	return out, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expression
}
