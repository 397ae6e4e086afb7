package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	errEmptyFactor   = errors.New("factor is empty")
	errInvalidFactor = errors.New("factor must be finite and non-zero")
)

var (
	factorEnvOnce sync.Once
	factorEnv     *cel.Env
	factorEnvErr  error
)

// factorVars are the constants bound in factor expressions.
var factorVars = map[string]any{
	"pi": math.Pi,
	"e":  math.E,
}

func newFactorEnv() (*cel.Env, error) {
	factorEnvOnce.Do(func() {
		factorEnv, factorEnvErr = cel.NewEnv(
			cel.Variable("pi", cel.DoubleType),
			cel.Variable("e", cel.DoubleType),
		)
	})
	return factorEnv, factorEnvErr
}

// evalFactor returns the value of a factor written as a plain number or as
// a CEL expression.
func evalFactor(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, errEmptyFactor
	}
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return v, nil
	}

	env, err := newFactorEnv()
	if err != nil {
		return 0, fmt.Errorf("create expression environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return 0, fmt.Errorf("compile factor %q: %w", expr, iss.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return 0, fmt.Errorf("plan factor %q: %w", expr, err)
	}
	out, _, err := prg.Eval(factorVars)
	if err != nil {
		return 0, fmt.Errorf("evaluate factor %q: %w", expr, err)
	}

	switch v := out.Value().(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("factor %q evaluates to %T, want a number", expr, v)
	}
}

func checkFactor(f float64) error {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", errInvalidFactor, f)
	}
	return nil
}
