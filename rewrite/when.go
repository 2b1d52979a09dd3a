package rewrite

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// whenEnv is the environment a when guard evaluates in. The content
// variable holds the full input; substring tests use expr's infix
// contains operator (`content contains "x"`), which keeps guards
// literal-only, matching the no-regex policy of the rules themselves.
func whenEnv(content string) map[string]any {
	return map[string]any{
		"content": content,
		"getenv": func(k string) string {
			return os.Getenv(k)
		},
	}
}

func whenOpts() []expr.Option {
	return []expr.Option{
		expr.Env(whenEnv("")),
		expr.AsBool(),
	}
}

func compileWhen(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, whenOpts()...)
	if err != nil {
		return nil, fmt.Errorf("invalid when guard: %w", err)
	}
	return prg, nil
}

func evalWhen(src, content string) (bool, error) {
	prg, err := compileWhen(src)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, whenEnv(content))
	if err != nil {
		return false, fmt.Errorf("when guard: %w", err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("when guard returned %T, want bool", res)
	}
	return b, nil
}
