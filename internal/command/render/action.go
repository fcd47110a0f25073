package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/AprilNEA/varsubst/internal/config"
	"github.com/AprilNEA/varsubst/pkg/varsubst"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg.Render)

	input, err := readInput(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	vars, err := buildVars(cmd.StringSlice("var"), cfg.Render.NoEnv)
	if err != nil {
		return err
	}

	result, err := varsubst.SubstituteWith(input, vars, varsubst.Options{
		Escape:      cfg.Render.Escape,
		ShortSyntax: cfg.Render.ShortSyntax,
	})
	if err != nil {
		return fmt.Errorf("substitution failed: %w", err)
	}

	// 引擎把未定义变量原样透传；是否允许残留是这里的策略
	if cfg.Render.FailOnUndefined && strings.Contains(result, "${") {
		return errors.New("undefined variables found in output")
	}

	if err := writeOutput(cmd.String("output"), result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// applyFlags 把用户显式设置的 flags 覆盖到配置上（最高优先级）。
func applyFlags(cmd *cli.Command, rc *config.RenderConfig) {
	if cmd.IsSet("escape") {
		rc.Escape = cmd.Bool("escape")
	}
	if cmd.IsSet("short-syntax") {
		rc.ShortSyntax = cmd.Bool("short-syntax")
	}
	if cmd.IsSet("no-env") {
		rc.NoEnv = cmd.Bool("no-env")
	}
	if cmd.IsSet("fail-on-undefined") {
		rc.FailOnUndefined = cmd.Bool("fail-on-undefined")
	}
}

// buildVars 构建查找表：进程环境变量（除非 noEnv）叠加 --var 定义，
// 显式定义覆盖环境变量。
func buildVars(defs []string, noEnv bool) (map[string]string, error) {
	vars := make(map[string]string)
	if !noEnv {
		vars = varsubst.Environ()
	}

	for _, def := range defs {
		key, value, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("invalid variable %q (expected KEY=VALUE)", def)
		}
		vars[key] = value
	}

	return vars, nil
}

func readInput(path string) (string, error) {
	if path == "" {
		content, err := io.ReadAll(os.Stdin)

		return string(content), err
	}

	content, err := os.ReadFile(path)

	return string(content), err
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)

		return err
	}

	return os.WriteFile(path, []byte(content), 0o644) //nolint:gosec // rendered output is not a secret
}
