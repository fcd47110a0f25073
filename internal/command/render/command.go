// Package render 提供模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/AprilNEA/varsubst/internal/command"
)

// Command 渲染命令
var Command = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "读取模板，替换变量引用后写出",
		ArgsUsage: "[file]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出文件（默认写标准输出）",
			},
			&cli.StringSliceFlag{
				Name:    "var",
				Aliases: []string{"v"},
				Usage:   "定义变量（KEY=VALUE，可重复，覆盖环境变量）",
			},
			&cli.BoolFlag{
				Name:  "no-env",
				Value: command.Defaults.Render.NoEnv,
				Usage: "不把进程环境变量并入查找表",
			},
			&cli.BoolFlag{
				Name:    "fail-on-undefined",
				Aliases: []string{"f"},
				Value:   command.Defaults.Render.FailOnUndefined,
				Usage:   "输出中残留 ${ 时报错退出",
			},
			&cli.BoolFlag{
				Name:  "escape",
				Value: command.Defaults.Render.Escape,
				Usage: "识别反斜杠转义序列",
			},
			&cli.BoolFlag{
				Name:  "short-syntax",
				Value: command.Defaults.Render.ShortSyntax,
				Usage: "识别短格式引用 $NAME",
			},
		},
	}
}
