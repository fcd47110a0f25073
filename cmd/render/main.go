package main

import (
	"context"
	"log/slog"
	"os"

	app "github.com/AprilNEA/varsubst/internal/command/render"
)

func main() {
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		slog.Error("渲染失败", "error", err)
		os.Exit(1)
	}
}
