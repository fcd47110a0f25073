package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/AprilNEA/varsubst/internal/command/render"
)

func main() {
	app := &cli.Command{
		Name:    "varsubst",
		Usage:   "单遍扫描的变量替换工具",
		Version: "0.1.0",
		Commands: []*cli.Command{
			render.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
