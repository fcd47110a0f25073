// Package command 提供命令行功能共享的默认配置。
package command

import "github.com/AprilNEA/varsubst/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
