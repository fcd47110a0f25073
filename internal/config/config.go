// Package config 提供 varsubst 命令行工具自身的配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 按 SearchPaths() 顺序查找，命中首个文件即停止
//  3. 环境变量 - VARSUBST_ 前缀（见 envBindings）
//  4. CLI flags - 在 render action 中按 cmd.IsSet 覆盖
//
// 配置文件在解析前会先经过本项目自己的引擎做环境变量展开，
// 因此配置里可以写 ${HOME} 之类的引用。
package config

// Config 应用配置。
type Config struct {
	Render RenderConfig `json:"render" desc:"渲染配置"`
}

// RenderConfig 渲染行为配置。
type RenderConfig struct {
	Escape          bool `json:"escape" desc:"识别反斜杠转义序列"`
	ShortSyntax     bool `json:"short-syntax" desc:"识别短格式引用 $NAME"`
	NoEnv           bool `json:"no-env" desc:"不把进程环境变量并入查找表"`
	FailOnUndefined bool `json:"fail-on-undefined" desc:"输出残留 ${ 时报错退出"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Escape:          true,
			ShortSyntax:     false,
			NoEnv:           false,
			FailOnUndefined: false,
		},
	}
}
