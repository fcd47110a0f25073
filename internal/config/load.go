package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/AprilNEA/varsubst/pkg/varsubst"
)

// envBindings 环境变量到配置 key 的映射。
// 命名规则：VARSUBST_ 前缀 + 大写的配置 key，"." 与 "-" 转为 "_"。
var envBindings = map[string]string{
	"VARSUBST_RENDER_ESCAPE":            "render.escape",
	"VARSUBST_RENDER_SHORT_SYNTAX":      "render.short-syntax",
	"VARSUBST_RENDER_NO_ENV":            "render.no-env",
	"VARSUBST_RENDER_FAIL_ON_UNDEFINED": "render.fail-on-undefined",
}

// SearchPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.varsubst.yaml - 当前目录应用配置
//  2. ~/.varsubst.yaml - 用户主目录配置
//  3. /etc/varsubst/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
func SearchPaths() []string {
	paths := []string{".varsubst.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".varsubst.yaml"))
	}
	paths = append(paths, "/etc/varsubst/config.yaml", "config.yaml")

	return paths
}

// Load 读取配置并按优先级合并：默认值 → 配置文件 → 环境变量。
//
// CLI flags 的覆盖不在这里做，由 render action 按 cmd.IsSet 处理，
// 保持最高优先级。paths 为空时使用 [SearchPaths]。
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = SearchPaths()
	}

	cfg := DefaultConfig()

	// 2️⃣ 加载配置文件 (按顺序搜索，找到第一个即停止)
	configLoaded := false
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		// 解析前先用自己的引擎做环境变量展开。
		// 转义关闭：配置里的反斜杠（如 Windows 路径）是普通文本。
		expanded, err := varsubst.SubstituteFromEnvWith(string(content), varsubst.Options{})
		if err != nil {
			return nil, fmt.Errorf("expand template in %s: %w", path, err)
		}

		fileMap, err := parseYAMLBytes([]byte(expanded))
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if err := decodeConfigMap(fileMap, &cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}

		slog.Debug("Loaded config from file", "path", path)
		configLoaded = true

		break
	}

	if !configLoaded {
		slog.Debug("No config file found, using defaults")
	}

	// 3️⃣ 环境变量覆盖
	envMap := make(map[string]any)
	for envKey, configPath := range envBindings {
		if val := os.Getenv(envKey); val != "" {
			setByPath(envMap, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}
	if len(envMap) > 0 {
		if err := decodeConfigMap(envMap, &cfg); err != nil {
			return nil, fmt.Errorf("apply env overrides: %w", err)
		}
	}

	return &cfg, nil
}

func parseYAMLBytes(content []byte) (map[string]any, error) {
	var raw any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// decodeConfigMap 把部分配置 map 合并到 out 上，
// 未出现的 key 保持 out 原值，实现逐层覆盖。
func decodeConfigMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
