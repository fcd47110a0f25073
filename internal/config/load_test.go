package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AprilNEA/varsubst/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Render.Escape)
	assert.False(t, cfg.Render.ShortSyntax)
	assert.False(t, cfg.Render.NoEnv)
	assert.False(t, cfg.Render.FailOnUndefined)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
render:
  short-syntax: true
  fail-on-undefined: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Render.ShortSyntax)
	assert.True(t, cfg.Render.FailOnUndefined)
	// 文件未提及的 key 保持默认值
	assert.True(t, cfg.Render.Escape)
}

func TestLoad_FirstHitWins(t *testing.T) {
	first := writeConfig(t, "render:\n  short-syntax: true\n")
	second := writeConfig(t, "render:\n  short-syntax: false\n  no-env: true\n")

	cfg, err := config.Load(first, second)
	require.NoError(t, err)

	assert.True(t, cfg.Render.ShortSyntax)
	assert.False(t, cfg.Render.NoEnv)
}

func TestLoad_FileIsTemplateExpanded(t *testing.T) {
	t.Setenv("VARSUBST_TEST_FLAG", "true")

	path := writeConfig(t, "render:\n  short-syntax: ${VARSUBST_TEST_FLAG}\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Render.ShortSyntax)
}

func TestLoad_BadTemplateInFile(t *testing.T) {
	path := writeConfig(t, "render:\n  short-syntax: ${}\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expand template")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("VARSUBST_RENDER_SHORT_SYNTAX", "true")
	t.Setenv("VARSUBST_RENDER_ESCAPE", "false")

	path := writeConfig(t, "render:\n  short-syntax: false\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Render.ShortSyntax)
	assert.False(t, cfg.Render.Escape)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "render: [\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
