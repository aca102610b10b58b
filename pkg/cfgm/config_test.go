package cfgm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testShell struct {
	Unix    string `json:"unix"`
	Windows string `json:"windows"`
}

type testConfig struct {
	Name    string            `json:"name"`
	Debug   bool              `json:"debug"`
	Timeout time.Duration     `json:"timeout"`
	Shell   testShell         `json:"shell"`
	Env     map[string]string `json:"env"`
	Ignored string            `json:"-"`
}

func defaultTestConfig() testConfig {
	return testConfig{
		Name:    "default",
		Timeout: 5 * time.Second,
		Shell:   testShell{Unix: "/bin/sh", Windows: "cmd.exe"},
		Env:     map[string]string{"A": "1"},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(defaultTestConfig(), WithConfigPaths(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NoError(t, err)
	assert.Equal(t, defaultTestConfig(), *cfg)
}

func TestLoad_YAMLFileMergesOverDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
name: from-file
timeout: 1m
shell:
  unix: /bin/bash
env:
  B: "2"
`)

	cfg, err := Load(defaultTestConfig(), WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, "/bin/bash", cfg.Shell.Unix)
	assert.Equal(t, "cmd.exe", cfg.Shell.Windows, "untouched nested keys keep defaults")
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, cfg.Env)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"name": "json", "debug": true}`)

	cfg, err := Load(defaultTestConfig(), WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Name)
	assert.True(t, cfg.Debug)
}

func TestLoad_FirstExistingFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "second.yaml"), []byte("name: second"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "third.yaml"), []byte("name: third"), 0o600))

	cfg, err := Load(defaultTestConfig(),
		WithBaseDir(dir),
		WithConfigPaths("first.yaml", "second.yaml", "third.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Name)
}

func TestLoad_TemplateExpansion(t *testing.T) {
	t.Setenv("CFGM_TEST_NAME", "expanded")
	path := writeFile(t, "config.yaml", `
name: "${CFGM_TEST_NAME}"
shell:
  unix: "${CFGM_TEST_MISSING:/bin/zsh}"
`)

	cfg, err := Load(defaultTestConfig(), WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "expanded", cfg.Name)
	assert.Equal(t, "/bin/zsh", cfg.Shell.Unix)

	cfg, err = Load(defaultTestConfig(), WithConfigPaths(path), WithoutTemplateExpansion())
	require.NoError(t, err)
	assert.Equal(t, "${CFGM_TEST_NAME}", cfg.Name)
}

func TestLoad_RawKeysSkipExpansion(t *testing.T) {
	t.Setenv("CFGM_TEST_NAME", "expanded")
	path := writeFile(t, "config.yaml", `
name: "${CFGM_TEST_NAME}"
shell:
  unix: "${CFGM_TEST_NAME}"
  windows: "${CFGM_TEST_NAME}"
env:
  PORT: "$CFGM_TEST_NAME"
  MODE: "${CFGM_TEST_MISSING:dev}"
`)

	cfg, err := Load(defaultTestConfig(), WithConfigPaths(path), WithRawKeys("env", "shell.windows"))
	require.NoError(t, err)
	assert.Equal(t, "expanded", cfg.Name)
	assert.Equal(t, "expanded", cfg.Shell.Unix)
	assert.Equal(t, "${CFGM_TEST_NAME}", cfg.Shell.Windows)
	assert.Equal(t, map[string]string{"A": "1", "PORT": "$CFGM_TEST_NAME", "MODE": "${CFGM_TEST_MISSING:dev}"}, cfg.Env)
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CFGMTEST_NAME", "from-env")
	t.Setenv("CFGMTEST_DEBUG", "true")
	t.Setenv("CFGMTEST_SHELL_WINDOWS", "pwsh.exe")
	t.Setenv("CFGMTEST_ENV", "ignored")

	cfg, err := Load(defaultTestConfig(),
		WithConfigPaths(filepath.Join(t.TempDir(), "missing.yaml")),
		WithEnvPrefix("CFGMTEST_"),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "pwsh.exe", cfg.Shell.Windows)
	assert.Equal(t, map[string]string{"A": "1"}, cfg.Env)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "- just\n- a list\n")

	_, err := Load(defaultTestConfig(), WithConfigPaths(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config root must be object")
}

func TestCollectScalarKeys(t *testing.T) {
	keys := collectScalarKeys(reflect.TypeFor[testConfig](), "")
	assert.Equal(t, []string{"name", "debug", "timeout", "shell.unix", "shell.windows"}, keys)
}

func TestEnvKeyFor(t *testing.T) {
	assert.Equal(t, "CROSSENV_SHELL_UNIX", envKeyFor("CROSSENV_", "shell.unix"))
	assert.Equal(t, "APP_REV_AUTH_USER", envKeyFor("APP_", "rev-auth-user"))
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, []string{"config.yaml", "config/config.yaml"}, DefaultPaths())

	paths := DefaultPaths("crossenv")
	assert.Equal(t, ".crossenv.yaml", paths[0])
	assert.Contains(t, paths, "/etc/crossenv/config.yaml")
	assert.Equal(t, "config/config.yaml", paths[len(paths)-1])
}
