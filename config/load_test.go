package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/saju-engine/config"
	"github.com/warp/saju-engine/saju"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "saju.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 0, cfg.Engine.EvaluationYear)
	assert.Equal(t, "round_max", cfg.Engine.Apportionment)
	assert.Empty(t, cfg.Roster.Seed)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 7070
database:
  path: ":memory:"
log:
  level: debug
  format: json
engine:
  evaluation_year: 2026
  apportionment: largest_remainder
roster:
  seed: ./celebs.yaml
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2026, cfg.Engine.EvaluationYear)
	assert.Equal(t, "./celebs.yaml", cfg.Roster.Seed)

	opts := cfg.Engine.EngineOptions()
	engine, err := saju.NewEngine(opts)
	require.NoError(t, err)
	assert.Equal(t, saju.MethodLargestRemainder, engine.Method())
	assert.Equal(t, 2026, engine.EvaluationYear())
}

func TestLoad_EnvironmentTakesPrecedence(t *testing.T) {
	// GIVEN: A file with one port and an env var with another
	path := writeConfig(t, "server:\n  port: 7070\nlog:\n  level: warn\n")
	t.Setenv("SAJU_SERVER_PORT", "9090")
	t.Setenv("SAJU_ENGINE_EVALUATION_YEAR", "2030")

	// WHEN: Loading
	cfg, err := config.Load(path)
	require.NoError(t, err)

	// THEN: The env wins where set and the file fills the rest
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2030, cfg.Engine.EvaluationYear)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port too large", map[string]string{"SAJU_SERVER_PORT": "70000"}},
		{"unknown log level", map[string]string{"SAJU_LOG_LEVEL": "verbose"}},
		{"unknown format", map[string]string{"SAJU_LOG_FORMAT": "xml"}},
		{"negative year", map[string]string{"SAJU_ENGINE_EVALUATION_YEAR": "-1"}},
		{"unknown allocator", map[string]string{"SAJU_ENGINE_APPORTIONMENT": "dhondt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
