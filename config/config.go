/*
Package config loads runtime settings for the server and CLI.

SOURCES (lowest to highest precedence):
  1. Built-in defaults
  2. Optional YAML file (--config / Load(path))
  3. SAJU_* environment variables, "." in keys becomes "_"
     (e.g. SAJU_SERVER_PORT, SAJU_ENGINE_EVALUATION_YEAR)

VALIDATION:
  The merged result is checked with go-playground/validator struct tags.
*/
package config

import "github.com/warp/saju-engine/saju"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Roster   RosterConfig   `mapstructure:"roster"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,required"`
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	// Path is a file path or ":memory:".
	Path string `mapstructure:"path" validate:"required"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}

// EngineConfig mirrors saju.EngineConfig.
type EngineConfig struct {
	// EvaluationYear of 0 means the current year.
	EvaluationYear int    `mapstructure:"evaluation_year" validate:"min=0,max=9999"`
	Apportionment  string `mapstructure:"apportionment" validate:"omitempty,oneof=round_max largest_remainder"`
}

// RosterConfig names an optional roster imported at startup.
type RosterConfig struct {
	Seed string `mapstructure:"seed"`
}

// EngineOptions converts to the engine's own config type.
func (c EngineConfig) EngineOptions() saju.EngineConfig {
	return saju.EngineConfig{
		EvaluationYear: c.EvaluationYear,
		Apportionment:  c.Apportionment,
	}
}
