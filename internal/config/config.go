package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Event   EventConfig   `mapstructure:"event" validate:"required"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug log info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// EventConfig describes the event whose responses are being tracked.
type EventConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	// MetricsNamespace prefixes every exported metric name.
	MetricsNamespace string `mapstructure:"metrics_namespace" validate:"omitempty,alphanum"`
}
