package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
	Mail      MailConfig      `mapstructure:"mail"      validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LLMConfig contains all settings for the AI feedback and prompt
// generation integration.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName         string `mapstructure:"model_name" validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0,lte=60"`
}

// MailConfig contains all settings for the reminder email transport.
type MailConfig struct {
	SendGridAPIKey string `mapstructure:"sendgrid_api_key" validate:"required"`
	FromAddress    string `mapstructure:"from_address" validate:"required,email"`
	FromName       string `mapstructure:"from_name"`
}

// SchedulerConfig contains all settings for the reminder dispatch loop.
type SchedulerConfig struct {
	// Enabled controls whether the reminder dispatch loop runs at all.
	// Disable it when running multiple API replicas against one database
	// so only a single instance sends reminder emails.
	Enabled bool `mapstructure:"enabled"`
	// IntervalSeconds between dispatch ticks. Values above 60 risk
	// skipping reminder minutes.
	IntervalSeconds int    `mapstructure:"interval_seconds" validate:"required,gt=0,lte=3600"`
	Subject         string `mapstructure:"subject"`
	Message         string `mapstructure:"message"`
}
