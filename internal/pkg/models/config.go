package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Simulation SimulationConfig
	Receipt    ReceiptConfig
	RateLimit  RateLimitConfig
	Admin      AdminConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AdminConfig protects the back-office routes
type AdminConfig struct {
	APIKey string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SimulationConfig holds the timings of the simulated dispatch.
type SimulationConfig struct {
	AssignmentDelay   time.Duration `mapstructure:"assignment_delay"`
	ProgressInterval  time.Duration `mapstructure:"progress_interval"`
	ProgressStep      int           `mapstructure:"progress_step"`
	ChatReplyDelay    time.Duration `mapstructure:"chat_reply_delay"`
	ChatRatePerSecond float64       `mapstructure:"chat_rate_per_second"`
	ChatBurst         int           `mapstructure:"chat_burst"`
	MinEstimateMin    int           `mapstructure:"min_estimate_minutes"`
	MaxEstimateMin    int           `mapstructure:"max_estimate_minutes"`
}

// ReceiptConfig holds the bounds of the simulated receipt amount
type ReceiptConfig struct {
	MinAmount float64
	MaxAmount float64
	Currency  string
}

// RateLimitConfig contains the per-client request limit
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	LogsEndpoint string
	LogsAPIKey   string
	ForwardLogs  bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
