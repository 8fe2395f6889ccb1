package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the API server configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Auth        AuthConfig        `yaml:"auth"`
	Session     SessionConfig     `yaml:"session"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Attestation AttestationConfig `yaml:"attestation"`
	Sweeper     SweeperConfig     `yaml:"sweeper"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Monitoring  MonitoringConfig  `yaml:"monitoring"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"5000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host         string `yaml:"host" default:"localhost" validate:"required"`
	Port         int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User         string `yaml:"user" validate:"required"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database" default:"x4pn" validate:"required"`
	SSLMode      string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" default:"20" validate:"min=1"`
}

// RedisConfig contains the redis connection used for login nonces and node notifications
type RedisConfig struct {
	Addr      string `yaml:"addr" default:"localhost:6379" validate:"required,hostname_port"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db" validate:"min=0"`
	KeyPrefix string `yaml:"key_prefix" default:"x4pn" validate:"required"`
}

// AuthConfig contains wallet login settings
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" validate:"required,min=32"`
	Issuer    string        `yaml:"issuer" default:"x4pn"`
	TokenTTL  time.Duration `yaml:"token_ttl" default:"24h" validate:"gt=0"`
	NonceTTL  time.Duration `yaml:"nonce_ttl" default:"5m" validate:"gt=0"`
}

// SessionConfig contains session lifecycle settings
type SessionConfig struct {
	MaxSettleRetries int           `yaml:"max_settle_retries" default:"3" validate:"min=1,max=10"`
	NotifyTimeout    time.Duration `yaml:"notify_timeout" default:"2s" validate:"gt=0"`
}

// LedgerConfig contains opening balances granted to new users
type LedgerConfig struct {
	InitialUsdcBalance string `yaml:"initial_usdc_balance" default:"100" validate:"numeric"`
	InitialX4pnBalance string `yaml:"initial_x4pn_balance" default:"500" validate:"numeric"`
}

// AttestationConfig contains the domain used to verify signed settlement claims
type AttestationConfig struct {
	// Required rejects settle requests that carry no signature.
	Required          bool   `yaml:"required"`
	VerifyingContract string `yaml:"verifying_contract" validate:"omitempty,eth_addr"`
	ChainID           int64  `yaml:"chain_id" default:"84532" validate:"gt=0"`
}

// SweeperConfig contains stale session sweeper settings
type SweeperConfig struct {
	Enabled    bool          `yaml:"enabled" default:"true"`
	Interval   time.Duration `yaml:"interval" default:"1m" validate:"gt=0"`
	StaleAfter time.Duration `yaml:"stale_after" default:"10m" validate:"gt=0"`
	BatchSize  int           `yaml:"batch_size" default:"100" validate:"min=1"`
}

// RateLimitConfig contains per-client API rate limits
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled" default:"true"`
	Requests int           `yaml:"requests" default:"100" validate:"min=1"`
	Window   time.Duration `yaml:"window" default:"15m" validate:"gt=0"`
	Burst    int           `yaml:"burst" default:"20" validate:"min=1"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool   `yaml:"enabled" default:"true"`
	MetricsPath string `yaml:"metrics_path" default:"/metrics" validate:"startswith=/"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads a YAML config file, expands ${ENV} references, applies defaults and validates.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse is Load for an in-memory document.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return err
	}
	if cfg.Attestation.Required && cfg.Attestation.VerifyingContract == "" {
		return errors.New("attestation.verifying_contract is required when attestation.required is set")
	}
	return nil
}

// InitialBalances returns the opening USDC and X4PN balances for new users.
func (c *LedgerConfig) InitialBalances() (usdc, x4pn decimal.Decimal, err error) {
	usdc, err = decimal.NewFromString(c.InitialUsdcBalance)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid initial_usdc_balance: %w", err)
	}
	x4pn, err = decimal.NewFromString(c.InitialX4pnBalance)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid initial_x4pn_balance: %w", err)
	}
	return usdc, x4pn, nil
}

// PerSecond converts the configured window into a steady-state token bucket rate.
func (c *RateLimitConfig) PerSecond() float64 {
	return float64(c.Requests) / c.Window.Seconds()
}
