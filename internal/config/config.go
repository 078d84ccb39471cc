// Package config provides configuration management for the work order
// engine.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (ADR-0018: standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
//
// Import Path (ADR-0016): workorder.io/engine/internal/config
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Log          LogConfig          `mapstructure:"log"`
	River        RiverConfig        `mapstructure:"river"`
	Worker       WorkerConfig       `mapstructure:"worker"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Lease        LeaseConfig        `mapstructure:"lease"`
	Retry        RetryConfig        `mapstructure:"retry"`
	Idempotency  IdempotencyConfig  `mapstructure:"idempotency"`
	Partials     PartialsConfig     `mapstructure:"partials"`
	StateMachine StateMachineConfig `mapstructure:"state_machine"`
	Maintenance  MaintenanceConfig  `mapstructure:"maintenance"`
	VMProvision  VMProvisionConfig  `mapstructure:"vm_provision"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORS (gin-contrib/cors).
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	AllowCredentials      bool     `mapstructure:"allow_credentials"`
	UnsafeAllowAllOrigins bool     `mapstructure:"unsafe_allow_all_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// ADR-0012: Shared connection pool for Ent + River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool configuration (shared by Ent and River)
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	// Optional separate host/port for the River worker pool (e.g. PgBouncer).
	WorkerHost string `mapstructure:"worker_host"`
	WorkerPort int    `mapstructure:"worker_port"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings (internal/maintenance's
// periodic jobs run on this client).
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// WorkerConfig contains the ants pool sizing for detached
// OrderTypeContract work (ADR-0031 "no naked goroutines").
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
	TypePoolSize    int `mapstructure:"type_pool_size"`
}

// RedisConfig is only consulted when lease.backend == "fast".
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LeaseConfig controls internal/leaseservice and internal/lease.
type LeaseConfig struct {
	TTLSeconds            int    `mapstructure:"ttl_seconds"`
	HeartbeatEverySeconds int    `mapstructure:"heartbeat_every_seconds"`
	Backend               string `mapstructure:"backend"` // "durable" or "fast"
	MaxLeasesPerAgent     int    `mapstructure:"max_leases_per_agent"`
	MaxLeasesPerType      int    `mapstructure:"max_leases_per_type"`
}

// RetryConfig controls item retry/backoff.
type RetryConfig struct {
	DefaultMaxAttempts int `mapstructure:"default_max_attempts"`
	BackoffSeconds     int `mapstructure:"backoff_seconds"`
	JitterSeconds      int `mapstructure:"jitter_seconds"`
}

// IdempotencyConfig controls internal/idempotency.
type IdempotencyConfig struct {
	EnforceOn  []string `mapstructure:"enforce_on"`
	HMACSecret string   `mapstructure:"hmac_secret"`
}

// PartialsConfig controls internal/executor's SubmitPart limits.
type PartialsConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	MaxPartsPerItem int  `mapstructure:"max_parts_per_item"`
	MaxPayloadBytes int  `mapstructure:"max_payload_bytes"`
}

// StateMachineConfig optionally overrides the default transition
// tables. A nil entry
// for either table falls back to statemachine.DefaultOrderTransitions
// / DefaultItemTransitions.
type StateMachineConfig struct {
	OrderTransitions map[string][]string `mapstructure:"order_transitions"`
	ItemTransitions  map[string][]string `mapstructure:"item_transitions"`
}

// MaintenanceConfig controls internal/maintenance's periodic jobs.
type MaintenanceConfig struct {
	DeadLetterAfterHours     int `mapstructure:"dead_letter_after_hours"`
	StaleOrderThresholdHours int `mapstructure:"stale_order_threshold_hours"`
}

// VMProvisionConfig configures the internal/ordertypes/vmprovision demo
// plugin's underlying KubeVirt provider.
type VMProvisionConfig struct {
	OperationTimeout time.Duration `mapstructure:"operation_timeout"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
// ADR-0018: Standard environment variables without prefix (DATABASE_URL, SERVER_PORT, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/workorder")

	// Environment variable override (ADR-0018)
	// No prefix: uses standard names like DATABASE_URL, SERVER_PORT, LOG_LEVEL
	// Maps nested config: database.max_conns → DATABASE_MAX_CONNS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// ADR-0025: Auto-generate secrets on first boot if missing.
	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if len(c.Idempotency.HMACSecret) < 16 {
		return fmt.Errorf("idempotency.hmac_secret must be at least 16 characters")
	}
	switch c.Lease.Backend {
	case "durable", "fast":
	default:
		return fmt.Errorf("lease.backend must be %q or %q, got %q", "durable", "fast", c.Lease.Backend)
	}
	if c.Lease.Backend == "fast" && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr must be set when lease.backend is %q", "fast")
	}
	return nil
}

// ensureSecrets auto-generates a missing idempotency HMAC secret per
// ADR-0025 ("auto-generate secrets on first boot").
func (c *Config) ensureSecrets() error {
	if c.Idempotency.HMACSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate idempotency hmac secret: %w", err)
		}
		c.Idempotency.HMACSecret = secret
		logBootstrapWarn(
			"auto-generated idempotency.hmac_secret (ADR-0025); set IDEMPOTENCY_HMAC_SECRET env var for persistence",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.allow_credentials", true)
	v.SetDefault("server.unsafe_allow_all_origins", false)

	// Database (ADR-0012 shared pool)
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "workorder")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "workorder")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker pool (ADR-0031)
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.type_pool_size", 50)

	// Redis (fast lease backend only)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)

	// Lease
	v.SetDefault("lease.ttl_seconds", 60)
	v.SetDefault("lease.heartbeat_every_seconds", 20)
	v.SetDefault("lease.backend", "durable")
	v.SetDefault("lease.max_leases_per_agent", 10)
	v.SetDefault("lease.max_leases_per_type", 0) // 0 = unlimited

	// Retry
	v.SetDefault("retry.default_max_attempts", 3)
	v.SetDefault("retry.backoff_seconds", 30)
	v.SetDefault("retry.jitter_seconds", 10)

	// Idempotency
	v.SetDefault("idempotency.enforce_on", []string{"propose", "submit", "submit-part", "finalize", "approve", "reject"})

	// Partials
	v.SetDefault("partials.enabled", true)
	v.SetDefault("partials.max_parts_per_item", 50)
	v.SetDefault("partials.max_payload_bytes", 1<<20) // 1MiB

	// Maintenance
	v.SetDefault("maintenance.dead_letter_after_hours", 72)
	v.SetDefault("maintenance.stale_order_threshold_hours", 24)

	// VM provisioning demo plugin
	v.SetDefault("vm_provision.operation_timeout", "2m")
}
