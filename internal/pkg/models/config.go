package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Ledger   LedgerConfig
	Custody  CustodyConfig
	Indexer  IndexerConfig
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

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// LedgerConfig contains the ledger RPC endpoint and settlement parameters
type LedgerConfig struct {
	RPCURL         string
	RequestTimeout time.Duration
	Commitment     string
	TokenMint      string
	TokenDecimals  uint8
	Treasury       string
	FeeNumerator   uint64
	FeeDenominator uint64
	ConfirmTimeout time.Duration
	ConfirmPoll    time.Duration
}

// CustodyConfig holds the two halves of the operator key. They are expected
// to come from different secret stores.
type CustodyConfig struct {
	EncryptedKey string
	Secret       string
}

// IndexerConfig contains reference indexer tuning
type IndexerConfig struct {
	PollInterval time.Duration
	Timeout      time.Duration
	PageLimit    int
	MaxPages     int
	LeaseGrace   time.Duration
	ResumeOnBoot bool
}
