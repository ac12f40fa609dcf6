package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/spf13/viper"
)

const (
	// DefaultTokenMint is the USDC mint on mainnet
	DefaultTokenMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	// DefaultTreasury receives the settlement fee
	DefaultTreasury = "7SMfVRrJw75vPzHCQ3ckUCT9igMRre8VHmodTbaVv4R"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "settlement-service")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_AGE", 7)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_COMPRESS", true)

	v.SetDefault("LEDGER_RPC_URL", "https://api.mainnet-beta.solana.com")
	v.SetDefault("LEDGER_REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("LEDGER_COMMITMENT", "confirmed")
	v.SetDefault("LEDGER_TOKEN_MINT", DefaultTokenMint)
	v.SetDefault("LEDGER_TOKEN_DECIMALS", 6)
	v.SetDefault("LEDGER_TREASURY", DefaultTreasury)
	v.SetDefault("LEDGER_FEE_NUMERATOR", 1)
	v.SetDefault("LEDGER_FEE_DENOMINATOR", 100)
	v.SetDefault("LEDGER_CONFIRM_TIMEOUT", 60*time.Second)
	v.SetDefault("LEDGER_CONFIRM_POLL", 2*time.Second)

	v.SetDefault("INDEXER_POLL_INTERVAL", 2*time.Second)
	v.SetDefault("INDEXER_TIMEOUT", 60*time.Second)
	v.SetDefault("INDEXER_PAGE_LIMIT", 1000)
	v.SetDefault("INDEXER_MAX_PAGES", 10)
	v.SetDefault("INDEXER_LEASE_GRACE", 30*time.Second)
	v.SetDefault("INDEXER_RESUME_ON_BOOT", true)

	return v
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.MaxSize = v.GetInt64("LOG_MAX_SIZE")
	configs.Logger.MaxAge = v.GetInt("LOG_MAX_AGE")
	configs.Logger.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	configs.Logger.Compress = v.GetBool("LOG_COMPRESS")

	// Ledger config
	configs.Ledger.RPCURL = v.GetString("LEDGER_RPC_URL")
	configs.Ledger.RequestTimeout = v.GetDuration("LEDGER_REQUEST_TIMEOUT")
	configs.Ledger.Commitment = v.GetString("LEDGER_COMMITMENT")
	configs.Ledger.TokenMint = v.GetString("LEDGER_TOKEN_MINT")
	configs.Ledger.TokenDecimals = uint8(v.GetUint("LEDGER_TOKEN_DECIMALS"))
	configs.Ledger.Treasury = v.GetString("LEDGER_TREASURY")
	configs.Ledger.FeeNumerator = v.GetUint64("LEDGER_FEE_NUMERATOR")
	configs.Ledger.FeeDenominator = v.GetUint64("LEDGER_FEE_DENOMINATOR")
	configs.Ledger.ConfirmTimeout = v.GetDuration("LEDGER_CONFIRM_TIMEOUT")
	configs.Ledger.ConfirmPoll = v.GetDuration("LEDGER_CONFIRM_POLL")

	// Custody config, the two halves are read from separate variables
	configs.Custody.EncryptedKey = v.GetString("OPERATOR_ENCRYPTED_KEY")
	configs.Custody.Secret = v.GetString("OPERATOR_KEY_SECRET")

	// Indexer config
	configs.Indexer.PollInterval = v.GetDuration("INDEXER_POLL_INTERVAL")
	configs.Indexer.Timeout = v.GetDuration("INDEXER_TIMEOUT")
	configs.Indexer.PageLimit = v.GetInt("INDEXER_PAGE_LIMIT")
	configs.Indexer.MaxPages = v.GetInt("INDEXER_MAX_PAGES")
	configs.Indexer.LeaseGrace = v.GetDuration("INDEXER_LEASE_GRACE")
	configs.Indexer.ResumeOnBoot = v.GetBool("INDEXER_RESUME_ON_BOOT")

	return configs
}

// GetEnv returns the environment value for key or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
