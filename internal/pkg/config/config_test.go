package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "settlement-service", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, DefaultTokenMint, cfg.Ledger.TokenMint)
	assert.Equal(t, DefaultTreasury, cfg.Ledger.Treasury)
	assert.Equal(t, uint64(1), cfg.Ledger.FeeNumerator)
	assert.Equal(t, uint64(100), cfg.Ledger.FeeDenominator)
	assert.Equal(t, uint8(6), cfg.Ledger.TokenDecimals)
	assert.Equal(t, 2*time.Second, cfg.Indexer.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Indexer.Timeout)
	assert.Equal(t, 1000, cfg.Indexer.PageLimit)
	assert.Equal(t, 10, cfg.Indexer.MaxPages)
	assert.True(t, cfg.Indexer.ResumeOnBoot)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("INDEXER_TIMEOUT", "90s")
	t.Setenv("INDEXER_MAX_PAGES", "3")
	t.Setenv("LEDGER_RPC_URL", "http://localhost:8899")
	t.Setenv("OPERATOR_ENCRYPTED_KEY", "blob")
	t.Setenv("OPERATOR_KEY_SECRET", "secret")

	cfg := InitConfig("")

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Indexer.Timeout)
	assert.Equal(t, 3, cfg.Indexer.MaxPages)
	assert.Equal(t, "http://localhost:8899", cfg.Ledger.RPCURL)
	assert.Equal(t, "blob", cfg.Custody.EncryptedKey)
	assert.Equal(t, "secret", cfg.Custody.Secret)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SETTLEMENT_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("SETTLEMENT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SETTLEMENT_TEST_MISSING", "fallback"))
}
