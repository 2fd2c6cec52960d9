package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	RedisURL     string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Ledger tuning
	MaxTransactionAmount decimal.Decimal
	AccountLockTimeout   time.Duration
	ReversalWindow       time.Duration
	BalanceCacheTTL      time.Duration
	DefaultCurrency      string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "wallet-ledger-app")
	viper.SetDefault("MAX_TRANSACTION_AMOUNT", "1000000.00")
	viper.SetDefault("ACCOUNT_LOCK_TIMEOUT", "5s")
	viper.SetDefault("REVERSAL_WINDOW", "24h")
	viper.SetDefault("BALANCE_CACHE_TTL", "300s")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	var err error
	cfg.JWTExpiryDuration, err = time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		cfg.JWTExpiryDuration = time.Hour
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION. Defaulting to %s.\n", cfg.JWTExpiryDuration)
	}

	maxAmountStr := viper.GetString("MAX_TRANSACTION_AMOUNT")
	cfg.MaxTransactionAmount, err = decimal.NewFromString(maxAmountStr)
	if err != nil || !cfg.MaxTransactionAmount.IsPositive() {
		cfg.MaxTransactionAmount = decimal.NewFromInt(1_000_000)
		log.Printf("Warning: Invalid MAX_TRANSACTION_AMOUNT (%q). Defaulting to %s.\n", maxAmountStr, cfg.MaxTransactionAmount)
	}

	cfg.AccountLockTimeout, err = time.ParseDuration(viper.GetString("ACCOUNT_LOCK_TIMEOUT"))
	if err != nil || cfg.AccountLockTimeout <= 0 {
		cfg.AccountLockTimeout = 5 * time.Second
		log.Printf("Warning: Invalid ACCOUNT_LOCK_TIMEOUT. Defaulting to %s.\n", cfg.AccountLockTimeout)
	}

	cfg.ReversalWindow, err = time.ParseDuration(viper.GetString("REVERSAL_WINDOW"))
	if err != nil || cfg.ReversalWindow <= 0 {
		cfg.ReversalWindow = 24 * time.Hour
		log.Printf("Warning: Invalid REVERSAL_WINDOW. Defaulting to %s.\n", cfg.ReversalWindow)
	}

	cfg.BalanceCacheTTL, err = time.ParseDuration(viper.GetString("BALANCE_CACHE_TTL"))
	if err != nil || cfg.BalanceCacheTTL <= 0 {
		cfg.BalanceCacheTTL = 300 * time.Second
		log.Printf("Warning: Invalid BALANCE_CACHE_TTL. Defaulting to %s.\n", cfg.BalanceCacheTTL)
	}

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	if len(cfg.DefaultCurrency) != 3 {
		cfg.DefaultCurrency = "USD"
		log.Println("Warning: DEFAULT_CURRENCY must be a 3-letter code. Defaulting to USD.")
	}

	return cfg, nil
}
