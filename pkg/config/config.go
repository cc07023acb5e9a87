package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMintAddrRequired = errors.New("MINT_ADDR env required")

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Port         int    `mapstructure:"port"`
	RPCURL       string `mapstructure:"rpc_url"`
	MintAddr     string `mapstructure:"mint_addr"`
	MintAuthFile string `mapstructure:"mint_auth_file"`
	MintDecimals uint8  `mapstructure:"mint_decimals"`
	MinClaim     int64  `mapstructure:"min_claim"`

	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	CoordURL     string `mapstructure:"coord"`
	DevNoVerify  bool   `mapstructure:"dev_no_verify"`

	FacilitatorURL string `mapstructure:"x402_facilitator"`
	Receiver       string `mapstructure:"x402_receiver"`
	Price          string `mapstructure:"x402_price"`
	Currency       string `mapstructure:"x402_currency"`

	LogLevel     string        `mapstructure:"log_level"`
	ShutdownWait time.Duration `mapstructure:"shutdown_wait"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`

	ClaimMaxAge         time.Duration `mapstructure:"claim_max_age"`
	RedisURL            string        `mapstructure:"redis_url"`
	LockTTL             time.Duration `mapstructure:"lock_ttl"`
	IntentDB            string        `mapstructure:"intent_db"`
	ReconcileStaleAfter time.Duration `mapstructure:"reconcile_stale_after"`
	RateLimitRPS        float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst      int           `mapstructure:"rate_limit_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8788)
	v.SetDefault("rpc_url", "https://api.devnet.solana.com")
	v.SetDefault("mint_addr", "")
	v.SetDefault("mint_auth_file", "./devnet-mint.json")
	v.SetDefault("mint_decimals", 9)
	v.SetDefault("min_claim", 100)
	v.SetDefault("confirm_timeout", "60s")
	v.SetDefault("coord", "http://127.0.0.1:8787")
	v.SetDefault("dev_no_verify", false)

	v.SetDefault("x402_facilitator", "")
	v.SetDefault("x402_receiver", "")
	v.SetDefault("x402_price", "0.01")
	v.SetDefault("x402_currency", "USD")

	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_wait", "5s")
	v.SetDefault("http_timeout", "10s")

	v.SetDefault("claim_max_age", "5m")
	v.SetDefault("redis_url", "")
	v.SetDefault("lock_ttl", "5m")
	v.SetDefault("intent_db", "./claims.db")
	v.SetDefault("reconcile_stale_after", "10m")
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)
}

// LoadDotEnv loads KEY=VALUE files into the process environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Parse reads the environment. Empty variables fall back to defaults.
func Parse() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.CoordURL = strings.TrimRight(cfg.CoordURL, "/")
	cfg.FacilitatorURL = strings.TrimRight(cfg.FacilitatorURL, "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MintAddr == "" {
		return ErrMintAddrRequired
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MinClaim < 0 {
		return fmt.Errorf("MIN_CLAIM must not be negative: %d", c.MinClaim)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive: %s", c.HTTPTimeout)
	}
	if c.ClaimMaxAge < 0 || c.LockTTL < 0 || c.ShutdownWait < 0 {
		return errors.New("durations must not be negative")
	}
	if c.ConfirmTimeout <= 0 {
		return fmt.Errorf("CONFIRM_TIMEOUT must be positive: %s", c.ConfirmTimeout)
	}
	if c.LockTTL <= c.ClaimBudget() {
		return fmt.Errorf("LOCK_TTL %s must exceed the longest claim %s", c.LockTTL, c.ClaimBudget())
	}
	return nil
}

// ClaimBudget is the longest a claim can hold its wallet lock: two confirmations
// (account creation, mint) and two coordinator calls (read, settle).
func (c Config) ClaimBudget() time.Duration {
	return 2*c.ConfirmTimeout + 2*c.HTTPTimeout
}

func (c Config) ListenAddr() string { return fmt.Sprintf(":%d", c.Port) }
