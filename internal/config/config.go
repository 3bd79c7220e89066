package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/spf13/viper"
)

// Config is the surface handed through from the outer layers: where the
// GnuCash file lives and which parent accounts the three provisioned roles
// hang under (empty means the root account).
type Config struct {
	AppPort string `mapstructure:"app_port"`

	LedgerFile    string `mapstructure:"ledger_file"`
	BaseDK        string `mapstructure:"base_dk"`
	BaseAusgleich string `mapstructure:"base_ausgleich"`
	BaseZinsen    string `mapstructure:"base_zinsen"`

	RedisAddr    string `mapstructure:"redis_addr"`
	RedisDB      int    `mapstructure:"redis_db"`
	IdempTTLSecs int    `mapstructure:"idempotency_ttl_seconds"`

	SeedSample bool `mapstructure:"seed_sample"`
}

// Load reads configuration from the given yaml file (optional; defaults to
// ./config.yaml) with DKCASH_* environment overrides, e.g. DKCASH_LEDGER_FILE.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetDefault("app_port", "8080")
	v.SetDefault("ledger_file", "dkcash_data.gnucash")
	v.SetDefault("idempotency_ttl_seconds", 300)

	v.SetEnvPrefix("DKCASH")
	v.AutomaticEnv()
	// AutomaticEnv only kicks in for known keys
	for _, k := range []string{
		"app_port", "ledger_file", "base_dk", "base_ausgleich", "base_zinsen",
		"redis_addr", "redis_db", "idempotency_ttl_seconds", "seed_sample",
	} {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.LedgerFile == "" {
		return errors.New("missing ledger_file")
	}
	if c.AppPort == "" {
		return errors.New("missing app_port")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid app_port %q: %w", c.AppPort, err)
	}
	return nil
}
