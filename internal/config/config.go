package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the server configuration, environment-first (MOVEDAY_* keys)
// with an optional YAML file on top of the defaults.
type Config struct {
	Port         string `mapstructure:"port"`
	DBPath       string `mapstructure:"db_path"`
	SecretKey    string `mapstructure:"secret_key"`
	Timezone     string `mapstructure:"timezone"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

func Load(configPath string) (Config, error) {
	loader := viper.New()
	loader.SetDefault("port", "8080")
	loader.SetDefault("db_path", filepath.Join("data", "moveday.db"))
	loader.SetDefault("secret_key", "change_me_in_production")
	loader.SetDefault("timezone", "Asia/Seoul")
	loader.SetDefault("cookie_secure", false)

	loader.SetEnvPrefix("MOVEDAY")
	for _, key := range []string{"port", "db_path", "secret_key", "timezone", "cookie_secure"} {
		if err := loader.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		loader.SetConfigFile(configPath)
		if err := loader.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg := Config{}
	if err := loader.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
