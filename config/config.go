package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything resolved at process start. The catalog paths are
// optional; empty values fall back to the embedded default data.
type Config struct {
	ServerPort     string  `mapstructure:"server_port"`
	CatalogPath    string  `mapstructure:"catalog_path"`
	ExamsPath      string  `mapstructure:"exams_path"`
	TessdataPrefix string  `mapstructure:"tessdata_prefix"`
	RedisAddr      string  `mapstructure:"redis_addr"`
	RedisPassword  string  `mapstructure:"redis_password"`
	RedisDB        int     `mapstructure:"redis_db"`
	HomeState      string  `mapstructure:"home_state"`
	MatchThreshold float64 `mapstructure:"match_threshold"`
	LogLevel       string  `mapstructure:"log_level"`
	LogFormat      string  `mapstructure:"log_format"`
	MaxFileSize    int64   `mapstructure:"max_file_size"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	// Best effort; missing .env just means plain environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_port", "8080")
	v.SetDefault("catalog_path", "")
	v.SetDefault("exams_path", "")
	v.SetDefault("tessdata_prefix", "/usr/share/tesseract-ocr/5/tessdata/")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("home_state", "West Bengal")
	v.SetDefault("match_threshold", 0.6)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("max_file_size", int64(10*1024*1024))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
