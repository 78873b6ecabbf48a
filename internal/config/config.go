// Package config resolves server configuration from an optional TOML file
// and environment variables. Environment values win over file values.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the resolved server configuration.
type Config struct {
	HTTPAddr        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	DictionaryPath  string
	CorpusPath      string
	MaxEditDistance int
}

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Server    ServerConfig    `toml:"server"`
	Redis     RedisConfig     `toml:"redis"`
	Corrector CorrectorConfig `toml:"corrector"`
}

type ServerConfig struct {
	Addr *string `toml:"addr"`
}

type RedisConfig struct {
	Addr     *string `toml:"addr"`
	Password *string `toml:"password"`
	DB       *int    `toml:"db"`
}

type CorrectorConfig struct {
	Dictionary      *string `toml:"dictionary"`
	Corpus          *string `toml:"corpus"`
	MaxEditDistance *int    `toml:"max-edit-distance"`
}

// Load resolves the configuration: defaults, then the TOML file at path
// (missing file is not an error), then environment variables.
func Load(path string) (Config, error) {
	cfg := Config{
		HTTPAddr:        ":8080",
		RedisAddr:       "localhost:6379",
		DictionaryPath:  "en.txt",
		MaxEditDistance: 2,
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var fc FileConfig
			if _, err := toml.DecodeFile(path, &fc); err != nil {
				return cfg, fmt.Errorf("failed to decode config: %w", err)
			}
			applyFile(&cfg, fc)
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.RedisAddr = getenv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getenv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.DictionaryPath = getenv("DICTIONARY_PATH", cfg.DictionaryPath)
	cfg.CorpusPath = getenv("CORPUS_PATH", cfg.CorpusPath)
	cfg.MaxEditDistance = getEnvInt("MAX_EDIT_DISTANCE", cfg.MaxEditDistance)
	return cfg, nil
}

func applyFile(cfg *Config, fc FileConfig) {
	if fc.Server.Addr != nil {
		cfg.HTTPAddr = *fc.Server.Addr
	}
	if fc.Redis.Addr != nil {
		cfg.RedisAddr = *fc.Redis.Addr
	}
	if fc.Redis.Password != nil {
		cfg.RedisPassword = *fc.Redis.Password
	}
	if fc.Redis.DB != nil {
		cfg.RedisDB = *fc.Redis.DB
	}
	if fc.Corrector.Dictionary != nil {
		cfg.DictionaryPath = *fc.Corrector.Dictionary
	}
	if fc.Corrector.Corpus != nil {
		cfg.CorpusPath = *fc.Corrector.Corpus
	}
	if fc.Corrector.MaxEditDistance != nil {
		cfg.MaxEditDistance = *fc.Corrector.MaxEditDistance
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
