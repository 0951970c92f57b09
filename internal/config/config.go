package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Everything is read from the
// environment; no config file is required.
type Config struct {
	Port        int
	Environment string
	DBPath      string
	ImagesDir   string
}

// Load reads configuration from the environment using Viper.
//
// PORT selects the listen port, ENVIRONMENT the deployment mode. The
// database lives at /data/meteorites.db in production and under ./database
// otherwise; DB_PATH overrides both. IMAGES_DIR points at the directory of
// catalog photos.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 3000)
	v.SetDefault("environment", "development")
	v.SetDefault("images_dir", filepath.Join("web", "images"))

	cfg := &Config{
		Port:        v.GetInt("port"),
		Environment: v.GetString("environment"),
		DBPath:      v.GetString("db_path"),
		ImagesDir:   v.GetString("images_dir"),
	}

	if cfg.DBPath == "" {
		if cfg.Environment == "production" {
			cfg.DBPath = "/data/meteorites.db"
		} else {
			cfg.DBPath = filepath.Join("database", "meteorites.db")
		}
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
