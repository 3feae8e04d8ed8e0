package config

import (
	"log"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Port        string `toml:"port"`
	DBDSN       string `toml:"db_dsn"`
	AdminSecret string `toml:"admin_secret"`
	LogFile     string `toml:"log_file"`
	StaticDir   string `toml:"static_dir"`
}

// Load reads the optional TOML file first, then lets env vars override it.
// A missing file or missing keys fall back to the built-in defaults.
func Load() Config {
	cfg := Config{
		Port:        "8080",
		DBDSN:       "royalmotors.db", // sqlite file in project root
		AdminSecret: "royalmotors369741",
		LogFile:     "./royalmotors.log",
		StaticDir:   "./web/static",
	}

	path := os.Getenv("ROYAL_CONFIG")
	if path == "" {
		path = "royalmotors.toml"
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("[config] ignoring unreadable %s: %v", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("ADMIN_SECRET"); v != "" {
		cfg.AdminSecret = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}

	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s", cfg.Port, cfg.DBDSN, cfg.StaticDir)
	return cfg
}
