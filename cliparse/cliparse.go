// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StoreFS       = "fs"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// DefaultAllowedFiletypes is used when ALLOWED_FILETYPES is not set.
const DefaultAllowedFiletypes = "png,jpg,jpeg,gif,webp,svg,bmp,ico,avif,css,woff,woff2,ttf,otf,mp3,mp4,webm,ogg,wav,pdf"

type Config struct {
	Port             int
	ServerURL        string
	SecretAPIKey     string
	AllowedFiletypes []string
	StaticDir        string
	StoreType        string
	DatabaseURL      string
	TemplatePath     string
	MaxUploadBytes   int64
	LogLevel         string
}

// flag name -> config key (the key is also the environment variable name,
// upper-cased).
var flagKeys = map[string]string{
	"port":              "port",
	"server-url":        "server_url",
	"secret":            "secret_api_key",
	"allowed-filetypes": "allowed_filetypes",
	"static-dir":        "static_dir",
	"store":             "store_type",
	"database-url":      "database_url",
	"template":          "template_path",
	"max-upload-bytes":  "max_upload_bytes",
	"log-level":         "log_level",
}

// RegisterFlags adds the server flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	// Network config (can be CLI args or env)
	fs.IntP("port", "p", 8086, "Server port")
	fs.String("server-url", "", "Public base URL of the server, e.g. https://notes.example.com")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.String("secret", "", "Shared API secret (prefer SECRET_API_KEY env)")

	// Storage
	fs.String("allowed-filetypes", DefaultAllowedFiletypes, "Comma-separated list of uploadable file extensions")
	fs.String("static-dir", "static", "Directory for published notes and assets (fs store)")
	fs.String("store", StoreFS, "Publication store backend (fs, sqlite or postgres)")
	fs.StringP("database-url", "d", "", "Database URL (sqlite or postgres store)")
	fs.String("template", "", "Note template file (default: built-in template)")
	fs.Int64("max-upload-bytes", 50<<20, "Maximum request body size in bytes")

	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("env-file", ".env", "Environment file loaded before reading the environment")
}

// ParseFlags validates flags and falls back to the environment.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("sharenote", pflag.ContinueOnError)
	RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Load(fs)
}

// Load resolves the configuration from a parsed flag set. Precedence is
// flags, then environment, then the env file, then flag defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	envFile, err := fs.GetString("env-file")
	if err != nil {
		return Config{}, err
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for flagName, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Port:             v.GetInt("port"),
		ServerURL:        strings.TrimRight(strings.TrimSpace(v.GetString("server_url")), "/"),
		SecretAPIKey:     v.GetString("secret_api_key"),
		AllowedFiletypes: splitList(v.GetString("allowed_filetypes")),
		StaticDir:        v.GetString("static_dir"),
		StoreType:        strings.ToLower(v.GetString("store_type")),
		DatabaseURL:      v.GetString("database_url"),
		TemplatePath:     v.GetString("template_path"),
		MaxUploadBytes:   v.GetInt64("max_upload_bytes"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("invalid PORT")
	}

	// Secrets - MUST be provided
	if c.SecretAPIKey == "" {
		return errors.New("SECRET_API_KEY required")
	}
	if c.ServerURL == "" {
		return errors.New("SERVER_URL required (use --server-url or SERVER_URL env)")
	}

	switch c.StoreType {
	case StoreFS:
		if c.StaticDir == "" {
			return errors.New("STATIC_DIR required for fs store")
		}
	case StoreSQLite, StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return fmt.Errorf("unknown STORE_TYPE %q", c.StoreType)
	}

	if len(c.AllowedFiletypes) == 0 {
		return errors.New("ALLOWED_FILETYPES must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// splitList parses "png, JPG,.gif" into [png jpg gif].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(part)), ".")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// RegisterSecretFlags adds only the flags needed to resolve the shared
// secret, for commands that sign or derive codes without serving.
func RegisterSecretFlags(fs *pflag.FlagSet) {
	fs.String("secret", "", "Shared API secret (prefer SECRET_API_KEY env)")
	fs.String("env-file", ".env", "Environment file loaded before reading the environment")
}

// LoadSecret resolves SECRET_API_KEY from a flag set built with
// RegisterSecretFlags, with the same precedence as Load.
func LoadSecret(fs *pflag.FlagSet) (string, error) {
	envFile, err := fs.GetString("env-file")
	if err != nil {
		return "", err
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	if err := v.BindPFlag("secret_api_key", fs.Lookup("secret")); err != nil {
		return "", err
	}

	secret := v.GetString("secret_api_key")
	if secret == "" {
		return "", errors.New("SECRET_API_KEY required")
	}
	return secret, nil
}
