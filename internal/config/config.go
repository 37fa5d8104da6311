package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Config is the resolved storefront configuration.
type Config struct {
	APIURL         string
	ProductsPath   string
	CategoriesPath string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
	Currency       string
}

// EnvPrefix is prepended to every environment override (STOREFRONT_API_URL...).
const EnvPrefix = "STOREFRONT"

const (
	defaultConfigPath     = "~/.config/storefront/config.toml"
	defaultLogFile        = "~/.local/state/storefront/storefront.log"
	defaultAPIURL         = "https://fakestoreapi.com"
	defaultProductsPath   = "/products"
	defaultCategoriesPath = "/products/categories"
	defaultLogLevel       = "info"
	defaultCurrency       = "$"
)

// StderrLog is the log_file value that sends logs to stderr.
const StderrLog = "-"

type fileConfig struct {
	APIURL         string `toml:"api_url"`
	ProductsPath   string `toml:"products_path"`
	CategoriesPath string `toml:"categories_path"`
	RequestTimeout string `toml:"request_timeout"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
	Currency       string `toml:"currency"`
}

type envOverrides struct {
	APIURL         string `envconfig:"API_URL"`
	ProductsPath   string `envconfig:"PRODUCTS_PATH"`
	CategoriesPath string `envconfig:"CATEGORIES_PATH"`
	RequestTimeout string `envconfig:"REQUEST_TIMEOUT"`
	LogFile        string `envconfig:"LOG_FILE"`
	LogLevel       string `envconfig:"LOG_LEVEL"`
	Currency       string `envconfig:"CURRENCY"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		ProductsPath:   defaultProductsPath,
		CategoriesPath: defaultCategoriesPath,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		Currency:       defaultCurrency,
	}
}

// Load reads the TOML config at path (or the default location), then applies
// STOREFRONT_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	raw.merge(env)

	return raw.resolve()
}

func (f *fileConfig) merge(env envOverrides) {
	override := func(dst *string, value string) {
		if strings.TrimSpace(value) != "" {
			*dst = value
		}
	}
	override(&f.APIURL, env.APIURL)
	override(&f.ProductsPath, env.ProductsPath)
	override(&f.CategoriesPath, env.CategoriesPath)
	override(&f.RequestTimeout, env.RequestTimeout)
	override(&f.LogFile, env.LogFile)
	override(&f.LogLevel, env.LogLevel)
	override(&f.Currency, env.Currency)
}

func (f fileConfig) resolve() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(f.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(f.ProductsPath); v != "" {
		cfg.ProductsPath = v
	}
	if v := strings.TrimSpace(f.CategoriesPath); v != "" {
		cfg.CategoriesPath = v
	}
	if v := strings.TrimSpace(f.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("request_timeout must not be negative: %s", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(f.LogFile); v != "" {
		if v == StderrLog {
			cfg.LogFile = StderrLog
		} else {
			expanded, err := expandPath(v)
			if err != nil {
				return Config{}, fmt.Errorf("resolve log_file: %w", err)
			}
			cfg.LogFile = expanded
		}
	}
	if v := strings.ToLower(strings.TrimSpace(f.LogLevel)); v != "" {
		if _, err := logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(f.Currency); v != "" {
		cfg.Currency = v
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overwriting variables that are already set. A missing file is
// ignored.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the expanded default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
