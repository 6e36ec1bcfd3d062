package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/25x8/apienv/internal/endpoint"
	"github.com/25x8/apienv/internal/envfile"
)

// Переменные окружения с префиксом, чтобы не подхватить настройки других программ
const (
	EnvPrefix     = "APIENV_"
	EnvConfigPath = EnvPrefix + "CONFIG"
	EnvFilePath   = EnvPrefix + "ENV_FILE"
	EnvKeyName    = EnvPrefix + "ENV_KEY"
	EnvPort       = EnvPrefix + "PORT"
	EnvLogLevel   = EnvPrefix + "LOG_LEVEL"
)

type Config struct {
	EnvFile  string `json:"env_file"`
	EnvKey   string `json:"env_key"`
	Port     int    `json:"port"`
	LogLevel string `json:"log_level"`

	ShowVersion bool `json:"-"`
}

// Default возвращает конфигурацию по умолчанию. Файл .env ищется в рабочем каталоге.
func Default() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &Config{
		EnvFile:  filepath.Join(wd, envfile.DefaultFileName),
		EnvKey:   envfile.APIBaseURLKey,
		Port:     endpoint.DefaultPort,
		LogLevel: "info",
	}, nil
}

// LoadFile накладывает значения из JSON-файла на cfg.
func LoadFile(cfg *Config, filePath string) error {
	if filePath == "" {
		return nil
	}

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(file, cfg)
}

// Load собирает конфигурацию: значения по умолчанию, затем JSON-файл,
// затем явно заданные флаги, затем переменные окружения.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("apienv", flag.ContinueOnError)
	envFile := fs.String("o", cfg.EnvFile, "Path to the env file to overwrite")
	envKey := fs.String("k", cfg.EnvKey, "Env variable name to write")
	port := fs.Int("p", cfg.Port, "API port")
	logLevel := fs.String("l", cfg.LogLevel, "Log level")
	configPath := fs.String("c", "", "Path to JSON config file")
	configAlt := fs.String("config", "", "Path to JSON config file (alternative)")
	showVersion := fs.Bool("version", false, "Print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Путь к конфигу: -c, затем -config, затем APIENV_CONFIG
	path := *configPath
	if path == "" {
		path = *configAlt
	}
	if path == "" {
		path = getenv(EnvConfigPath)
	}
	if err := LoadFile(cfg, path); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	// Флаги важнее файла, но только если заданы явно
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.EnvFile = *envFile
		case "k":
			cfg.EnvKey = *envKey
		case "p":
			cfg.Port = *port
		case "l":
			cfg.LogLevel = *logLevel
		}
	})
	cfg.ShowVersion = *showVersion

	// Переменные окружения имеют наивысший приоритет
	if v := getenv(EnvFilePath); v != "" {
		cfg.EnvFile = v
	}
	if v := getenv(EnvKeyName); v != "" {
		cfg.EnvKey = v
	}
	if v := getenv(EnvPort); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		cfg.Port = p
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	ErrEmptyEnvFile = errors.New("env file path must not be empty")
	ErrEmptyEnvKey  = errors.New("env key must not be empty")
)

func (c *Config) Validate() error {
	if c.EnvFile == "" {
		return ErrEmptyEnvFile
	}
	if c.EnvKey == "" {
		return ErrEmptyEnvKey
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", endpoint.ErrInvalidPort, c.Port)
	}
	return nil
}
