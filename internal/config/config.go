package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Model  ModelConfig  `yaml:"model"`
	Admin  AdminConfig  `yaml:"admin"`
	MCP    MCPConfig    `yaml:"mcp"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

// ModelConfig points at the external price prediction service.
type ModelConfig struct {
	URL string `yaml:"url"`
}

type AdminConfig struct {
	Email string `yaml:"email"`
}

// MCPConfig controls the optional MCP tool surface.
type MCPConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "stdio" or "http"
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "estato.db",
		},
		Model: ModelConfig{
			URL: "http://127.0.0.1:5000",
		},
		Admin: AdminConfig{
			Email: "admin@estatoai.com",
		},
		MCP: MCPConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ESTATO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ESTATO_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ESTATO_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ESTATO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("ESTATO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if modelURL := os.Getenv("ESTATO_MODEL_URL"); modelURL != "" {
		cfg.Model.URL = modelURL
	}
	if adminEmail := os.Getenv("ESTATO_ADMIN_EMAIL"); adminEmail != "" {
		cfg.Admin.Email = adminEmail
	}
	if enabled := os.Getenv("ESTATO_MCP_ENABLED"); enabled != "" {
		cfg.MCP.Enabled = enabled == "true" || enabled == "1"
	}
	if mode := os.Getenv("ESTATO_MCP_MODE"); mode != "" {
		cfg.MCP.Mode = mode
	}
	if level := os.Getenv("ESTATO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
