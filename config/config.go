package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Cors struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Speech struct {
		CredentialsFile string `yaml:"credentialsFile"`
		LanguageCode    string `yaml:"languageCode"`
	} `yaml:"speech"`
}

// LoadConfig reads the configuration file and fills in defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Gemini.ApiKey == "" {
		return nil, errors.New("gemini apiKey is missing from config")
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-pro"
	}
	if cfg.Speech.LanguageCode == "" {
		cfg.Speech.LanguageCode = "en-US"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if len(cfg.Cors.AllowedOrigins) == 0 {
		cfg.Cors.AllowedOrigins = []string{"http://localhost:5173"}
	}

	return &cfg, nil
}
