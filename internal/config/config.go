package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the client configuration.
type Config struct {
	BaseURL   string
	SSHHost   string
	Username  string
	Password  string
	Timeout   time.Duration
	LogLevel  string
	VerifySSL bool
}

type configFile struct {
	BaseURL        string `json:"base_url,omitempty"`
	SSHHost        string `json:"ssh_host,omitempty"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	TimeoutSeconds int    `json:"timeout,omitempty"`
	LogLevel       string `json:"log_level,omitempty"`
	VerifySSL      *bool  `json:"verify_ssl,omitempty"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".config", "opensilex")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig reads configuration from the environment and the config
// file, environment taking precedence.
func LoadConfig() Config {
	cfg := Config{
		Timeout:   30 * time.Second,
		LogLevel:  "info",
		VerifySSL: true,
	}

	// Load from environment first (takes precedence)
	envBaseURL := os.Getenv("OPENSILEX_BASE_URL")
	envSSHHost := os.Getenv("OPENSILEX_SSH_HOST")
	envUsername := os.Getenv("OPENSILEX_USERNAME")
	envPassword := os.Getenv("OPENSILEX_PASSWORD")
	cfg.BaseURL = envBaseURL
	cfg.SSHHost = envSSHHost
	cfg.Username = envUsername
	cfg.Password = envPassword
	if t := os.Getenv("OPENSILEX_TIMEOUT"); t != "" {
		if seconds, err := strconv.Atoi(t); err == nil && seconds > 0 {
			cfg.Timeout = time.Duration(seconds) * time.Second
		}
	}
	if level := os.Getenv("OPENSILEX_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if verify := os.Getenv("OPENSILEX_VERIFY_SSL"); verify != "" {
		if parsed, err := strconv.ParseBool(verify); err == nil {
			cfg.VerifySSL = parsed
		}
	}

	// Load from config file
	configPath, err := configPath()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg
	}

	var fileCfg configFile
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}

	// Only use file values if environment variables are not set
	if envBaseURL == "" && fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if envSSHHost == "" && fileCfg.SSHHost != "" {
		cfg.SSHHost = fileCfg.SSHHost
	}
	if envUsername == "" && fileCfg.Username != "" {
		cfg.Username = fileCfg.Username
	}
	if envPassword == "" && fileCfg.Password != "" {
		cfg.Password = fileCfg.Password
	}
	if os.Getenv("OPENSILEX_TIMEOUT") == "" && fileCfg.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fileCfg.TimeoutSeconds) * time.Second
	}
	if os.Getenv("OPENSILEX_LOG_LEVEL") == "" && fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if os.Getenv("OPENSILEX_VERIFY_SSL") == "" && fileCfg.VerifySSL != nil {
		cfg.VerifySSL = *fileCfg.VerifySSL
	}

	return cfg
}

// SaveConfig writes the configuration to disk. The password is never
// persisted; it stays in the environment or is entered per session.
func SaveConfig(cfg Config) error {
	configPath, err := configPath()
	if err != nil {
		return err
	}

	fileCfg := configFile{
		BaseURL:        cfg.BaseURL,
		SSHHost:        cfg.SSHHost,
		Username:       cfg.Username,
		TimeoutSeconds: int(cfg.Timeout / time.Second),
		LogLevel:       cfg.LogLevel,
		VerifySSL:      &cfg.VerifySSL,
	}

	data, err := json.MarshalIndent(fileCfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
