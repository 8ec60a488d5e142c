package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the remote API configuration
type APIConfig struct {
	URL string `mapstructure:"url"` // Base URL, e.g. http://localhost:3000/api/v1
}

// SessionConfig holds the persisted session. Token is the only client-side
// state that survives a restart.
type SessionConfig struct {
	Token    string `mapstructure:"token"`
	UserID   string `mapstructure:"user_id"`
	Username string `mapstructure:"username"` // Display only
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL: "http://localhost:3000/api/v1",
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "studia", "studia.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "studia", "studia.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "studia")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "studia")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("STUDIA")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("api.url", cfg.API.URL)
	viper.Set("session.token", cfg.Session.Token)
	viper.Set("session.user_id", cfg.Session.UserID)
	viper.Set("session.username", cfg.Session.Username)
	viper.Set("ui.theme", cfg.UI.Theme)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	return writeConfig()
}

// SaveSession persists the session produced by a successful login
func SaveSession(token, userID, username string) error {
	viper.Set("session.token", token)
	viper.Set("session.user_id", userID)
	viper.Set("session.username", username)

	return writeConfig()
}

// ClearSession removes the persisted session (logout, or an unauthorized
// response) while preserving other settings
func ClearSession() error {
	viper.Set("session.token", "")
	viper.Set("session.user_id", "")
	viper.Set("session.username", "")

	return writeConfig()
}

func writeConfig() error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasSession returns true if a session token is persisted
func (c *Config) HasSession() bool {
	return c.Session.Token != ""
}

// Sessions is the file-backed session persistence handed to the auth
// orchestrator.
type Sessions struct{}

// SaveSession persists a freshly issued session.
func (Sessions) SaveSession(token, userID, username string) error {
	return SaveSession(token, userID, username)
}

// ClearSession removes the persisted session.
func (Sessions) ClearSession() error {
	return ClearSession()
}
