package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Health info bot specifics
	Database   DatabaseConfig
	Dialogflow DialogflowConfig
	MyMemory   MyMemoryConfig
	WHO        WHOConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	// URL is the postgres connection string. Empty means the bot runs
	// with in-memory user memory only.
	URL string
}

type DialogflowConfig struct {
	ProjectID       string
	CredentialsJSON string
}

type MyMemoryConfig struct {
	// Email raises the MyMemory anonymous request quota. Optional.
	Email string
}

type WHOConfig struct {
	// SlugsURL overrides the disease slug table location. Optional.
	SlugsURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.URL = viper.GetString("database.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	// Dialogflow
	cfg.Dialogflow.ProjectID = viper.GetString("dialogflow.project_id")
	cfg.Dialogflow.CredentialsJSON = viper.GetString("dialogflow.credentials_json")
	if projectID := viper.GetString("dialogflow_project_id"); projectID != "" {
		cfg.Dialogflow.ProjectID = projectID
	}
	if creds := viper.GetString("google_credentials_json"); creds != "" {
		cfg.Dialogflow.CredentialsJSON = creds
	}
	if cfg.Dialogflow.ProjectID == "" {
		return nil, fmt.Errorf("dialogflow project id is required - set DIALOGFLOW_PROJECT_ID")
	}
	if cfg.Dialogflow.CredentialsJSON == "" {
		return nil, fmt.Errorf("dialogflow credentials are required - set GOOGLE_CREDENTIALS_JSON")
	}

	// MyMemory
	cfg.MyMemory.Email = viper.GetString("mymemory.email")
	if email := viper.GetString("mymemory_email"); email != "" {
		cfg.MyMemory.Email = email
	}

	// WHO
	cfg.WHO.SlugsURL = viper.GetString("who.slugs_url")
	if slugsURL := viper.GetString("who_slugs_url"); slugsURL != "" {
		cfg.WHO.SlugsURL = slugsURL
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
}
