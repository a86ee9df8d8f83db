package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Persistence
	Mongo MongoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	bindEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// CORS: a YAML list or a comma separated string (env vars)
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")

	// MongoDB
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Mongo.Collection = v.GetString("mongo.collection")
	cfg.Mongo.ConnectTimeout = v.GetDuration("mongo.connect_timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnv maps nested keys to env vars, so mongo.uri reads MONGO_URI.
func bindEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "5s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "items")
	v.SetDefault("mongo.collection", "items")
	v.SetDefault("mongo.connect_timeout", "10s")
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	if c.Mongo.URI == "" {
		return errors.New("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is required")
	}
	if c.Mongo.Collection == "" {
		return errors.New("mongo.collection is required")
	}
	return nil
}

func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch v.Get(key).(type) {
	case []any, []string:
		raw = v.GetStringSlice(key)
	default:
		raw = strings.Split(v.GetString(key), ",")
	}

	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
