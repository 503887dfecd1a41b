package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// Путь к файлу встроенной БД (SQLite)
		Path string `yaml:"path"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // часы
	} `yaml:"jwt"`

	Seed struct {
		// Demo включает заливку демо-данных при старте
		Demo bool `yaml:"demo"`
		// Единый пароль для всех демо-аккаунтов
		DefaultPassword string `yaml:"default_password"`
	} `yaml:"seed"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For S3
		Region     string `yaml:"region"`      // For S3
		AccessKey  string `yaml:"access_key"`  // For S3
		SecretKey  string `yaml:"secret_key"`  // For S3
		Endpoint   string `yaml:"endpoint"`    // For custom S3
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`
}

// AppConfig - глобальный конфиг приложения
var AppConfig *Config

// LoadConfig читает config.yaml и применяет переопределения из env
func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: %s not found, using defaults (%v)", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Fatalf("config: failed to parse %s: %v", path, err)
	}

	applyEnvOverrides(cfg)
	AppConfig = cfg
}

// GetConfig возвращает загруженный конфиг
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Database.Path = "marketplace.db"
	cfg.JWT.Secret = "dev-secret-change-me"
	cfg.JWT.TTL = 24
	cfg.Seed.Demo = true
	cfg.Seed.DefaultPassword = "password123"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/files"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("SEED_DEMO"); v != "" {
		cfg.Seed.Demo = v == "true" || v == "1"
	}
}
