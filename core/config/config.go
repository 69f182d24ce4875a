package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"salon-api/core/logger"
)

type (
	Config struct {
		Server     ServerConfig
		Database   DatabaseConfig
		Redis      RedisConfig
		GoogleAPI  GoogleAPIConfig
		TokenStore TokenStoreConfig
	}

	ServerConfig struct {
		Port int
	}

	DatabaseConfig struct {
		Host     string
		Port     int
		User     string
		Password string
		DBName   string
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	GoogleAPIConfig struct {
		ClientID     string
		ClientSecret string
		RedirectURI  string
		// Where the callback sends the browser after a successful consent.
		FrontendSuccessRedirect string
	}

	TokenStoreConfig struct {
		Driver   string // "file" | "postgres"
		FilePath string
	}
)

var (
	mu       sync.RWMutex
	instance *Config
)

// Load reads .env (if present) plus the process environment and builds the
// process-wide configuration singleton.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("Config:Load", "dotenv", "no .env file, using process environment")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3000)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "salon")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("FRONTEND_SUCCESS_REDIRECT", "/")
	v.SetDefault("TOKEN_STORE_DRIVER", "file")
	v.SetDefault("TOKEN_STORE_PATH", "tokens.json")

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("PORT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		GoogleAPI: GoogleAPIConfig{
			ClientID:                v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret:            v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURI:             v.GetString("GOOGLE_REDIRECT_URI"),
			FrontendSuccessRedirect: v.GetString("FRONTEND_SUCCESS_REDIRECT"),
		},
		TokenStore: TokenStoreConfig{
			Driver:   v.GetString("TOKEN_STORE_DRIVER"),
			FilePath: v.GetString("TOKEN_STORE_PATH"),
		},
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded configuration, panicking when Load was never called.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Load")
	}
	return cfg
}

// GetSafe returns the loaded configuration and whether it is initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set replaces the singleton. Tests use it to inject fixed values.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, "disable")
}
