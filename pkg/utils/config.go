package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Movies   MoviesConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// RedisConfig is optional; an empty Addr disables the metadata cache.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLMinutes int
}

// MoviesConfig configures the external movie metadata API client.
type MoviesConfig struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_MINUTES", 60)
	viper.SetDefault("MOVIE_API_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("MOVIE_API_RPS", 40)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASS"),
			DB:         viper.GetInt("REDIS_DB"),
			TTLMinutes: viper.GetInt("CACHE_TTL_MINUTES"),
		},
		Movies: MoviesConfig{
			APIKey:            viper.GetString("MOVIE_API_KEY"),
			BaseURL:           viper.GetString("MOVIE_API_BASE_URL"),
			RequestsPerSecond: viper.GetInt("MOVIE_API_RPS"),
		},
	}

	return config, nil
}
