package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Draw     DrawConfig
	Telegram TelegramConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// DrawConfig holds the draw-calendar and prize calibration.
type DrawConfig struct {
	PrizePool float64
	// Contest numbering anchor: the draw on ContestRefDate (YYYY-MM-DD, BRT)
	// carried ContestRefNumber.
	ContestRefDate   string
	ContestRefNumber int
	// Holidays are fixed no-draw dates as "MM-DD".
	Holidays []string
	// EarlyCutoffDates get EarlyCutoffHour as cutoff instead of the default
	// 20:00. See the cutoff-policy note in DESIGN.md.
	EarlyCutoffDates []string
	EarlyCutoffHour  int
}

// TelegramConfig holds the winner-announcement bot configuration
type TelegramConfig struct {
	BotToken string
	ChatID   string
	Mock     bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; environment variables cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyEnvOverrides(&config)

	return &config, nil
}

// applyEnvOverrides maps flat environment variables onto nested config
// keys, which AutomaticEnv does not reach.
func applyEnvOverrides(config *Config) {
	config.Server.Port = GetEnv("PORT", config.Server.Port)
	config.Server.AllowedHosts = GetEnvAsSlice("ALLOWED_HOSTS", ",", config.Server.AllowedHosts)
	config.MongoDB.URI = GetEnv("MONGODB_URI", config.MongoDB.URI)
	config.MongoDB.Database = GetEnv("MONGODB_DATABASE", config.MongoDB.Database)
	config.JWT.Secret = GetEnv("JWT_SECRET", config.JWT.Secret)
	config.JWT.ExpiresIn = GetEnvAsInt("JWT_EXPIRES_IN", config.JWT.ExpiresIn)
	config.Telegram.BotToken = GetEnv("TELEGRAM_BOT_TOKEN", config.Telegram.BotToken)
	config.Telegram.ChatID = GetEnv("TELEGRAM_CHAT_ID", config.Telegram.ChatID)
	config.Telegram.Mock = GetEnvAsBool("TELEGRAM_MOCK", config.Telegram.Mock)
	config.LogLevel = GetEnv("LOG_LEVEL", config.LogLevel)
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "popsorte")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Draw.PrizePool", 1000.0)
	viper.SetDefault("Draw.ContestRefDate", "2025-03-03")
	viper.SetDefault("Draw.ContestRefNumber", 2100)
	viper.SetDefault("Draw.Holidays", []string{"12-25", "01-01"})
	viper.SetDefault("Draw.EarlyCutoffDates", []string{"12-24", "12-31"})
	viper.SetDefault("Draw.EarlyCutoffHour", 16)
	viper.SetDefault("Telegram.Mock", true)
	viper.SetDefault("LogLevel", "info")
}
