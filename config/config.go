package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Slip verification provider.
	SlipVerifyToken     string `mapstructure:"OPEN_SLIP_VERIFY_TOKEN"`
	SlipVerifyURL       string `mapstructure:"OPEN_SLIP_VERIFY_URL"`
	ReceiverName        string `mapstructure:"PROMPTPAY_RECEIVER_NAME"`
	SlipVerifyAttempts  int    `mapstructure:"SLIP_VERIFY_MAX_ATTEMPTS"`
	SlipVerifyTimeoutMS int    `mapstructure:"SLIP_VERIFY_ATTEMPT_TIMEOUT_MS"`

	// SMTP configuration for confirmation emails.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPSender   string `mapstructure:"SMTP_SENDER"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("OPEN_SLIP_VERIFY_URL", "https://api.openslipverify.com/v1/verify")
	viper.SetDefault("SLIP_VERIFY_MAX_ATTEMPTS", 3)
	viper.SetDefault("SLIP_VERIFY_ATTEMPT_TIMEOUT_MS", 5000)
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate checks the secrets the payment flow cannot run without. Called
// once at startup so a missing token fails the process, not a request.
func (c Config) Validate() error {
	if c.SlipVerifyToken == "" {
		return fmt.Errorf("OPEN_SLIP_VERIFY_TOKEN is required")
	}
	if c.ReceiverName == "" {
		return fmt.Errorf("PROMPTPAY_RECEIVER_NAME is required")
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
