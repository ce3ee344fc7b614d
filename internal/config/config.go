package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// StorageDriver selects the backing store: "postgres" or "memory".
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`

	// FeedMode selects the home feed policy: "personalized" or "global".
	FeedMode string `mapstructure:"FEED_MODE"`

	// BannedWords is the comma-separated moderation word list.
	BannedWords string `mapstructure:"BANNED_WORDS"`

	// RejectDuplicatePosts rejects a post identical to the author's
	// previous one.
	RejectDuplicatePosts bool `mapstructure:"REJECT_DUPLICATE_POSTS"`

	// PostCooldownSeconds is the minimum gap between posts by the same
	// author. Zero disables the cooldown.
	PostCooldownSeconds int `mapstructure:"POST_COOLDOWN_SECONDS"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("FEED_MODE", "personalized")
	viper.SetDefault("BANNED_WORDS", "hate,fuck,kill,stupid")
	viper.SetDefault("REJECT_DUPLICATE_POSTS", false)
	viper.SetDefault("POST_COOLDOWN_SECONDS", 0)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
