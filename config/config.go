package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	AWS    AWSConfig
}

type ServerConfig struct {
	Port string
}

type AWSConfig struct {
	Region   string
	S3Bucket string
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Missing .env is fine, the environment is the source of truth.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("AWS_REGION", "us-east-1")

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
		},
		AWS: AWSConfig{
			Region:   viper.GetString("AWS_REGION"),
			S3Bucket: viper.GetString("S3_BUCKET_NAME"),
		},
	}
}
