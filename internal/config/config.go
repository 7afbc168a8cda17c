package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Contentful ContentfulConfig
	OpenAI     OpenAIConfig
	UserData   UserDataConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

type ContentfulConfig struct {
	SpaceID         string
	AccessToken     string
	ManagementToken string
	Environment     string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type UserDataConfig struct {
	Path string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CONTENTFUL_ENVIRONMENT", "master")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("USER_DATA_PATH", "data/userdata.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		Contentful: ContentfulConfig{
			SpaceID:         viper.GetString("CONTENTFUL_SPACE_ID"),
			AccessToken:     viper.GetString("CONTENTFUL_ACCESS_TOKEN"),
			ManagementToken: viper.GetString("CONTENTFUL_MANAGEMENT_TOKEN"),
			Environment:     viper.GetString("CONTENTFUL_ENVIRONMENT"),
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("OPENAI_API_KEY"),
			Model:  viper.GetString("OPENAI_MODEL"),
		},
		UserData: UserDataConfig{
			Path: viper.GetString("USER_DATA_PATH"),
		},
	}
}
