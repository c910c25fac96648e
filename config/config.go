package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey         string `mapstructure:"secret_key"`
		AccessExpiresMin  int    `mapstructure:"access_expires_min"`
		RefreshSecretKey  string `mapstructure:"refresh_secret_key"`
		RefreshExpiresDay int    `mapstructure:"refresh_expires_day"`
	} `mapstructure:"jwt"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("jwt.access_expires_min", 15)
	viper.SetDefault("jwt.refresh_expires_day", 7)

	viper.AutomaticEnv()

	// The token secrets and TTLs are conventionally provided as environment
	// variables in deployment, overriding the config file.
	viper.BindEnv("jwt.secret_key", "JWT_SECRET")
	viper.BindEnv("jwt.access_expires_min", "JWT_ACCESS_EXPIRES")
	viper.BindEnv("jwt.refresh_secret_key", "JWT_REFRESH_SECRET")
	viper.BindEnv("jwt.refresh_expires_day", "JWT_REFRESH_EXPIRES")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
