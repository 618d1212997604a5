package config

import "github.com/spf13/viper"

type Config struct {
	Port         int
	DatabasePath string
	Debug        bool
}

// Load reads configuration from an optional config.yaml in the working
// directory, overridable via PRECISION_* environment variables.
func Load() Config {
	viper.SetDefault("port", 7311)
	viper.SetDefault("database_path", "precision.db")
	viper.SetDefault("debug", false)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("precision")
	viper.AutomaticEnv()

	// a missing config file is fine, defaults and env cover everything
	_ = viper.ReadInConfig()

	return Config{
		Port:         viper.GetInt("port"),
		DatabasePath: viper.GetString("database_path"),
		Debug:        viper.GetBool("debug"),
	}
}
