// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads an optional .env file,
// with github.com/caarlos0/env/v11, which fills structs from `env` tags.
// Each configuration type is parsed once and cached for the life of the
// process; ResetCache clears the cache in tests.
//
//	type AppConfig struct {
//		Name string `env:"APP_NAME" envDefault:"toastd"`
//		Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
