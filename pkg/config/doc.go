// Package config loads application configuration from environment variables
// and, for tables too large for the environment, from YAML files.
//
// Environment parsing wraps `github.com/caarlos0/env/v11`; `.env` files are
// read with `github.com/joho/godotenv`. Each configuration type is parsed once
// and cached, so every package can call Load for its own struct without
// re-reading the environment:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadYAML overlays a YAML document onto a pre-populated value, which lets a
// caller start from compiled-in defaults and override only some keys.
//
// ResetCache and ForceReload exist for tests that change the environment.
package config
