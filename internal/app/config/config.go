package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	InternalToken   string // empty disables the internal auth middleware
	CORSAllowOrigin string
	TotalPeriod     string // "auto" or "always"
	Tier1Amount     string // decimal, fixed amount for tier1 lines
}

func MustLoad() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		TotalPeriod:     env("TOTAL_PERIOD", "auto"),
		Tier1Amount:     env("TIER1_AMOUNT", "199"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
