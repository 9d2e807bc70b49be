package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr         string
	GinMode         string
	DBUser          string
	DBPassword      string
	DBHost          string
	DBName          string
	NewRelicLicense string
}

func LoadEnv() Env {
	return Env{
		AppAddr:         getenv("APP_ADDR", ":8080"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:          getenv("DB_USER", "root"),
		DBPassword:      strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:          getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:          getenv("DB_NAME", "tripoptimizer"),
		NewRelicLicense: strings.TrimSpace(os.Getenv("NEW_RELIC_LICENSE_KEY")),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
