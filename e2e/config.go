package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CHAPPY_ADDR targets a running server. When empty the suite starts
	// an in-process server on a temporary badger directory.
	ChappyAddr string `envconfig:"CHAPPY_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours   bool   `envconfig:"E2E_COLOURS" default:"true"`
	JWTSecret string `envconfig:"E2E_JWT_SECRET" default:"e2e-secret"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
