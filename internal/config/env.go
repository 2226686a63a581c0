package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFile is loaded if present. Variables already set in the environment
// win over the file.
var envFile = ".env"

// parseEnv reads the suggestion API key.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	for _, k := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v := os.Getenv(k); v != "" {
			cfg.APIKey = v
			return
		}
	}
}
