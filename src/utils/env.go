package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads a local .env file when one exists and
// applies LOG_LEVEL to the global logger.
func InitEnvironmentVariables() error {
	if _, err := os.Stat(ENV_FILENAME); err == nil {
		if err := godotenv.Load(ENV_FILENAME); err != nil {
			return err
		}
	}

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		level, err := log.ParseLevel(levelStr)
		if err != nil {
			log.Warnf("invalid LOG_LEVEL '%s', keeping default", levelStr)
			return nil
		}

		log.SetLevel(level)
	}

	return nil
}
