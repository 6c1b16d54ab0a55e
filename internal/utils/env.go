package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func LoadEnv(logger *zap.Logger, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		logger.Debug("ENV file not found or failed to load, using environment and defaults")
	} else {
		logger.Debug("ENV file loaded successfully")
	}
}
