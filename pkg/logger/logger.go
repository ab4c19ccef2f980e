package logger

import (
	"go.uber.org/zap"
)

// New builds a human readable logger for development and a JSON logger
// everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
