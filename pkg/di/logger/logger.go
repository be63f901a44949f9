package logger_di

import (
	"github.com/safecity/safecity-api/pkg/di/config"
	myZap "github.com/safecity/safecity-api/pkg/logger/zap"

	"go.uber.org/zap"
)

func New(cfg *config.Config) (*zap.Logger, func(), error) {
	err := cfg.Logger.Validate()
	if err != nil {
		return nil, nil, err
	}

	log, err := myZap.New(cfg.Logger)

	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
	}

	return log, cleanup, nil
}
