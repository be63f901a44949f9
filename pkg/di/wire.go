//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/safecity/safecity-api/pkg/di/config"
	shortcontext "github.com/safecity/safecity-api/pkg/di/context"
	dataset_di "github.com/safecity/safecity-api/pkg/di/dataset"
	logger_di "github.com/safecity/safecity-api/pkg/di/logger"
	riskHttp "github.com/safecity/safecity-api/pkg/http"
	"github.com/safecity/safecity-api/pkg/http/http-router/controllers"
	"github.com/safecity/safecity-api/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	dataset_di.New,
	dataset_di.NewRiskQuerier,
)

var riskSet = wire.NewSet(
	defaultSet,
	NewRiskService,
	NewRiskAPIServer,
)

func NewRiskService(log *zap.Logger, querier usecases.RiskQuerier) controllers.RiskService {
	return usecases.New(log, querier)
}

func NewRiskAPIServer(ctx context.Context, log *zap.Logger, cfg *config.Config,
	riskService controllers.RiskService) (*riskHttp.Server, error) {
	api := riskHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, cfg.HTTP, riskService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeRiskService() (*riskHttp.Server, func(), error) {

	panic(wire.Build(riskSet))
}
