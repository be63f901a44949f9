package dataset_di

import (
	"time"

	"github.com/safecity/safecity-api/pkg/dataset"
	"github.com/safecity/safecity-api/pkg/di/config"
	"github.com/safecity/safecity-api/pkg/http/usecases"
	"github.com/safecity/safecity-api/pkg/metrics"
	"github.com/safecity/safecity-api/pkg/riskquery"

	"go.uber.org/zap"
)

// New loads the prediction table once. It runs before the HTTP server is constructed,
// so no request can observe a partially loaded table.
func New(cfg *config.Config, log *zap.Logger) (*dataset.Table, error) {
	src := dataset.Source{Path: cfg.Dataset.Path, Format: cfg.Dataset.Format}
	format, codec, err := src.Resolve()
	if err != nil {
		return nil, err
	}

	log.Info("loading prediction table",
		zap.String("path", src.Path),
		zap.String("format", string(format)),
		zap.String("compression", codec.String()))

	start := time.Now()
	table, err := dataset.Load(src)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(table.Len(), elapsed)

	log.Info("prediction table loaded", zap.Int("rows", table.Len()), zap.Duration("took", elapsed))
	if table.Len() == 0 {
		log.Warn("prediction table is empty", zap.String("path", src.Path))
	}
	return table, nil
}

func NewRiskQuerier(table *dataset.Table) usecases.RiskQuerier {
	return riskquery.NewRiskQuery(table)
}
