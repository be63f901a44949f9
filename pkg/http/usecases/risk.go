package usecases

import (
	"github.com/safecity/safecity-api/pkg/riskquery"

	"go.uber.org/zap"
)

type RiskService struct {
	log     *zap.Logger
	querier RiskQuerier
}

func New(log *zap.Logger, querier RiskQuerier) *RiskService {
	return &RiskService{
		log:     log,
		querier: querier,
	}
}

func (s *RiskService) Zones() []riskquery.ZoneRecord {
	return s.querier.Zones()
}

func (s *RiskService) CityByName(name string) (riskquery.CityDetail, error) {
	city, err := s.querier.CityByName(name)
	if err != nil {
		s.log.Debug("city lookup missed", zap.String("city", name), zap.Error(err))
	}
	return city, err
}

func (s *RiskService) CityStatistics(name string) (riskquery.CityStatistics, error) {
	stats, err := s.querier.CityStatistics(name)
	if err != nil {
		s.log.Debug("city statistics lookup missed", zap.String("city", name), zap.Error(err))
	}
	return stats, err
}

func (s *RiskService) OverallStatistics() riskquery.OverallStatistics {
	return s.querier.OverallStatistics()
}
