package usecases

import "github.com/safecity/safecity-api/pkg/riskquery"

type RiskQuerier interface {
	Zones() []riskquery.ZoneRecord
	CityByName(name string) (riskquery.CityDetail, error)
	CityStatistics(name string) (riskquery.CityStatistics, error)
	OverallStatistics() riskquery.OverallStatistics
}
