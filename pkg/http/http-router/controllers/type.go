package controllers

import "github.com/safecity/safecity-api/pkg/riskquery"

type RiskService interface {
	Zones() []riskquery.ZoneRecord
	CityByName(name string) (riskquery.CityDetail, error)
	CityStatistics(name string) (riskquery.CityStatistics, error)
	OverallStatistics() riskquery.OverallStatistics
}
