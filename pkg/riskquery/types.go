package riskquery

import "github.com/safecity/safecity-api/pkg/datastructure"

// ZoneRecord model info
// @Description one entry of the zone map. same shape as a prediction table row.
type ZoneRecord = datastructure.CityRecord

// CityDetail model info
// @Description first prediction row of a city.
type CityDetail struct {
	City         string  `json:"city"`          // city name as stored in the prediction table
	Latitude     float64 `json:"latitude"`      // latitude of the city centroid
	Longitude    float64 `json:"longitude"`     // longitude of the city centroid
	RiskZone     string  `json:"risk_zone"`     // predicted risk zone
	PoliceNeeded int     `json:"police_needed"` // predicted police staffing
}

// CityStatistics model info
// @Description aggregate over every prediction row of a city.
type CityStatistics struct {
	City                string  `json:"city"`                  // requested city name, echoed as given
	TotalIncidents      int     `json:"total_incidents"`       // number of prediction rows for the city
	AveragePoliceNeeded float64 `json:"average_police_needed"` // mean police_needed over the rows
	RiskLevel           string  `json:"risk_level"`            // risk zone of the first row
	Latitude            float64 `json:"latitude"`              // latitude of the first row
	Longitude           float64 `json:"longitude"`             // longitude of the first row
}

// RiskCounts model info
// @Description number of prediction rows per risk zone.
type RiskCounts struct {
	High   int `json:"High"`
	Medium int `json:"Medium"`
	Low    int `json:"Low"`
}

// OverallStatistics model info
// @Description aggregate over the whole prediction table.
type OverallStatistics struct {
	TotalIncidents           int        `json:"total_incidents"`             // number of rows in the table
	TotalCities              int        `json:"total_cities"`                // number of distinct city names
	AveragePolicePerIncident float64    `json:"average_police_per_incident"` // mean police_needed over all rows
	HighestRiskCity          *string    `json:"highest_risk_city"`           // most frequent city among High rows, null when there is none
	CitiesByRisk             RiskCounts `json:"cities_by_risk"`              // rows per risk zone
}
