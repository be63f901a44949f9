package riskquery

import (
	"errors"

	"github.com/safecity/safecity-api/pkg"
	"github.com/safecity/safecity-api/pkg/datastructure"

	"golang.org/x/exp/constraints"
)

var (
	ErrCityNotFound = errors.New("city not found")
)

// CityTable is the read only view of the prediction table the queries need.
type CityTable interface {
	Len() int
	Records() []datastructure.CityRecord
	Each(fn func(i int, rec datastructure.CityRecord) bool)
	MatchCity(name string) []datastructure.CityRecord
}

// RiskQuery answers lookups and aggregates over an immutable CityTable. Every method is
// a pure function of the table and its arguments.
type RiskQuery struct {
	table CityTable
}

func NewRiskQuery(table CityTable) *RiskQuery {
	return &RiskQuery{table: table}
}

// Zones returns every row in stored order.
func (q *RiskQuery) Zones() []ZoneRecord {
	return q.table.Records()
}

// CityByName returns the first row whose city equals name ignoring case.
func (q *RiskQuery) CityByName(name string) (CityDetail, error) {
	rows := q.table.MatchCity(name)
	if len(rows) == 0 {
		return CityDetail{}, pkg.WrapErrorf(ErrCityNotFound, pkg.ErrNotFound, "city %q", name)
	}

	first := rows[0]
	return CityDetail{
		City:         first.City,
		Latitude:     first.Latitude,
		Longitude:    first.Longitude,
		RiskZone:     first.RiskZone,
		PoliceNeeded: first.PoliceNeeded,
	}, nil
}

// CityStatistics aggregates every row matching name ignoring case. total_incidents counts
// rows. risk level and coordinates come from the first matching row.
func (q *RiskQuery) CityStatistics(name string) (CityStatistics, error) {
	rows := q.table.MatchCity(name)
	if len(rows) == 0 {
		return CityStatistics{}, pkg.WrapErrorf(ErrCityNotFound, pkg.ErrNotFound, "city %q", name)
	}

	police := make([]int, len(rows))
	for i, rec := range rows {
		police[i] = rec.PoliceNeeded
	}

	first := rows[0]
	return CityStatistics{
		City:                name,
		TotalIncidents:      len(rows),
		AveragePoliceNeeded: mean(police),
		RiskLevel:           first.RiskZone,
		Latitude:            first.Latitude,
		Longitude:           first.Longitude,
	}, nil
}

// OverallStatistics aggregates the whole table.
func (q *RiskQuery) OverallStatistics() OverallStatistics {
	var (
		stats       OverallStatistics
		policeTotal int
		cities      = make(map[string]struct{})
		highCounts  = make(map[string]int)
	)

	q.table.Each(func(_ int, rec datastructure.CityRecord) bool {
		stats.TotalIncidents++
		policeTotal += rec.PoliceNeeded
		cities[rec.City] = struct{}{}

		switch rec.RiskZone {
		case datastructure.RiskHigh:
			stats.CitiesByRisk.High++
			highCounts[rec.City]++
		case datastructure.RiskMedium:
			stats.CitiesByRisk.Medium++
		case datastructure.RiskLow:
			stats.CitiesByRisk.Low++
		}
		return true
	})

	stats.TotalCities = len(cities)
	if stats.TotalIncidents > 0 {
		stats.AveragePolicePerIncident = float64(policeTotal) / float64(stats.TotalIncidents)
	}
	if city, ok := mode(highCounts); ok {
		stats.HighestRiskCity = &city
	}
	return stats
}

// mean returns 0 for an empty slice.
func mean[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// mode returns the key with the highest count. ties go to the smallest key in byte
// order.
func mode(counts map[string]int) (string, bool) {
	var (
		best      string
		bestCount int
	)
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best, bestCount = key, count
		}
	}
	return best, bestCount > 0
}
