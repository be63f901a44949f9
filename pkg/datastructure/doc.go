package datastructure

// Risk zone labels produced by the prediction model. The set is open: other labels are
// stored and returned as-is.
const (
	RiskHigh   = "High"
	RiskMedium = "Medium"
	RiskLow    = "Low"
)

// CityRecord model info
// @Description one row of the city crime-risk prediction table.
type CityRecord struct {
	City         string  `json:"City" msgpack:"City"`                   // city or locality name. not unique across rows
	Latitude     float64 `json:"latitude" msgpack:"latitude"`           // latitude of the city centroid
	Longitude    float64 `json:"longitude" msgpack:"longitude"`         // longitude of the city centroid
	RiskZone     string  `json:"risk_zone" msgpack:"risk_zone"`         // predicted risk zone: High, Medium or Low
	PoliceNeeded int     `json:"police_needed" msgpack:"police_needed"` // predicted police staffing for the row
}

func NewCityRecord(city string, lat, lon float64, riskZone string, policeNeeded int) CityRecord {

	return CityRecord{
		City:         city,
		Latitude:     lat,
		Longitude:    lon,
		RiskZone:     riskZone,
		PoliceNeeded: policeNeeded,
	}
}
