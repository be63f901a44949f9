package dataset

import (
	"fmt"
	"strings"

	"github.com/safecity/safecity-api/pkg"
	"github.com/safecity/safecity-api/pkg/datastructure"
)

const (
	COLUMN_CITY          = "City"
	COLUMN_LATITUDE      = "latitude"
	COLUMN_LONGITUDE     = "longitude"
	COLUMN_RISK_ZONE     = "risk_zone"
	COLUMN_POLICE_NEEDED = "police_needed"
)

// RequiredColumns lists the columns a prediction table must contain, in output order.
var RequiredColumns = []string{
	COLUMN_CITY,
	COLUMN_LATITUDE,
	COLUMN_LONGITUDE,
	COLUMN_RISK_ZONE,
	COLUMN_POLICE_NEEDED,
}

// RawTable is a column-oriented table in "split" layout: the column names followed by
// one cell slice per row. Extra columns are allowed and ignored.
type RawTable struct {
	Columns []string        `json:"columns" msgpack:"columns"`
	Data    [][]interface{} `json:"data" msgpack:"data"`
}

// ToRawTable converts records into a RawTable with RequiredColumns as its columns.
func ToRawTable(records []datastructure.CityRecord) RawTable {
	columns := make([]string, len(RequiredColumns))
	copy(columns, RequiredColumns)

	data := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		data = append(data, []interface{}{rec.City, rec.Latitude, rec.Longitude, rec.RiskZone, rec.PoliceNeeded})
	}
	return RawTable{Columns: columns, Data: data}
}

// columnIndex maps each required column to its position in columns. Column names are
// matched exactly after trimming surrounding whitespace.
func columnIndex(columns []string) (map[string]int, error) {
	idx := make(map[string]int, len(columns))
	for i, col := range columns {
		name := strings.TrimSpace(col)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "table is missing required columns: %s",
			strings.Join(missing, ", "))
	}
	return idx, nil
}

// Records coerces every row of the raw table into a CityRecord.
func (raw RawTable) Records() ([]datastructure.CityRecord, error) {
	idx, err := columnIndex(raw.Columns)
	if err != nil {
		return nil, err
	}

	records := make([]datastructure.CityRecord, 0, len(raw.Data))
	for rowNum, row := range raw.Data {
		rec, err := coerceRow(row, idx)
		if err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "row %d", rowNum)
		}
		records = append(records, rec)
	}
	return records, nil
}

func cell(row []interface{}, idx map[string]int, column string) interface{} {
	pos := idx[column]
	if pos >= len(row) {
		return nil
	}
	return row[pos]
}

func coerceRow(row []interface{}, idx map[string]int) (datastructure.CityRecord, error) {
	city, err := coerceString(cell(row, idx, COLUMN_CITY))
	if err != nil {
		return datastructure.CityRecord{}, fmt.Errorf("column %s: %w", COLUMN_CITY, err)
	}
	lat, err := coerceFloat(cell(row, idx, COLUMN_LATITUDE))
	if err != nil {
		return datastructure.CityRecord{}, fmt.Errorf("column %s: %w", COLUMN_LATITUDE, err)
	}
	lon, err := coerceFloat(cell(row, idx, COLUMN_LONGITUDE))
	if err != nil {
		return datastructure.CityRecord{}, fmt.Errorf("column %s: %w", COLUMN_LONGITUDE, err)
	}
	riskZone, err := coerceString(cell(row, idx, COLUMN_RISK_ZONE))
	if err != nil {
		return datastructure.CityRecord{}, fmt.Errorf("column %s: %w", COLUMN_RISK_ZONE, err)
	}
	police, err := coerceInt(cell(row, idx, COLUMN_POLICE_NEEDED))
	if err != nil {
		return datastructure.CityRecord{}, fmt.Errorf("column %s: %w", COLUMN_POLICE_NEEDED, err)
	}

	return datastructure.NewCityRecord(city, lat, lon, riskZone, police), nil
}
