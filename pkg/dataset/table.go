package dataset

import (
	"github.com/safecity/safecity-api/pkg"
	"github.com/safecity/safecity-api/pkg/datastructure"
)

// Table is the immutable city prediction table. It is built once by Load or NewTable and
// only read afterwards, so it is safe for concurrent use without locking.
type Table struct {
	records []datastructure.CityRecord
	// normalized city name -> row positions in stored order
	cityIdx map[string][]int
}

func NewTable(records []datastructure.CityRecord) *Table {
	rows := make([]datastructure.CityRecord, len(records))
	copy(rows, records)

	cityIdx := make(map[string][]int)
	for i, rec := range rows {
		key := pkg.NormalizeCity(rec.City)
		cityIdx[key] = append(cityIdx[key], i)
	}

	return &Table{
		records: rows,
		cityIdx: cityIdx,
	}
}

func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of every row in stored order.
func (t *Table) Records() []datastructure.CityRecord {
	rows := make([]datastructure.CityRecord, len(t.records))
	copy(rows, t.records)
	return rows
}

// Each calls fn for every row in stored order until fn returns false.
func (t *Table) Each(fn func(i int, rec datastructure.CityRecord) bool) {
	for i, rec := range t.records {
		if !fn(i, rec) {
			return
		}
	}
}

// MatchCity returns the rows whose city equals name ignoring case, in stored order.
func (t *Table) MatchCity(name string) []datastructure.CityRecord {
	positions := t.cityIdx[pkg.NormalizeCity(name)]
	if len(positions) == 0 {
		return nil
	}

	rows := make([]datastructure.CityRecord, 0, len(positions))
	for _, pos := range positions {
		rows = append(rows, t.records[pos])
	}
	return rows
}
