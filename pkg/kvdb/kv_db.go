package kvdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/safecity/safecity-api/pkg/datastructure"

	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_BUCKET = "cityPredictions"
)

type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) *KVDB {

	return &KVDB{db,
		sync.Mutex{}}
}

// Open opens the snapshot file at path. readOnly snapshots take a shared file lock so
// several server processes may read the same file.
func Open(path string, readOnly bool) (*bbolt.DB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout:  time.Second,
		ReadOnly: readOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("error when opening bbolt snapshot %s: %w", path, err)
	}
	return db, nil
}

func (db *KVDB) Close() error {
	return db.db.Close()
}

// SaveRecords replaces the snapshot contents with records. keys are the big endian row
// positions so a cursor walk returns rows in stored order.
func (db *KVDB) SaveRecords(records []datastructure.CityRecord) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(BBOLTDB_BUCKET)) != nil {
			if err := tx.DeleteBucket([]byte(BBOLTDB_BUCKET)); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucket([]byte(BBOLTDB_BUCKET))
		if err != nil {
			return err
		}
		b.FillPercent = 1.0 // append only, keys are increasing

		for pos, rec := range records {
			err := db.set(b, uint32(pos), rec)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) set(b *bbolt.Bucket, pos uint32, rec datastructure.CityRecord) error {
	recBytes, err := serializeRecord(rec)
	if err != nil {
		return err
	}
	return b.Put(rowKey(pos), recBytes)
}

// LoadRecords returns every row of the snapshot in stored order.
func (db *KVDB) LoadRecords() (records []datastructure.CityRecord, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		if b == nil {
			return fmt.Errorf("bucket %s: %w", BBOLTDB_BUCKET, ErrorsKeyNotExists)
		}

		records = make([]datastructure.CityRecord, 0, b.Stats().KeyN)
		return b.ForEach(func(k, v []byte) error {
			rec, err := deserializeRecord(v)
			if err != nil {
				return fmt.Errorf("row %d: %w", binary.BigEndian.Uint32(k), err)
			}
			records = append(records, rec)
			return nil
		})
	})
	return
}

func rowKey(pos uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, pos)
	return key
}

func GetFloat(bb *bytes.Buffer, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(bb.Bytes()[offset:]))
}

func PutFloat(bb *bytes.Buffer, offset int, val float64) {
	binary.LittleEndian.PutUint64(bb.Bytes()[offset:], math.Float64bits(val))
}

// GetInt reads a signed 32 bit int.
func GetInt(bb *bytes.Buffer, offset int) int {
	return int(int32(binary.LittleEndian.Uint32(bb.Bytes()[offset:])))
}

// PutInt. set int ke byte array page di posisi = offset.
func PutInt(bb *bytes.Buffer, offset int, val int) {
	binary.LittleEndian.PutUint32(bb.Bytes()[offset:], uint32(int32(val)))
}

// GetBytes. return byte array dari byte array page di posisi = offset. di awal ada panjang bytes nya sehingga buat read bytes tinggal baca buffer page[offset+4:offset+4+length]
func GetBytes(bb *bytes.Buffer, offset int) ([]byte, error) {
	length := GetInt(bb, offset)
	if length < 0 || offset+4+length > bb.Len() {
		return nil, fmt.Errorf("corrupt string length %d at offset %d", length, offset)
	}
	b := make([]byte, length)
	copy(b, bb.Bytes()[offset+4:offset+4+length])
	return b, nil
}

// PutBytes. set byte array ke byte array page di posisi = offset.
func PutBytes(bb *bytes.Buffer, offset int, b []byte) {
	PutInt(bb, offset, len(b))
	copy(bb.Bytes()[offset+4:], b)
}

// GetString. return string dari byte array page di posisi= offset.
func GetString(bb *bytes.Buffer, offset int) (string, error) {
	b, err := GetBytes(bb, offset)
	return string(b), err
}

// putString. set string ke byte array page di posisi = offset.
func PutString(bb *bytes.Buffer, offset int, s string) int {
	PutBytes(bb, offset, []byte(s))
	return len([]byte(s))
}

func GetRecordSize(rec datastructure.CityRecord) int {
	return 4 + len([]byte(rec.City)) + 8 + 8 + 4 + len([]byte(rec.RiskZone)) + 4
}

func serializeRecord(rec datastructure.CityRecord) ([]byte, error) {
	if rec.PoliceNeeded > math.MaxInt32 || rec.PoliceNeeded < math.MinInt32 {
		return nil, fmt.Errorf("police_needed %d of %s does not fit in 32 bits", rec.PoliceNeeded, rec.City)
	}

	bb := bytes.NewBuffer(make([]byte, GetRecordSize(rec)))

	leftPos := 0

	stringLen := PutString(bb, leftPos, rec.City)
	leftPos += stringLen + 4

	PutFloat(bb, leftPos, rec.Latitude)
	leftPos += 8

	PutFloat(bb, leftPos, rec.Longitude)
	leftPos += 8

	stringLen = PutString(bb, leftPos, rec.RiskZone)
	leftPos += stringLen + 4

	PutInt(bb, leftPos, rec.PoliceNeeded)

	return bb.Bytes(), nil
}

func deserializeRecord(buf []byte) (datastructure.CityRecord, error) {
	bb := bytes.NewBuffer(buf)
	rec := datastructure.CityRecord{}
	leftPos := 0
	var err error

	rec.City, err = GetString(bb, leftPos)
	if err != nil {
		return rec, err
	}
	leftPos += len([]byte(rec.City)) + 4 // +4 dari int panjang bytearray dari string

	if leftPos+16 > bb.Len() {
		return rec, fmt.Errorf("record truncated at offset %d", leftPos)
	}
	rec.Latitude = GetFloat(bb, leftPos)
	leftPos += 8

	rec.Longitude = GetFloat(bb, leftPos)
	leftPos += 8

	rec.RiskZone, err = GetString(bb, leftPos)
	if err != nil {
		return rec, err
	}
	leftPos += len([]byte(rec.RiskZone)) + 4

	if leftPos+4 > bb.Len() {
		return rec, fmt.Errorf("record truncated at offset %d", leftPos)
	}
	rec.PoliceNeeded = GetInt(bb, leftPos)

	return rec, nil
}
