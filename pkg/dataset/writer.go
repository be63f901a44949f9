package dataset

import (
	"fmt"
	"os"

	"github.com/safecity/safecity-api/pkg/compress"
	"github.com/safecity/safecity-api/pkg/datastructure"
	"github.com/safecity/safecity-api/pkg/kvdb"
)

// Write stores records at dst in the format dst resolves to. It is used by the importer
// to produce the table the server loads; the server itself never writes.
func Write(dst Source, records []datastructure.CityRecord) error {
	format, codec, err := dst.Resolve()
	if err != nil {
		return err
	}

	if format == FORMAT_BOLT {
		db, err := kvdb.Open(dst.Path, false)
		if err != nil {
			return err
		}
		kv := kvdb.NewKVDB(db)
		defer kv.Close()
		return kv.SaveRecords(records)
	}

	f, err := os.OpenFile(dst.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error when creating dataset file %s: %w", dst.Path, err)
	}
	defer f.Close()

	w, err := compress.NewWriter(f, codec)
	if err != nil {
		return err
	}

	if err := EncodeRaw(w, ToRawTable(records), format); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error when flushing dataset file %s: %w", dst.Path, err)
	}
	return f.Sync()
}
