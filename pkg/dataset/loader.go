package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/safecity/safecity-api/pkg"
	"github.com/safecity/safecity-api/pkg/compress"
	"github.com/safecity/safecity-api/pkg/datastructure"
	"github.com/safecity/safecity-api/pkg/kvdb"
)

// Source describes where the prediction table lives.
type Source struct {
	Path   string
	Format Format
}

// Resolve fills in the format and compression codec of the source. FORMAT_AUTO is
// replaced by the format detected from the file extension.
func (s Source) Resolve() (Format, compress.Codec, error) {
	codec, base := compress.DetectCodec(s.Path)
	format := s.Format
	if format == "" || format == FORMAT_AUTO {
		detected, err := DetectFormat(base)
		if err != nil {
			return "", compress.NONE, err
		}
		format = detected
	}

	if format == FORMAT_BOLT && codec != compress.NONE {
		return "", compress.NONE, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"bolt snapshot %s cannot be %s compressed", s.Path, codec)
	}
	return format, codec, nil
}

// Load reads the whole table described by src. It is called once at startup. Any
// error means the server must not serve traffic.
func Load(src Source) (*Table, error) {
	format, codec, err := src.Resolve()
	if err != nil {
		return nil, err
	}

	var records []datastructure.CityRecord
	if format == FORMAT_BOLT {
		records, err = loadBolt(src.Path)
	} else {
		records, err = loadFile(src.Path, format, codec)
	}
	if err != nil {
		return nil, err
	}

	return NewTable(records), nil
}

func openDataset(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pkg.WrapErrorf(err, pkg.ErrNotFound, "dataset file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error when opening dataset file %s: %w", path, err)
	}
	return f, nil
}

func loadFile(path string, format Format, codec compress.Codec) ([]datastructure.CityRecord, error) {
	f, err := openDataset(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := compress.NewReader(f, codec)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	raw, err := DecodeRaw(r, format)
	if err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", path, err)
	}

	records, err := raw.Records()
	if err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", path, err)
	}
	return records, nil
}

func loadBolt(path string) ([]datastructure.CityRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkg.WrapErrorf(err, pkg.ErrNotFound, "dataset snapshot %s", path)
		}
		return nil, err
	}

	db, err := kvdb.Open(path, true)
	if err != nil {
		return nil, err
	}
	kv := kvdb.NewKVDB(db)
	defer kv.Close()

	records, err := kv.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("dataset snapshot %s: %w", path, err)
	}
	return records, nil
}
