package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/safecity/safecity-api/pkg"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

type Format string

const (
	FORMAT_AUTO    Format = "auto"
	FORMAT_MSGPACK Format = "msgpack"
	FORMAT_JSON    Format = "json"
	FORMAT_CSV     Format = "csv"
	FORMAT_BOLT    Format = "bolt"
)

var ErrUnknownFormat = errors.New("unknown dataset format")

// ParseFormat accepts a format name as written in configuration. The empty string
// means FORMAT_AUTO.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FORMAT_AUTO:
		return FORMAT_AUTO, nil
	case FORMAT_MSGPACK, FORMAT_JSON, FORMAT_CSV, FORMAT_BOLT:
		return f, nil
	default:
		return "", pkg.WrapErrorf(ErrUnknownFormat, pkg.ErrBadParamInput, "dataset format %q", s)
	}
}

// DetectFormat picks the table format from the file extension. path must already have
// any compression extension stripped.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".msgpack", ".mpk", ".mp":
		return FORMAT_MSGPACK, nil
	case ".json":
		return FORMAT_JSON, nil
	case ".csv":
		return FORMAT_CSV, nil
	case ".db", ".bolt":
		return FORMAT_BOLT, nil
	default:
		return "", pkg.WrapErrorf(ErrUnknownFormat, pkg.ErrBadParamInput,
			"cannot detect dataset format from extension %q of %s", ext, path)
	}
}

// DecodeRaw reads one table from r. FORMAT_BOLT is not a stream format and is rejected.
func DecodeRaw(r io.Reader, format Format) (RawTable, error) {
	var raw RawTable
	switch format {
	case FORMAT_MSGPACK:
		if err := msgpack.NewDecoder(r).Decode(&raw); err != nil {
			return RawTable{}, fmt.Errorf("error when unmarshalling msgpack table: %w", err)
		}
	case FORMAT_JSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return RawTable{}, fmt.Errorf("error when unmarshalling json table: %w", err)
		}
	case FORMAT_CSV:
		return decodeCSV(r)
	default:
		return RawTable{}, pkg.WrapErrorf(ErrUnknownFormat, pkg.ErrBadParamInput, "format %s is not a stream format", format)
	}

	if raw.Columns == nil {
		return RawTable{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "%s payload is not a table: no columns", format)
	}
	return raw, nil
}

// EncodeRaw writes raw to w in the given stream format.
func EncodeRaw(w io.Writer, raw RawTable, format Format) error {
	switch format {
	case FORMAT_MSGPACK:
		if err := msgpack.NewEncoder(w).Encode(&raw); err != nil {
			return fmt.Errorf("error when marshalling msgpack table: %w", err)
		}
		return nil
	case FORMAT_JSON:
		if err := json.NewEncoder(w).Encode(&raw); err != nil {
			return fmt.Errorf("error when marshalling json table: %w", err)
		}
		return nil
	case FORMAT_CSV:
		return encodeCSV(w, raw)
	default:
		return pkg.WrapErrorf(ErrUnknownFormat, pkg.ErrBadParamInput, "format %s is not a stream format", format)
	}
}

func decodeCSV(r io.Reader) (RawTable, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return RawTable{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "csv payload is not a table: no header")
	}
	if err != nil {
		return RawTable{}, fmt.Errorf("error when reading csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	raw := RawTable{Columns: header}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return RawTable{}, fmt.Errorf("error when reading csv row: %w", err)
		}
		row := make([]interface{}, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		raw.Data = append(raw.Data, row)
	}
	return raw, nil
}

func encodeCSV(w io.Writer, raw RawTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(raw.Columns); err != nil {
		return err
	}

	fields := make([]string, len(raw.Columns))
	for _, row := range raw.Data {
		for i := range fields {
			fields[i] = ""
			if i < len(row) && row[i] != nil {
				fields[i] = formatCell(row[i])
			}
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		s, _ := coerceString(x)
		return s
	}
}
