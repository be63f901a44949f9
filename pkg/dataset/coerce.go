package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingCell = errors.New("missing value")
	ErrNotNumeric  = errors.New("value is not numeric")
	ErrNotFinite   = errors.New("value is not a finite number")
)

func coerceFloat(v interface{}) (float64, error) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, ErrMissingCell
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case []byte:
		return coerceFloat(string(x))
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, ErrMissingCell
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, x)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// coerceInt truncates fractional values toward zero.
func coerceInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, nil
		}
	}

	f, err := coerceFloat(v)
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(f)), nil
}

func coerceString(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", ErrMissingCell
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	default:
		return fmt.Sprint(x), nil
	}
}
