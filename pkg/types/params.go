package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/decor/pkg/errors"
)

// Params holds factory parameters as decoded from recipes or the command line
type Params map[string]interface{}

// String returns the parameter as a string
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", missing(key)
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return fmt.Sprint(val), nil
	}
}

// Float32 returns the parameter as a finite float32, parsing strings
func (p Params) Float32(key string) (float32, error) {
	f, err := p.number(key)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return 0, errors.Newf(errors.ErrInvalidInput, "parameter %q must be a finite number, got %v", key, p[key]).
			WithDetail("param", key)
	}
	return f, nil
}

// Length returns the parameter as a finite float32 that is not negative
func (p Params) Length(key string) (float32, error) {
	f, err := p.Float32(key)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, errors.Newf(errors.ErrInvalidInput, "parameter %q must not be negative, got %v", key, p[key]).
			WithDetail("param", key)
	}
	return f, nil
}

func (p Params) number(key string) (float32, error) {
	v, ok := p[key]
	if !ok {
		return 0, missing(key)
	}
	switch val := v.(type) {
	case float32:
		return val, nil
	case float64:
		return float32(val), nil
	case int:
		return float32(val), nil
	case int64:
		return float32(val), nil
	case uint64:
		return float32(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrInvalidInput, "parameter %q is not a number: %q", key, val)
		}
		return float32(f), nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "parameter %q has unsupported type %T", key, v)
	}
}

func missing(key string) error {
	return errors.Newf(errors.ErrInvalidInput, "missing parameter %q", key).WithDetail("param", key)
}
