package types_test

import (
	"math"
	"testing"

	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFloat32(t *testing.T) {
	params := types.Params{
		"f32":    float32(1.5),
		"f64":    2.25,
		"int":    3,
		"int64":  int64(4),
		"uint64": uint64(5),
		"str":    " 0.5 ",
		"bad":    "wide",
		"bool":   true,
		"nan":    "NaN",
		"inf":    math.Inf(1),
		"huge":   1e300,
		"neginf": "-Inf",
	}

	tests := []struct {
		key  string
		want float32
	}{
		{"f32", 1.5},
		{"f64", 2.25},
		{"int", 3},
		{"int64", 4},
		{"uint64", 5},
		{"str", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := params.Float32(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, key := range []string{"bad", "bool", "absent", "nan", "inf", "huge", "neginf"} {
		t.Run("invalid "+key, func(t *testing.T) {
			_, err := params.Float32(key)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestParamsLength(t *testing.T) {
	params := types.Params{"zero": 0, "radius": "2.5", "negative": -3, "negstr": "-0.5", "nan": "nan"}

	got, err := params.Length("radius")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), got)

	got, err = params.Length("zero")
	require.NoError(t, err)
	assert.Zero(t, got)

	for _, key := range []string{"negative", "negstr", "nan"} {
		t.Run("invalid "+key, func(t *testing.T) {
			_, err := params.Length(key)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
			assert.Equal(t, key, errors.GetErrorDetails(err)["param"])
		})
	}
}

func TestParamsString(t *testing.T) {
	params := types.Params{"color": "red", "n": 7}

	got, err := params.String("color")
	require.NoError(t, err)
	assert.Equal(t, "red", got)

	got, err = params.String("n")
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	_, err = params.String("missing")
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["param"])
}
