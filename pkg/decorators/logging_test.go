package decorators_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/decorators"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/shapes"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	return &buf
}

func TestConstructionIsTraced(t *testing.T) {
	buf := captureLogs(t)

	red, err := decorators.NewColored(shapes.NewCircle(2), "red", cycle.AbsorbDuplicate{})
	require.NoError(t, err)
	_, err = decorators.NewColored(red, "blue", cycle.AbsorbDuplicate{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"decorators"`)
	assert.Contains(t, out, `"chain":"colored > colored"`)
	assert.Contains(t, out, `"policy":"absorb"`)
	assert.Contains(t, out, "Decorator constructed")
}

func TestSuppressedEffectIsWarned(t *testing.T) {
	buf := captureLogs(t)

	policy := &mockPolicy{}
	policy.On("AdmitOnConstruction", mock.Anything, mock.Anything).Return(true, nil)
	policy.On("AdmitOnRender", mock.Anything, mock.Anything).
		Return(false, errors.New(errors.ErrCycle, "refused"))

	colored, err := decorators.NewColored(shapes.NewSquare(1), "red", policy)
	require.NoError(t, err)
	assert.Equal(t, "A square with side 1", colored.Describe())

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "Decorator effect suppressed")
	assert.Contains(t, buf.String(), `"kind":"colored"`)
}
