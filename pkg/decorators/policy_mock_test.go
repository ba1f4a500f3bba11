package decorators_test

import (
	"testing"

	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/decorators"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockPolicy records the questions a decorator asks its policy
type mockPolicy struct {
	mock.Mock
}

func (m *mockPolicy) Name() string { return "mock" }

func (m *mockPolicy) AdmitOnConstruction(candidate cycle.Kind, existing []cycle.Kind) (bool, error) {
	args := m.Called(candidate, existing)
	return args.Bool(0), args.Error(1)
}

func (m *mockPolicy) AdmitOnRender(candidate cycle.Kind, existing []cycle.Kind) (bool, error) {
	args := m.Called(candidate, existing)
	return args.Bool(0), args.Error(1)
}

func TestPolicyIsAskedAboutInheritedChain(t *testing.T) {
	inner, err := decorators.NewTransparent(shapes.NewCircle(1), 0.5, cycle.AllowAll{})
	require.NoError(t, err)

	policy := &mockPolicy{}
	inherited := []cycle.Kind{cycle.KindTransparent}
	policy.On("AdmitOnConstruction", cycle.KindColored, inherited).Return(true, nil).Once()
	policy.On("AdmitOnRender", cycle.KindColored, inherited).Return(false, nil)

	colored, err := decorators.NewColored(inner, "red", policy)
	require.NoError(t, err)
	assert.Equal(t, []cycle.Kind{cycle.KindTransparent, cycle.KindColored}, colored.Kinds())

	out, err := colored.Render()
	require.NoError(t, err)
	assert.Equal(t, "A circle of radius 1 has 50% transparency", out)

	policy.AssertExpectations(t)
}

func TestPolicyDroppingKindLeavesChainUnchanged(t *testing.T) {
	policy := &mockPolicy{}
	policy.On("AdmitOnConstruction", cycle.KindColored, []cycle.Kind{}).Return(false, nil)
	policy.On("AdmitOnRender", cycle.KindColored, []cycle.Kind{}).Return(true, nil)

	colored, err := decorators.NewColored(shapes.NewSquare(2), "red", policy)
	require.NoError(t, err)
	assert.Empty(t, colored.Kinds())
	assert.Equal(t, "A square with side 2 has the color red", colored.Describe())

	policy.AssertExpectations(t)
}

func TestPolicyErrorOnRender(t *testing.T) {
	policy := &mockPolicy{}
	policy.On("AdmitOnConstruction", mock.Anything, mock.Anything).Return(true, nil)
	policy.On("AdmitOnRender", mock.Anything, mock.Anything).
		Return(false, errors.New(errors.ErrCycle, "refused"))

	colored, err := decorators.NewColored(shapes.NewCircle(3), "red", policy)
	require.NoError(t, err)

	_, err = colored.Render()
	assert.True(t, errors.IsErrorCode(err, errors.ErrCycle))
	assert.Equal(t, "A circle of radius 3", colored.Describe())
}
