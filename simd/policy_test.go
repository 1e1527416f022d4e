package simd_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/simd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarPolicySum(t *testing.T) {
	p := simd.ScalarPolicy{}
	assert.Equal(t, float32(6), p.SumFloats([]float32{1, 2, 3}))
	assert.Equal(t, float64(6), p.SumDoubles([]float64{1, 2, 3}))
}

func TestScalarPolicyMinMax(t *testing.T) {
	p := simd.ScalarPolicy{}
	min, ok := p.MinFloat([]float32{3, 1, 2})
	require.True(t, ok)
	assert.Equal(t, float32(1), min)

	max, ok := p.MaxFloat([]float32{3, 1, 2})
	require.True(t, ok)
	assert.Equal(t, float32(3), max)

	_, ok = p.MinFloat(nil)
	assert.False(t, ok)
}

func TestSumArrayFloats(t *testing.T) {
	arr := cell.NewArray("xs", []*cell.Cell{
		cell.NewFloat("", 1.5),
		cell.NewFloat("", 2.5),
	})
	total, err := simd.SumArray(arr, simd.Default)
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)
}

func TestSumArrayRejectsMixedTags(t *testing.T) {
	arr := cell.NewArray("xs", []*cell.Cell{
		cell.NewFloat("", 1.5),
		cell.NewInt("", 2),
	})
	_, err := simd.SumArray(arr, simd.Default)
	assert.Error(t, err)
}

func TestSumArrayRejectsNonNumeric(t *testing.T) {
	arr := cell.NewArray("xs", []*cell.Cell{
		cell.NewString("", "nope"),
	})
	_, err := simd.SumArray(arr, simd.Default)
	assert.Error(t, err)
}
