package cell_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/stretchr/testify/assert"
)

func TestCoercionSaturation(t *testing.T) {
	c := cell.NewLong("v", 1<<40)
	original := c.ToString()

	v, ok := c.ToInt()
	assert.False(t, ok, "overflow flag must be set")
	assert.EqualValues(t, 1<<31-1, v, "clamped to int32 max")

	// Coercion never mutates the original cell.
	assert.Equal(t, original, c.ToString())
}

func TestCoercionSaturationNegative(t *testing.T) {
	c := cell.NewLong("v", -(1 << 40))
	v, ok := c.ToInt()
	assert.False(t, ok)
	assert.EqualValues(t, -(1 << 31), v)
}

func TestStringToNumericFailure(t *testing.T) {
	c := cell.NewString("s", "not-a-number")
	v, ok := c.ToInt()
	assert.False(t, ok)
	assert.EqualValues(t, 0, v)
}

func TestStringToBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "1": true, "t": true, "TRUE": true,
		"false": false, "0": false, "f": false, "": false,
	}
	for s, want := range cases {
		c := cell.NewString("b", s)
		v, ok := c.ToBool()
		assert.True(t, ok, s)
		assert.Equal(t, want, v, s)
	}
	_, ok := cell.NewString("b", "maybe").ToBool()
	assert.False(t, ok)
}

func TestNumericToBool(t *testing.T) {
	v, ok := cell.NewInt("x", 0).ToBool()
	assert.True(t, ok)
	assert.False(t, v)

	v, ok = cell.NewInt("x", 7).ToBool()
	assert.True(t, ok)
	assert.True(t, v)
}

func TestBoolToNumeric(t *testing.T) {
	v, ok := cell.NewBool("b", true).ToInt()
	assert.True(t, ok)
	assert.EqualValues(t, 1, v)

	v, ok = cell.NewBool("b", false).ToInt()
	assert.True(t, ok)
	assert.EqualValues(t, 0, v)
}
