package cell_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagAlignment(t *testing.T) {
	for code := uint8(0); code < 16; code++ {
		tg, err := cell.TagFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, uint8(tg))
	}
	_, err := cell.TagFromCode(16)
	require.ErrorIs(t, err, cell.ErrInvalidTag)
}

func TestAliasCollapse(t *testing.T) {
	c := cell.NewLLong("x", 42)
	assert.Equal(t, cell.Long, c.Tag())
	v, ok := c.GetLong()
	assert.True(t, ok)
	assert.EqualValues(t, 42, v)

	u := cell.NewULLong("y", 7)
	assert.Equal(t, cell.ULong, u.Tag())
}

func TestTypedGetAbsentOnMismatch(t *testing.T) {
	c := cell.NewInt("n", 5)
	_, ok := c.GetString()
	assert.False(t, ok)
	v, ok := c.GetInt()
	assert.True(t, ok)
	assert.EqualValues(t, 5, v)
}

func TestCellEquality(t *testing.T) {
	a := cell.NewString("name", "AAPL")
	b := cell.NewString("name", "AAPL")
	c := cell.NewString("other", "AAPL")
	d := cell.NewString("name", "MSFT")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "name participates in equality")
	assert.False(t, a.Equal(d))
}

func TestBytesToStringHex(t *testing.T) {
	c := cell.NewBytes("b", []byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Equal(t, "deadbeef", c.ToString())
}

func TestArrayToString(t *testing.T) {
	arr := cell.NewArray("a", []*cell.Cell{
		cell.NewInt("", 1),
		cell.NewInt("", 2),
	})
	assert.Equal(t, "[1,2]", arr.ToString())
}
