package binary_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/codec/binary"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScenarioA() *store.Store {
	s := store.New()
	s.Add("symbol", cell.NewString("symbol", "AAPL"))
	s.Add("price", cell.NewDouble("price", 175.50))
	s.Add("volume", cell.NewLong("volume", 1000000))
	return s
}

func TestRoundTripBinary(t *testing.T) {
	s := buildScenarioA()
	encoded := binary.Encode(s)
	decoded, err := binary.Decode(encoded)
	require.NoError(t, err)

	require.Equal(t, s.Size(), decoded.Size())
	price, ok := decoded.Get("price")
	require.True(t, ok)
	v, ok := price.ToDouble()
	require.True(t, ok)
	assert.Equal(t, 175.50, v)
}

func TestRoundTripNestedContainer(t *testing.T) {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))
	outer := store.New()
	outer.Add("id", cell.NewInt("id", 7))
	outer.Add("addr", cell.NewContainer("addr", inner))

	encoded := binary.Encode(outer)
	decoded, err := binary.Decode(encoded)
	require.NoError(t, err)

	addrCell, ok := decoded.Get("addr")
	require.True(t, ok)
	con, ok := addrCell.GetContainer()
	require.True(t, ok)
	cityCell, ok := con.Get("city")
	require.True(t, ok)
	city, _ := cityCell.GetString()
	assert.Equal(t, "Seattle", city)
}

func TestCycleSafety(t *testing.T) {
	s := store.New()
	s.Add("id", cell.NewInt("id", 1))
	s.Add("self", cell.NewContainer("self", s))

	encoded := binary.Encode(s)
	decoded, err := binary.Decode(encoded)
	require.NoError(t, err)

	selfCell, ok := decoded.Get("self")
	require.True(t, ok)
	con, ok := selfCell.GetContainer()
	require.True(t, ok)
	assert.Equal(t, 0, con.Len(), "self-reference must encode as an empty container")
}

func TestBinaryTruncation(t *testing.T) {
	s := buildScenarioA()
	encoded := binary.Encode(s)
	truncated := encoded[:len(encoded)-4]

	_, err := binary.Decode(truncated)
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrTruncatedBuffer)
}

func TestInvalidTagByte(t *testing.T) {
	// name_length=0, empty name, tag byte 200 (invalid)
	buf := []byte{0, 0, 0, 0, 200}
	_, _, err := binary.DecodeCell(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrInvalidTag)
}

func TestAliasCollapseRoundTrip(t *testing.T) {
	llong := cell.NewLLong("x", 123456789)
	encoded := binary.EncodeCell(llong)
	// byte 4 is the tag byte (after 4-byte name length + 0-byte name)
	assert.Equal(t, byte(cell.Long), encoded[4])

	decoded, _, err := binary.DecodeCell(encoded)
	require.NoError(t, err)
	assert.Equal(t, cell.Long, decoded.Tag())
	v, _ := decoded.ToLLong()
	assert.EqualValues(t, 123456789, v)
}
