package json_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	jsoncodec "github.com/joshuapare/valuecore/codec/json"
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

func TestRoundTripJSON(t *testing.T) {
	s := buildScenarioA()
	data, err := jsoncodec.MarshalStore(s)
	require.NoError(t, err)

	decoded, err := jsoncodec.UnmarshalStore(data)
	require.NoError(t, err)

	price, ok := decoded.Get("price")
	require.True(t, ok)
	v, _ := price.ToDouble()
	assert.Equal(t, 175.50, v)
}

func TestJSONBytesAsHex(t *testing.T) {
	c := cell.NewBytes("blob", []byte{0xDE, 0xAD, 0xBE, 0xEF})
	data, err := jsoncodec.MarshalCell(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"deadbeef"`)

	decoded, err := jsoncodec.UnmarshalCell(data)
	require.NoError(t, err)
	v, ok := decoded.GetBytes()
	require.True(t, ok)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, v)
}

func TestJSONNestedContainer(t *testing.T) {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))
	outer := store.New()
	outer.Add("addr", cell.NewContainer("addr", inner))

	data, err := jsoncodec.MarshalStore(outer)
	require.NoError(t, err)

	decoded, err := jsoncodec.UnmarshalStore(data)
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

func TestToStringUsesJSONProjection(t *testing.T) {
	inner := store.New()
	inner.Add("n", cell.NewInt("n", 1))
	c := cell.NewContainer("c", inner)
	assert.Contains(t, c.ToString(), `"name":"n"`)
}
