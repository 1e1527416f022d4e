package xml_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	xmlcodec "github.com/joshuapare/valuecore/codec/xml"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripXML(t *testing.T) {
	s := store.New()
	s.Add("symbol", cell.NewString("symbol", "AAPL"))
	s.Add("price", cell.NewDouble("price", 175.50))

	data, err := xmlcodec.MarshalStore(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `type="string"`)
	assert.Contains(t, string(data), `type="double"`)

	decoded, err := xmlcodec.UnmarshalStore(data)
	require.NoError(t, err)
	price, ok := decoded.Get("price")
	require.True(t, ok)
	v, _ := price.ToDouble()
	assert.Equal(t, 175.50, v)
}

func TestXMLNestedContainer(t *testing.T) {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))
	outer := cell.NewContainer("addr", inner)

	data, err := xmlcodec.MarshalCell(outer)
	require.NoError(t, err)

	decoded, err := xmlcodec.UnmarshalCell(data)
	require.NoError(t, err)
	con, ok := decoded.GetContainer()
	require.True(t, ok)
	cityCell, ok := con.Get("city")
	require.True(t, ok)
	city, _ := cityCell.GetString()
	assert.Equal(t, "Seattle", city)
}

func TestXMLUnknownTypeRejected(t *testing.T) {
	_, err := xmlcodec.UnmarshalCell([]byte(`<value name="x" type="nonsense">1</value>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrInvalidTag)
}
