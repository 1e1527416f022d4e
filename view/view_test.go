package view_test

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/codec/envelope"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
	"github.com/joshuapare/valuecore/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() string {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))

	s := store.New()
	s.Add("name", cell.NewString("name", "quote"))
	s.Add("price", cell.NewDouble("price", 42.5))
	s.Add("tags", cell.NewArray("tags", []*cell.Cell{
		cell.NewInt("", 1),
		cell.NewInt("", 2),
	}))
	s.Add("addr", cell.NewContainer("addr", inner))

	h := messaging.NewHeader()
	h.SourceID = "feed"
	h.MessageType = "quote"
	return envelope.Encode(h, s)
}

func TestOpenIndexesWithoutDecoding(t *testing.T) {
	buf := view.Wrap([]byte(buildSample()))
	defer buf.Close()

	sv, err := view.Open(buf, envelope.Basic)
	require.NoError(t, err)
	assert.Equal(t, "feed", sv.Header().SourceID)
	assert.Equal(t, 4, sv.Len())
}

func TestCellViewAsScalar(t *testing.T) {
	buf := view.Wrap([]byte(buildSample()))
	defer buf.Close()

	sv, err := view.Open(buf, envelope.Basic)
	require.NoError(t, err)

	nameView, ok := sv.Get("name")
	require.True(t, ok)
	name, ok := view.As[string](nameView)
	require.True(t, ok)
	assert.Equal(t, "quote", name)

	priceView, ok := sv.Get("price")
	require.True(t, ok)
	price, ok := view.As[float64](priceView)
	require.True(t, ok)
	assert.Equal(t, 42.5, price)
}

func TestCellViewContainerLazyDescend(t *testing.T) {
	buf := view.Wrap([]byte(buildSample()))
	defer buf.Close()

	sv, err := view.Open(buf, envelope.Basic)
	require.NoError(t, err)

	addrView, ok := sv.Get("addr")
	require.True(t, ok)
	assert.Equal(t, cell.Container, addrView.Tag())

	nested, err := addrView.Container(envelope.Basic)
	require.NoError(t, err)
	cityView, ok := nested.Get("city")
	require.True(t, ok)
	city, ok := view.As[string](cityView)
	require.True(t, ok)
	assert.Equal(t, "Seattle", city)
}

func TestCellViewArrayElements(t *testing.T) {
	buf := view.Wrap([]byte(buildSample()))
	defer buf.Close()

	sv, err := view.Open(buf, envelope.Basic)
	require.NoError(t, err)

	tagsView, ok := sv.Get("tags")
	require.True(t, ok)
	elems, err := tagsView.Elements()
	require.NoError(t, err)
	require.Len(t, elems, 2)

	first, ok := view.As[int32](elems[0])
	require.True(t, ok)
	assert.Equal(t, int32(1), first)
}

func TestAsWrongTypeReturnsFalse(t *testing.T) {
	buf := view.Wrap([]byte(buildSample()))
	defer buf.Close()

	sv, err := view.Open(buf, envelope.Basic)
	require.NoError(t, err)

	priceView, ok := sv.Get("price")
	require.True(t, ok)
	_, ok = view.As[string](priceView)
	assert.False(t, ok)
}
