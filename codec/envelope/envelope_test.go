package envelope_test

import (
	"strings"
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/codec/envelope"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScenarioA() (messaging.Header, *store.Store) {
	h := messaging.NewHeader()
	h.SourceID = "svcA"
	h.TargetID = "svcB"
	h.MessageType = "quote"

	s := store.New()
	s.Add("symbol", cell.NewString("symbol", "AAPL"))
	s.Add("price", cell.NewDouble("price", 175.50))
	s.Add("volume", cell.NewLong("volume", 1000000))
	return h, s
}

func TestRoundTripTextual(t *testing.T) {
	h, s := buildScenarioA()
	text := envelope.Encode(h, s)

	assert.True(t, strings.HasPrefix(text, "@header={"))
	assert.Contains(t, text, ";@data={")
	assert.True(t, strings.HasSuffix(text, "};"))

	decoded, err := envelope.ParseFull(text, envelope.Basic)
	require.NoError(t, err)
	assert.Equal(t, "svcA", decoded.Header.SourceID)
	assert.Equal(t, "svcB", decoded.Header.TargetID)
	assert.Equal(t, "quote", decoded.Header.MessageType)

	symbol, ok := decoded.Store.Get("symbol")
	require.True(t, ok)
	v, _ := symbol.GetString()
	assert.Equal(t, "AAPL", v)

	price, ok := decoded.Store.Get("price")
	require.True(t, ok)
	pv, _ := price.ToDouble()
	assert.Equal(t, 175.50, pv)

	volume, ok := decoded.Store.Get("volume")
	require.True(t, ok)
	vv, _ := volume.ToLong()
	assert.EqualValues(t, 1000000, vv)
}

func TestRoundTripNestedContainerTextual(t *testing.T) {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))
	outer := store.New()
	outer.Add("id", cell.NewInt("id", 7))
	outer.Add("addr", cell.NewContainer("addr", inner))

	text := envelope.Encode(messaging.NewHeader(), outer)
	decoded, err := envelope.ParseFull(text, envelope.Strict)
	require.NoError(t, err)

	addrCell, ok := decoded.Store.Get("addr")
	require.True(t, ok)
	con, ok := addrCell.GetContainer()
	require.True(t, ok)
	cityCell, ok := con.Get("city")
	require.True(t, ok)
	city, _ := cityCell.GetString()
	assert.Equal(t, "Seattle", city)
}

func TestRoundTripArrayTextual(t *testing.T) {
	s := store.New()
	s.Add("nums", cell.NewArray("nums", []*cell.Cell{
		cell.NewInt("", 1),
		cell.NewInt("", 2),
		cell.NewInt("", 3),
	}))

	text := envelope.Encode(messaging.NewHeader(), s)
	decoded, err := envelope.ParseFull(text, envelope.Strict)
	require.NoError(t, err)

	numsCell, ok := decoded.Store.Get("nums")
	require.True(t, ok)
	arr, ok := numsCell.GetArray()
	require.True(t, ok)
	require.Len(t, arr, 3)
	v, _ := arr[1].ToInt()
	assert.EqualValues(t, 2, v)
}

func TestCycleSafetyTextual(t *testing.T) {
	s := store.New()
	s.Add("id", cell.NewInt("id", 1))
	s.Add("self", cell.NewContainer("self", s))

	text := envelope.Encode(messaging.NewHeader(), s)
	decoded, err := envelope.ParseFull(text, envelope.Basic)
	require.NoError(t, err)

	selfCell, ok := decoded.Store.Get("self")
	require.True(t, ok)
	con, ok := selfCell.GetContainer()
	require.True(t, ok)
	assert.Equal(t, 0, con.Len(), "self-reference must encode as an empty nested envelope")
}

func TestBasicGuaranteeMalformedCell(t *testing.T) {
	text := "@header={source=[a];source_sub=[];target=[];target_sub=[];message_type=[];version=[1.0.0.0];};" +
		"@data={[good,4,7];[bad,z,oops];[also_good,0,];};"

	decoded, err := envelope.ParseFull(text, envelope.Basic)
	require.Error(t, err, "a summary error is still returned alongside a usable result")
	require.NotNil(t, decoded)

	good, ok := decoded.Store.Get("good")
	require.True(t, ok)
	v, _ := good.ToInt()
	assert.EqualValues(t, 7, v)

	bad, ok := decoded.Store.Get("bad")
	require.True(t, ok)
	assert.Equal(t, cell.Null, bad.Tag(), "a malformed cell decodes as null rather than aborting the whole envelope")

	alsoGood, ok := decoded.Store.Get("also_good")
	require.True(t, ok)
	assert.Equal(t, cell.Null, alsoGood.Tag())
}

func TestStrictModeFailsFast(t *testing.T) {
	text := "@header={source=[a];source_sub=[];target=[];target_sub=[];message_type=[];version=[1.0.0.0];};" +
		"@data={[good,4,7];[bad,z,oops];};"

	_, err := envelope.ParseFull(text, envelope.Strict)
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrInvalidTag)
}

func TestHeaderOnlyLazyParse(t *testing.T) {
	h, s := buildScenarioA()
	text := envelope.Encode(h, s)

	partial, err := envelope.ParseHeaderOnly(text, envelope.Basic)
	require.NoError(t, err)
	assert.Equal(t, "svcA", partial.Header.SourceID)
	assert.NotEmpty(t, partial.DataSpan)

	st, err := envelope.ParseDataSpan(partial.DataSpan, envelope.Basic)
	require.NoError(t, err)
	symbol, ok := st.Get("symbol")
	require.True(t, ok)
	v, _ := symbol.GetString()
	assert.Equal(t, "AAPL", v)
}

func TestLegacyDoubleBraceContainer(t *testing.T) {
	// A legacy writer double-wraps the nested envelope for a container
	// value; canonical encoding never produces this, but decode must
	// tolerate it (§9).
	text := "@header={source=[];source_sub=[];target=[];target_sub=[];message_type=[];version=[];};" +
		"@data={[addr,e,{{@header={source=[];source_sub=[];target=[];target_sub=[];message_type=[];version=[];};@data={[city,c,Seattle];};}}];};"

	decoded, err := envelope.ParseFull(text, envelope.Strict)
	require.NoError(t, err)

	addrCell, ok := decoded.Store.Get("addr")
	require.True(t, ok)
	con, ok := addrCell.GetContainer()
	require.True(t, ok)
	cityCell, ok := con.Get("city")
	require.True(t, ok)
	city, _ := cityCell.GetString()
	assert.Equal(t, "Seattle", city)
}

func TestEscapedSpecialCharactersRoundTrip(t *testing.T) {
	s := store.New()
	s.Add("note", cell.NewString("note", "a;b]c,d{e}f\\g"))

	text := envelope.Encode(messaging.NewHeader(), s)
	decoded, err := envelope.ParseFull(text, envelope.Strict)
	require.NoError(t, err)

	note, ok := decoded.Store.Get("note")
	require.True(t, ok)
	v, _ := note.GetString()
	assert.Equal(t, "a;b]c,d{e}f\\g", v)
}
