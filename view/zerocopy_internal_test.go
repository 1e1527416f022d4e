package view

import (
	"bytes"
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/codec/envelope"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenDoesNotCopyBuffer guards the package's zero-copy claim directly:
// every indexed CellView's raw span must alias the Buffer's own backing
// array, never a copy of it.
func TestOpenDoesNotCopyBuffer(t *testing.T) {
	s := store.New()
	s.Add("name", cell.NewString("name", "quote"))
	raw := []byte(envelope.Encode(messaging.NewHeader(), s))

	buf := Wrap(raw)
	defer buf.Close()

	sv, err := Open(buf, envelope.Basic)
	require.NoError(t, err)

	nameView, ok := sv.Get("name")
	require.True(t, ok)
	require.NotEmpty(t, nameView.raw)
	valueOff := bytes.Index(raw, []byte("quote"))
	require.GreaterOrEqual(t, valueOff, 0)

	assert.Same(t, &raw[0], &buf.data[0], "buffer must not re-copy the bytes it was given")
	assert.Same(t, &raw[valueOff], &nameView.raw[0], "CellView.raw must alias the original buffer, not a copy")
}
