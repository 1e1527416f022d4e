package main

import (
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleStore() *store.Store {
	s := store.New()
	s.Add("name", cell.NewString("name", "quote"))
	s.Add("price", cell.NewDouble("price", 42.5))
	return s
}

func TestEncodeDecodeRoundTripAllFormats(t *testing.T) {
	h := messaging.NewHeader()
	h.SourceID = "feed"

	for _, format := range supportedFormats {
		t.Run(format, func(t *testing.T) {
			s := buildSampleStore()
			data, err := encodeFormat(s, h, format)
			require.NoError(t, err)

			got, _, err := decodeFormat(data, format, false)
			require.NoError(t, err)

			nameCell, ok := got.Get("name")
			require.True(t, ok)
			name, _ := nameCell.GetString()
			assert.Equal(t, "quote", name)
		})
	}
}

func TestDecodeFormatUnknownFormat(t *testing.T) {
	_, _, err := decodeFormat([]byte("x"), "unknown", false)
	assert.Error(t, err)
}

func TestEncodeFormatUnknownFormat(t *testing.T) {
	_, err := encodeFormat(buildSampleStore(), messaging.NewHeader(), "unknown")
	assert.Error(t, err)
}
