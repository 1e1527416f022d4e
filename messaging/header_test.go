package messaging_test

import (
	"testing"

	"github.com/joshuapare/valuecore/messaging"
	"github.com/stretchr/testify/assert"
)

func TestNewHeaderDefaults(t *testing.T) {
	h := messaging.NewHeader()
	assert.Equal(t, messaging.DefaultVersion, h.Version)
}

func TestSwapHeader(t *testing.T) {
	h := messaging.Header{
		SourceID: "svcA", SourceSubID: "a1",
		TargetID: "svcB", TargetSubID: "b1",
	}
	h.SwapHeader()
	assert.Equal(t, "svcB", h.SourceID)
	assert.Equal(t, "b1", h.SourceSubID)
	assert.Equal(t, "svcA", h.TargetID)
	assert.Equal(t, "a1", h.TargetSubID)
}
