// Package messaging implements the external messaging-envelope
// collaborator summarized in §3.4/§6.4: six string fields that are not
// part of the core value model but are always co-serialized alongside a
// store in the textual envelope (§4.3, §6.1).
package messaging

// DefaultVersion is the header's default version field.
const DefaultVersion = "1.0.0.0"

// Header carries the messaging envelope's routing metadata.
type Header struct {
	SourceID     string
	SourceSubID  string
	TargetID     string
	TargetSubID  string
	MessageType  string
	Version      string
}

// NewHeader returns a header with Version defaulted to DefaultVersion.
func NewHeader() Header {
	return Header{Version: DefaultVersion}
}

// SwapHeader exchanges (SourceID, SourceSubID) with (TargetID,
// TargetSubID) — the request/response pattern named in §6.4.
func (h *Header) SwapHeader() {
	h.SourceID, h.TargetID = h.TargetID, h.SourceID
	h.SourceSubID, h.TargetSubID = h.TargetSubID, h.SourceSubID
}
