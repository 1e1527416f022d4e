package view

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/valuecore/messaging"
)

// Grammar markers, matching codec/envelope's (unexported there, so
// duplicated here rather than imported — see scanEscaped/scanBraceBlock
// in index.go for why the two packages' low-level parsing stays
// independent).
const (
	headerMarker = "@header="
	dataMarker   = ";@data="
)

// splitHeader scans a full envelope body's "@header={...};@data={...};"
// framing off s without copying it, returning the decoded header and the
// data block's span as a subslice of s.
func splitHeader(s []byte) (messaging.Header, []byte, error) {
	if !bytes.HasPrefix(s, []byte(headerMarker)) {
		return messaging.Header{}, nil, fmt.Errorf("view: missing %q", headerMarker)
	}
	pos := len(headerMarker)

	headerBlock, pos, err := scanBraceBlock(s, pos)
	if err != nil {
		return messaging.Header{}, nil, fmt.Errorf("view: header block: %w", err)
	}
	h := parseHeaderFields(unwrapOnce(headerBlock))

	if !bytes.HasPrefix(s[pos:], []byte(dataMarker)) {
		return messaging.Header{}, nil, fmt.Errorf("view: missing %q", dataMarker)
	}
	pos += len(dataMarker)

	dataBlock, _, err := scanBraceBlock(s, pos)
	if err != nil {
		return messaging.Header{}, nil, fmt.Errorf("view: data block: %w", err)
	}
	return h, unwrapOnce(dataBlock), nil
}

func parseHeaderFields(s []byte) messaging.Header {
	h := messaging.NewHeader()
	pos := 0
	for pos < len(s) {
		eq := bytes.IndexByte(s[pos:], '=')
		if eq < 0 {
			break
		}
		key := string(s[pos : pos+eq])
		pos += eq + 1
		if pos >= len(s) || s[pos] != '[' {
			break
		}
		pos++
		rawVal, newPos, err := scanEscaped(s, pos, "]")
		if err != nil {
			break
		}
		pos = newPos + 1 // past ']'
		if pos < len(s) && s[pos] == ';' {
			pos++
		}
		val := unescapeString(rawVal)
		switch key {
		case "source":
			h.SourceID = val
		case "source_sub":
			h.SourceSubID = val
		case "target":
			h.TargetID = val
		case "target_sub":
			h.TargetSubID = val
		case "message_type":
			h.MessageType = val
		case "version":
			h.Version = val
		}
	}
	return h
}
