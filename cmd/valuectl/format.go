package main

import (
	"fmt"

	"github.com/joshuapare/valuecore/codec/binary"
	"github.com/joshuapare/valuecore/codec/envelope"
	vjson "github.com/joshuapare/valuecore/codec/json"
	vxml "github.com/joshuapare/valuecore/codec/xml"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
)

// supportedFormats lists the encodings valuectl's --from/--to flags accept.
var supportedFormats = []string{"binary", "textual", "json", "xml"}

func decodeFormat(data []byte, format string, strict bool) (*store.Store, messaging.Header, error) {
	mode := envelope.Basic
	if strict {
		mode = envelope.Strict
	}

	switch format {
	case "binary":
		s, err := binary.Decode(data)
		return s, messaging.NewHeader(), err
	case "textual":
		env, err := envelope.ParseFull(string(data), mode)
		if env == nil {
			return nil, messaging.Header{}, err
		}
		return env.Store, env.Header, err
	case "json":
		s, err := vjson.UnmarshalStore(data)
		return s, messaging.NewHeader(), err
	case "xml":
		s, err := vxml.UnmarshalStore(data)
		return s, messaging.NewHeader(), err
	default:
		return nil, messaging.Header{}, fmt.Errorf("valuectl: unknown format %q (want one of %v)", format, supportedFormats)
	}
}

func encodeFormat(s *store.Store, h messaging.Header, format string) ([]byte, error) {
	switch format {
	case "binary":
		return binary.Encode(s), nil
	case "textual":
		return []byte(envelope.Encode(h, s)), nil
	case "json":
		return vjson.MarshalStore(s)
	case "xml":
		return vxml.MarshalStore(s)
	default:
		return nil, fmt.Errorf("valuectl: unknown format %q (want one of %v)", format, supportedFormats)
	}
}
