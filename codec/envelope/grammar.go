package envelope

// Grammar markers (§4.3). Decoding tolerates the legacy double-brace form
// described in spec §9's open questions; encoding always emits the
// canonical single-brace form below.
const (
	headerMarker = "@header="
	dataMarker   = ";@data="
	trailer      = ";"
)

// headerFieldOrder is the fixed emission order for header fields.
// Unknown fields encountered on decode are ignored (§4.3).
var headerFieldOrder = []string{
	"source", "source_sub", "target", "target_sub", "message_type", "version",
}

// Mode controls the decoder's error-propagation policy (§7).
type Mode int

const (
	// Basic is the default: malformed cells decode as null cells with
	// their declared name, parsing continues, and a summary error
	// (possibly wrapping several issues) is returned alongside the
	// result.
	Basic Mode = iota
	// Strict fails fast on the first malformed cell or header issue.
	Strict
)

// ParseMode names the two parsing granularities (§4.3). No function in
// this package takes a ParseMode: ParseFull and ParseHeaderOnly implement
// the two granularities as separate entry points.
type ParseMode int

const (
	// Full parses both the header and data blocks eagerly (ParseFull).
	Full ParseMode = iota
	// HeaderOnly parses the header block and retains the data block's
	// byte span, unparsed, for later lazy consumption (ParseHeaderOnly,
	// then ParseDataSpan).
	HeaderOnly
)
