package envelope

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// decodeLegacyString returns s unchanged if it is valid UTF-8. Otherwise it
// assumes the bytes are legacy Windows-1252 — a common encoding for older
// writers of this grammar — and transcodes them, falling back to the raw
// string if that also fails. This never errors outright: a string cell
// with un-decodable bytes is better surfaced as mojibake than as a fatal
// parse failure, consistent with the basic guarantee elsewhere in this
// package.
func decodeLegacyString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, _, err := transform.String(charmap.Windows1252.NewDecoder(), s)
	if err != nil {
		return s
	}
	return decoded
}

// stripLegacyBraces tolerates the legacy double-brace container/array form
// "{{ ... }}" by repeatedly stripping an outer brace layer as long as it
// spans the whole remaining content. Canonical single-brace content
// (starting with "@header=" or a cell entry "[") is left untouched, and
// encoding never produces the double-brace form.
func stripLegacyBraces(inner string) string {
	for strings.HasPrefix(inner, "{") {
		block, pos, err := scanBraceBlock(inner, 0)
		if err != nil || pos != len(inner) {
			break
		}
		inner = unwrapOnce(block)
	}
	return inner
}
