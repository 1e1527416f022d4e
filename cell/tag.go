package cell

import "fmt"

// Tag is the numeric discriminator for one of the 16 logical types a Cell
// can hold. The wire byte, the tag code, and the in-memory discriminator
// are always the same integer (Invariant T1).
type Tag uint8

const (
	Null Tag = iota
	Bool
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LLong
	ULLong
	Float
	Double
	String
	Bytes
	Container
	Array

	tagCount = 16
)

// names indexes directly by Tag; keep in sync with the const block above.
var names = [tagCount]string{
	"null", "bool", "short", "ushort", "int", "uint",
	"long", "ulong", "llong", "ullong", "float", "double",
	"string", "bytes", "container", "array",
}

// String renders the tag's logical name, e.g. "long" or "container".
func (t Tag) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Valid reports whether t is one of the 16 defined tags.
func (t Tag) Valid() bool {
	return t < tagCount
}

// wireChars maps tag codes 0..15 to the textual envelope's one-character
// wire code: '0'..'9' then 'a'..'f' (§4.3).
var wireChars = [tagCount]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// WireChar returns the textual-envelope one-character wire code for t.
func (t Tag) WireChar() byte {
	if int(t) < len(wireChars) {
		return wireChars[t]
	}
	return '?'
}

// TagFromWireChar inverts WireChar. ok is false for any byte outside
// '0'-'9'/'a'-'f'.
func TagFromWireChar(c byte) (Tag, bool) {
	switch {
	case c >= '0' && c <= '9':
		return Tag(c - '0'), true
	case c >= 'a' && c <= 'f':
		return Tag(c-'a') + 10, true
	default:
		return Null, false
	}
}

// TagFromCode validates a raw wire/binary tag byte per the binary codec's
// InvalidTag rule (§4.4): any value above 15 is rejected.
func TagFromCode(code uint8) (Tag, error) {
	if code >= tagCount {
		return Null, fmt.Errorf("cell: tag code %d: %w", code, ErrInvalidTag)
	}
	return Tag(code), nil
}

// CollapseAlias implements Invariant T2. Go has no native distinction
// between a platform's "long" and "long long" integer aliases — both
// int64 and uint64 are always exactly 64 bits — so llong/ullong always
// alias long/ulong on every platform this module runs on. CollapseAlias
// returns the canonical storage tag, folding LLong into Long and ULLong
// into ULong, and returns the original tag otherwise.
//
// This is an unconditional collapse rather than a runtime platform check
// because Go gives no portable way to observe a host C ABI's long/long-long
// distinction, and none exists at the language level. See DESIGN.md.
func CollapseAlias(t Tag) Tag {
	switch t {
	case LLong:
		return Long
	case ULLong:
		return ULong
	default:
		return t
	}
}
