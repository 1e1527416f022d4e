package envelope

import "strings"

// escapePairs lists every character the textual grammar must not see
// unescaped inside a string value. The spec (§4.3) names ']', ';', ',',
// newline, and backslash; this implementation adds '{' and '}' so that
// balanced-brace scanning of nested container/array values is always
// well-defined even when a string payload itself contains literal braces
// (see DESIGN.md).
var escapePairs = [][2]string{
	{"\\", "\\\\"}, // backslash first, so later substitutions aren't re-escaped
	{"]", "\\]"},
	{";", "\\;"},
	{",", "\\,"},
	{"\n", "\\n"},
	{"{", "\\{"},
	{"}", "\\}"},
}

// escapeString applies every substitution in escapePairs, in order.
func escapeString(s string) string {
	for _, p := range escapePairs {
		s = strings.ReplaceAll(s, p[0], p[1])
	}
	return s
}

// unescapeString inverts escapeString. It scans once, left to right,
// rather than running ReplaceAll per pair in reverse, since the
// substitutions are not independent (the backslash escape for "\\"
// would otherwise consume parts of other escape sequences).
func unescapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case ']':
			b.WriteByte(']')
		case ';':
			b.WriteByte(';')
		case ',':
			b.WriteByte(',')
		case 'n':
			b.WriteByte('\n')
		case '{':
			b.WriteByte('{')
		case '}':
			b.WriteByte('}')
		default:
			// Unknown escape: keep both characters verbatim rather
			// than silently dropping the backslash.
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
		}
		i++
	}
	return b.String()
}
