// Package xml implements the XML projection of the value model (§4.5):
// each cell renders as <value name="..." type="...">...</value>, with the
// type attribute carrying the tag's logical name (e.g. "double",
// "container") rather than its numeric code, and containers/arrays
// recursing as nested <value> children instead of character data. No DTD
// or XML Schema is committed to; this is a rendering, not a contract.
package xml
