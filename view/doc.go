// Package view implements a zero-copy, lazily-decoded read path over a
// textual envelope (§4.3's "two parsing modes" taken to their conclusion):
// LoadFile memory-maps a file into a Buffer, Open parses only its header
// eagerly, and each cell is indexed as a CellView — a name, tag, and span
// into the buffer — left undecoded until As[T] is called on it. The
// buffer must outlive every CellView derived from it; Buffer.Close
// invalidates all of them.
package view
