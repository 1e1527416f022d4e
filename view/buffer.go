package view

import "fmt"

// Buffer is a non-owning view over a byte slice — either a file loaded by
// LoadFile (memory-mapped on unix, read into memory on other platforms) or
// a caller-supplied slice used as is (Wrap). Every CellView derived
// from a Buffer shares its backing array; none of them remain valid once
// Close has been called.
type Buffer struct {
	data    []byte
	release func() error
	closed  bool
}

// Wrap builds a Buffer over data without mapping any file. Close is a
// no-op; data must not be mutated while any CellView derived from it is
// still in use.
func Wrap(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the buffer's backing slice. The caller must not retain it
// past a call to Close.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of mapped/held bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Close releases the underlying mapping, if any. Every CellView derived
// from b is invalid after Close returns.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.release == nil {
		return nil
	}
	if err := b.release(); err != nil {
		return fmt.Errorf("view: release buffer: %w", err)
	}
	return nil
}
