//go:build unix

package view

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// LoadFile memory-maps path read-only and returns a Buffer over its
// contents. The mapping is released by Buffer.Close.
func LoadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("view: open %s: %w", path, err)
	}
	defer f.Close() // safe before return; the mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("view: stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return &Buffer{data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("view: %s too large to map (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("view: mmap %s: %w", path, err)
	}

	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil // double-unmap is a no-op
		}
		return err
	}
	return &Buffer{data: data, release: release}, nil
}
