//go:build !unix && !windows

package view

import (
	"fmt"
	"os"
)

// LoadFile reads path fully into memory and returns a Buffer over it, for
// platforms with neither a unix mmap path nor a windows one.
func LoadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("view: read %s: %w", path, err)
	}
	return &Buffer{data: data}, nil
}
