//go:build windows

package view

import (
	"fmt"
	"os"
)

// LoadFile reads path fully into memory and returns a Buffer over it.
// Windows file mapping is not wired up; this falls back to a plain read,
// matching the teacher's own fallback behavior for this platform.
func LoadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("view: read %s: %w", path, err)
	}
	return &Buffer{data: data}, nil
}
