package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/codec/envelope"
	"github.com/joshuapare/valuecore/messaging"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSampleEnvelope(t *testing.T) string {
	t.Helper()
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))

	s := store.New()
	s.Add("name", cell.NewString("name", "quote"))
	s.Add("tags", cell.NewArray("tags", []*cell.Cell{
		cell.NewInt("", 1),
		cell.NewInt("", 2),
	}))
	s.Add("addr", cell.NewContainer("addr", inner))

	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(envelope.Encode(messaging.NewHeader(), s)), 0o644))
	return path
}

func TestNewModelLoadsRootRows(t *testing.T) {
	path := writeSampleEnvelope(t)
	m, err := NewModel(path, "textual", 0)
	require.NoError(t, err)
	defer m.Close()

	assert.Len(t, m.rows, 3)
	assert.Equal(t, []string{"/"}, m.pathNames)
}

func TestDescendIntoContainerAndAscend(t *testing.T) {
	path := writeSampleEnvelope(t)
	m, err := NewModel(path, "textual", 0)
	require.NoError(t, err)
	defer m.Close()

	for i, r := range m.rows {
		if r.label == "addr" {
			m.cursor = i
		}
	}
	m.descend()
	assert.Equal(t, []string{"/", "addr"}, m.pathNames)
	require.Len(t, m.rows, 1)
	assert.Equal(t, "city", m.rows[0].label)

	m.ascend()
	assert.Equal(t, []string{"/"}, m.pathNames)
}

func TestDescendIntoArray(t *testing.T) {
	path := writeSampleEnvelope(t)
	m, err := NewModel(path, "textual", 0)
	require.NoError(t, err)
	defer m.Close()

	for i, r := range m.rows {
		if r.label == "tags" {
			m.cursor = i
		}
	}
	m.descend()
	require.Len(t, m.rows, 2)
	assert.Equal(t, "[0]", m.rows[0].label)
}

func TestAscendAtRootIsNoop(t *testing.T) {
	path := writeSampleEnvelope(t)
	m, err := NewModel(path, "textual", 0)
	require.NoError(t, err)
	defer m.Close()

	m.ascend()
	assert.Equal(t, []string{"/"}, m.pathNames)
	assert.Equal(t, "already at root", m.statusMessage)
}

func TestRefreshPicksUpFileChanges(t *testing.T) {
	path := writeSampleEnvelope(t)
	m, err := NewModel(path, "textual", 0)
	require.NoError(t, err)
	defer m.Close()

	s := store.New()
	s.Add("name", cell.NewString("name", "updated"))
	require.NoError(t, os.WriteFile(path, []byte(envelope.Encode(messaging.NewHeader(), s)), 0o644))

	m.refresh()
	require.Len(t, m.rows, 1)
	assert.Equal(t, "name", m.rows[0].label)
	assert.Equal(t, "updated", m.rows[0].c.ToString())
}
