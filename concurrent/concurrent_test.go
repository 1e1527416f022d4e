package concurrent_test

import (
	"sync"
	"testing"
	"time"

	"github.com/joshuapare/valuecore/cell"
	"github.com/joshuapare/valuecore/concurrent"
	"github.com/joshuapare/valuecore/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeStoreConcurrentAccess(t *testing.T) {
	ss := concurrent.NewSafeStore(store.New())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ss.Add("k", cell.NewInt("k", int32(i)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, ss.Len())
}

func TestSnapshotIsolation(t *testing.T) {
	ss := concurrent.NewSafeStore(store.New())
	ss.Add("price", cell.NewDouble("price", 1.0))

	reader := concurrent.NewSnapshotReader(ss)

	// Mutate the source after the snapshot was taken; the reader must
	// not observe the change until Refresh is called.
	ss.Set("price", cell.NewDouble("price", 2.0))

	c, ok := reader.Get("price")
	require.True(t, ok)
	v, _ := c.ToDouble()
	assert.Equal(t, 1.0, v, "reader must still see the snapshot taken at construction")

	reader.Refresh()
	c, ok = reader.Get("price")
	require.True(t, ok)
	v, _ = c.ToDouble()
	assert.Equal(t, 2.0, v, "reader must observe the new value after Refresh")
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	inner := store.New()
	inner.Add("city", cell.NewString("city", "Seattle"))
	ss := concurrent.NewSafeStore(store.New())
	ss.Add("addr", cell.NewContainer("addr", inner))

	reader := concurrent.NewSnapshotReader(ss)

	inner.Set("city", cell.NewString("city", "Portland"))

	addrCell, ok := reader.Get("addr")
	require.True(t, ok)
	con, ok := addrCell.GetContainer()
	require.True(t, ok)
	cityCell, ok := con.Get("city")
	require.True(t, ok)
	city, _ := cityCell.GetString()
	assert.Equal(t, "Seattle", city, "snapshot clone must be unaffected by mutation of the nested store it was cloned from")
}

func TestAutoRefreshReaderStop(t *testing.T) {
	ss := concurrent.NewSafeStore(store.New())
	ss.Add("count", cell.NewInt("count", 0))

	reader := concurrent.NewAutoRefreshReader(ss, 5*time.Millisecond)
	defer reader.Stop()

	ss.Set("count", cell.NewInt("count", 1))

	require.Eventually(t, func() bool {
		c, ok := reader.Get("count")
		if !ok {
			return false
		}
		v, _ := c.ToInt()
		return v == 1
	}, time.Second, time.Millisecond, "auto-refresh reader should eventually observe the updated value")

	reader.Stop() // idempotent
}
