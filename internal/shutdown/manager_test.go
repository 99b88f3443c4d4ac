package shutdown

import (
	"testing"
	"time"

	"gwen/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestManager_StopsInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NewNop(), time.Second)

	var order []string
	m.Register("first", Func(func() { order = append(order, "first") }))
	m.Register("second", Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestManager_SlowComponentTimesOut(t *testing.T) {
	m := NewManager(logger.NewNop(), 20*time.Millisecond)
	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
}
