package replicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNopDiscards(t *testing.T) {
	var r Replicator = Nop{}
	r.Publish("pos_items", []string{"a"})
	assert.NoError(t, r.Close())
}

func TestPublishNeverBlocks(t *testing.T) {
	// Unreachable redis: every push fails, but Publish must still return
	// immediately and Close must drain cleanly.
	r := NewRedis("127.0.0.1:1", "", 0, "test:", 50*time.Millisecond)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			r.Publish("pos_sales", map[string]int{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked")
	}

	assert.NoError(t, r.Close())
}

func TestPendingCoalesces(t *testing.T) {
	r := &RedisReplicator{
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	// No worker is running, so pending accumulates.
	for i := 0; i < 10; i++ {
		r.Publish("pos_settings", map[string]int{"series": i})
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Len(t, r.pending, 1)
}
