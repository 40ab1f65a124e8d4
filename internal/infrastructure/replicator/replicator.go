// Package replicator pushes snapshot copies to a remote store on a
// best-effort basis. Replication never blocks a local write and its failure
// never rolls one back; a failed push is logged and dropped.
package replicator

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Replicator fans out snapshot writes to a non-authoritative remote copy.
type Replicator interface {
	// Publish enqueues a snapshot for replication. It returns immediately.
	Publish(key string, value interface{})
	// Close stops the background worker and releases resources.
	Close() error
}

// Nop discards every snapshot. Used when no remote store is configured.
type Nop struct{}

func (Nop) Publish(string, interface{}) {}
func (Nop) Close() error                { return nil }

// RedisReplicator mirrors snapshots into redis keys. Pending snapshots are
// coalesced per key, so at most one replication per key is ever in flight
// and only the newest value is pushed.
type RedisReplicator struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration

	mu      sync.Mutex
	pending map[string][]byte
	wake    chan struct{}
	done    chan struct{}
	closed  sync.Once
	wg      sync.WaitGroup
}

// NewRedis creates a replicator backed by the redis instance at addr.
func NewRedis(addr, password string, db int, prefix string, timeout time.Duration) *RedisReplicator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	r := &RedisReplicator{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		prefix:  prefix,
		timeout: timeout,
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	r.wg.Add(1)
	go r.loop()
	return r
}

func (r *RedisReplicator) Publish(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("replicator: failed to encode snapshot %q: %v", key, err)
		return
	}

	r.mu.Lock()
	r.pending[key] = data
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *RedisReplicator) Close() error {
	r.closed.Do(func() { close(r.done) })
	r.wg.Wait()
	return r.client.Close()
}

func (r *RedisReplicator) loop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.done:
			return
		case <-r.wake:
			r.drain()
		}
	}
}

func (r *RedisReplicator) drain() {
	for {
		r.mu.Lock()
		var key string
		var data []byte
		for k, v := range r.pending {
			key, data = k, v
			break
		}
		if key == "" {
			r.mu.Unlock()
			return
		}
		delete(r.pending, key)
		r.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		err := r.client.Set(ctx, r.prefix+key, data, 0).Err()
		cancel()
		if err != nil {
			// Non-fatal: the local write stays authoritative.
			log.Printf("replicator: push of %q failed: %v", key, err)
		}
	}
}
