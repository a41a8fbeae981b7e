package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockers(t *testing.T) map[string]Locker {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return map[string]Locker{
		"redis":  NewRedisLocker(client, 5*time.Second),
		"memory": NewMemoryLocker(),
	}
}

func TestLocker_serializesSameKey(t *testing.T) {
	for name, locker := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				inside  int
				maxSeen int
			)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					unlock, err := locker.Lock(context.Background(), "pair")
					if !assert.NoError(t, err) {
						return
					}
					mu.Lock()
					inside++
					if inside > maxSeen {
						maxSeen = inside
					}
					mu.Unlock()

					time.Sleep(2 * time.Millisecond)

					mu.Lock()
					inside--
					mu.Unlock()
					unlock()
				}()
			}
			wg.Wait()
			assert.Equal(t, 1, maxSeen)
		})
	}
}

func TestLocker_timeoutWhileHeld(t *testing.T) {
	for name, locker := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			unlock, err := locker.Lock(context.Background(), "held")
			require.NoError(t, err)
			defer unlock()

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
			defer cancel()
			_, err = locker.Lock(ctx, "held")
			assert.ErrorIs(t, err, ErrLockTimeout)

			other, err := locker.Lock(context.Background(), "other")
			require.NoError(t, err)
			other()
		})
	}
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedisClient(mr.Addr(), "", 0)
	defer c.Close()
	assert.NoError(t, Ping(context.Background(), c))
}
