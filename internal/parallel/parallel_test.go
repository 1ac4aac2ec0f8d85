package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	var counter int64
	n := 1000
	ForChunks(n, func(start, end int) {
		atomic.AddInt64(&counter, int64(end-start))
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestForChunks_Sequential(t *testing.T) {
	var calls int
	ForChunks(100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	}, Sequential())
	assert.Equal(t, 1, calls)
}

func TestForChunks_CoversRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 10}
	n := 95
	hits := make([]int32, n)

	var mu sync.Mutex
	var chunks int
	ForChunks(n, func(start, end int) {
		mu.Lock()
		chunks++
		mu.Unlock()
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
	assert.Greater(t, chunks, 1)
}

func TestForChunks_SmallInputRunsInline(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}
	var calls int
	ForChunks(10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	}, cfg)
	assert.Equal(t, 1, calls)
}

func TestForChunks_Empty(t *testing.T) {
	ForChunks(0, func(int, int) { t.Fatal("must not be called") }, DefaultConfig())
}
