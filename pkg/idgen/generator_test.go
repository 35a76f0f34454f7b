package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflakeGenerator_InvalidNode(t *testing.T) {
	_, err := NewSnowflakeGenerator(1024)
	require.Error(t, err)
}

func TestSnowflakeGenerator_UniqueAndIncreasing(t *testing.T) {
	g, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)

	prev := int64(0)
	seen := make(map[int64]struct{})
	for i := 0; i < 1000; i++ {
		id := g.GenerateID()
		assert.Greater(t, id, prev)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestSequence_Concurrent(t *testing.T) {
	s := NewSequence()

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.GenerateID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
	assert.Equal(t, int64(51), s.GenerateID())
}
