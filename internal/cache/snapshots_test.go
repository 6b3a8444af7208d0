package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct{ n int }

func TestSnapshots_SetGetDelete(t *testing.T) {
	s := NewSnapshots[*snapshot]()

	_, ok := s.Get("all")
	assert.False(t, ok)

	v := &snapshot{n: 1}
	s.Set("all", v)
	got, ok := s.Get("all")
	require.True(t, ok)
	assert.Same(t, v, got)

	assert.True(t, s.Delete("all"))
	assert.False(t, s.Delete("all"))
	assert.Equal(t, 0, s.Len())
}

func TestSnapshots_Clear(t *testing.T) {
	s := NewSnapshots[int]()
	s.Set("b", 2)
	s.Set("a", 1)
	assert.Equal(t, []string{"a", "b"}, s.Keys())

	assert.Equal(t, 2, s.Clear())
	assert.Empty(t, s.Keys())
	assert.Equal(t, 0, s.Clear())
}

func TestSnapshots_GetOrComputeComputesOnce(t *testing.T) {
	s := NewSnapshots[*snapshot]()
	var calls atomic.Int32

	var wg sync.WaitGroup
	results := make([]*snapshot, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.GetOrCompute("all", func() *snapshot {
				calls.Add(1)
				return &snapshot{n: 7}
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}

	_, hit := s.GetOrCompute("all", func() *snapshot { return nil })
	assert.True(t, hit)
}
