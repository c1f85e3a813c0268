package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("a", 2)
	require.NoError(t, err)
	assert.False(t, isNew, "같은 이름 재등록은 isNew=false")

	value, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, value, "재등록은 덮어쓴다")

	_, ok = r.Get("missing")
	assert.False(t, ok)

	_, err = r.Register("", 3)
	assert.Error(t, err)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			_, _ = r.Register(key, n)
			_, _ = r.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		_, ok := r.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
	}
}
