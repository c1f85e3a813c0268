package setsvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"construct_works/internal/api/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore map 기반 ConfigStore
type fakeStore struct {
	mu      sync.Mutex
	values  map[string]string
	saveErr error
	loads   int
}

func (f *fakeStore) LoadAll(_ context.Context) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	copied := make(map[string]string, len(f.values))
	for k, v := range f.values {
		copied[k] = v
	}
	return copied, nil
}

func (f *fakeStore) Save(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.values[key] = value
	return nil
}

func TestSettingLazyLoadOnce(t *testing.T) {
	store := &fakeStore{values: map[string]string{"site.default": "A현장"}}
	svc := NewSettingService(store)

	value, ok, err := svc.Get(context.Background(), "site.default")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A현장", value)

	_, _, err = svc.Get(context.Background(), "site.default")
	require.NoError(t, err)
	assert.Equal(t, 1, store.loads, "로드는 첫 접근 때 한 번만")
}

func TestSettingSetNotifiesFullMap(t *testing.T) {
	store := &fakeStore{values: map[string]string{"a": "1"}}
	svc := NewSettingService(store)

	var received []map[string]string
	svc.Subscribe(func(values map[string]string) {
		received = append(received, values)
	})

	require.NoError(t, svc.Set(context.Background(), "b", "2"))
	require.Len(t, received, 1)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, received[0])

	// 통지받은 사본을 고쳐도 내부 상태는 안 변한다
	received[0]["a"] = "oops"
	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", all["a"])
}

func TestSettingSetManySingleNotification(t *testing.T) {
	store := &fakeStore{values: map[string]string{}}
	svc := NewSettingService(store)

	notified := 0
	svc.Subscribe(func(map[string]string) { notified++ })

	require.NoError(t, svc.SetMany(context.Background(), map[string]string{
		"x": "1",
		"y": "2",
	}))
	assert.Equal(t, 1, notified)
	assert.Equal(t, "1", store.values["x"])
	assert.Equal(t, "2", store.values["y"])
}

func TestSettingSaveFailureKeepsCache(t *testing.T) {
	store := &fakeStore{values: map[string]string{"a": "1"}}
	svc := NewSettingService(store)

	// 먼저 로드시킨다
	_, err := svc.All(context.Background())
	require.NoError(t, err)

	store.saveErr = errors.New("write failed")
	err = svc.Set(context.Background(), "a", "changed")
	require.Error(t, err)

	value, ok, err := svc.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value, "저장 실패 시 캐시는 이전 값 유지")
}

func TestSettingSubscriberPanicIsolated(t *testing.T) {
	store := &fakeStore{values: map[string]string{}}
	svc := NewSettingService(store)

	svc.Subscribe(func(map[string]string) { panic("boom") })

	called := false
	svc.Subscribe(func(map[string]string) { called = true })

	require.NoError(t, svc.Set(context.Background(), "k", "v"))
	assert.True(t, called, "한 구독자의 panic이 다른 구독자를 막지 않는다")
}

func TestSettingSubscriberReentrantRead(t *testing.T) {
	store := &fakeStore{values: map[string]string{"a": "1"}}
	svc := NewSettingService(store)

	// 구독자가 통지 중에 다시 서비스를 읽어도 deadlock이 없어야 한다
	var seen string
	svc.Subscribe(func(map[string]string) {
		value, ok, err := svc.Get(context.Background(), "b")
		require.NoError(t, err)
		require.True(t, ok)
		seen = value

		_, err = svc.All(context.Background())
		require.NoError(t, err)
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, svc.Set(context.Background(), "b", "2"))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("구독자 재진입에서 Set이 끝나지 않았습니다")
	}
	assert.Equal(t, "2", seen)
}

func TestSettingInvalidateReloadsFromStore(t *testing.T) {
	store := &fakeStore{values: map[string]string{"report.chunk": "20"}}
	svc := NewSettingService(store)

	value, _, err := svc.Get(context.Background(), "report.chunk")
	require.NoError(t, err)
	assert.Equal(t, "20", value)
	assert.Equal(t, 1, store.loads)

	// /config-items CRUD처럼 서비스를 거치지 않고 저장소만 바뀐 상황
	store.mu.Lock()
	store.values["report.chunk"] = "50"
	store.mu.Unlock()

	svc.Invalidate()

	value, _, err = svc.Get(context.Background(), "report.chunk")
	require.NoError(t, err)
	assert.Equal(t, "50", value, "무효화 후에는 저장소의 최신 값을 읽는다")
	assert.Equal(t, 2, store.loads)
}

func TestSettingWatchCollectionInvalidates(t *testing.T) {
	store := &fakeStore{values: map[string]string{"pay.round": "floor"}}
	svc := NewSettingService(store)
	svc.WatchCollection("cw_config_items")

	_, _, err := svc.Get(context.Background(), "pay.round")
	require.NoError(t, err)

	store.mu.Lock()
	store.values["pay.round"] = "half-up"
	store.mu.Unlock()

	events.EmitDataChanged(context.Background(), events.DataChangeEvent{
		CollectionName: "cw_config_items",
		Operation:      events.OpUpdate,
	})

	// handler는 별도 goroutine에서 돌아서 무효화 반영을 기다린다
	assert.Eventually(t, func() bool {
		value, _, err := svc.Get(context.Background(), "pay.round")
		return err == nil && value == "half-up"
	}, 2*time.Second, 10*time.Millisecond)
}
