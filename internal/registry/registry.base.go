// Package registry 는 generic 타입 기반의 thread-safe registry 패턴 구현을 제공한다.
// 애플리케이션 전역에서 싱글턴 인스턴스(컬렉션 핸들, 서비스 등)를 이름으로 관리한다.
package registry

import (
	"fmt"
	"sync"

	"construct_works/internal/common"
)

// Registry 는 thread-safe generic registry 이다.
// 타입 파라미터 T 로 어떤 종류의 객체든 관리할 수 있으며,
// sync.RWMutex 로 동시 접근을 보호한다.
//
// Example:
//
//	reg := NewRegistry[string]()
//	reg.Register("key", "value")
//	if value, exists := reg.Get("key"); exists {
//	    fmt.Println(value)
//	}
type Registry[T any] struct {
	items map[string]T // 이름별 항목 저장소
	mu    sync.RWMutex // 동시 접근 보호
}

// NewRegistry 새 registry를 생성한다.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register 항목을 등록한다. 같은 이름이 이미 있으면 덮어쓴다.
//
// Returns:
//   - isNew: 새 항목이면 true, 기존 항목을 덮어쓰면 false
//   - err: 이름이 빈 문자열이면 오류
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get 이름으로 항목을 조회한다.
// 항목이 없으면 T의 zero value와 false를 반환한다.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate 이름으로 항목을 조회하고, 없으면 creator로 생성해 등록한다.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update 항목을 updater로 갱신한다. 항목이 없으면 오류를 반환한다.
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear 항목 하나를 제거한다.
// cleanup이 주어지면 제거 전에 호출해 자원을 해제한다.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll 모든 항목을 제거한다.
// cleanup이 주어지면 각 항목마다 호출한다.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("cleanup errors occurred: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
