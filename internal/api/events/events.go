// Package events 는 CRUD로 데이터가 변경될 때의 중앙 이벤트 버스를 제공한다.
// CRUD 서비스가 메서드를 일일이 override할 필요 없이 BaseServiceMongoImpl이
// 자동으로 이벤트를 발행하고, 반응 로직(설정 재적재, 캐시 무효화 등)은
// OnDataChanged로 등록한다.
package events

import (
	"context"
	"sync"
)

// CRUD 작업 종류
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent 데이터 변경 이벤트.
// Document는 변경 후의 문서이다 (delete면 nil).
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	Document       interface{}
}

// DataChangeHandler 데이터 변경 이벤트 처리 함수.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged handler를 등록한다. 패키지 초기화 시점에 호출한다.
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged 이벤트를 발행한다. BaseServiceMongoImpl이 CRUD 성공 후 호출한다.
// handler마다 별도 goroutine에서 실행되며 panic은 recover되어 다른 handler에
// 영향을 주지 않는다.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				if r := recover(); r != nil {
					// 이벤트가 이른 시점에 돌 수 있어 logger를 쓰지 않는다
					_ = r
				}
			}()
			fn(ctx, e)
		}(h)
	}
}
