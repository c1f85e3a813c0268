// Package setsvc - setting 도메인 서비스 (설정 항목).
//
// SettingService는 설정을 메모리에 캐시해 두고 변경 시 구독자에게
// 전체 맵 사본을 통지한다. 첫 조회 시점에 저장소에서 lazy load한다.
package setsvc

import (
	"context"
	"fmt"
	"sync"

	basesvc "construct_works/internal/api/base/service"
	"construct_works/internal/api/events"
	"construct_works/internal/api/setting/models"
	"construct_works/internal/common"
	"construct_works/internal/global"
	"construct_works/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// ConfigStore 설정 영속화 인터페이스. 테스트에서는 map 기반 fake로 대체한다.
type ConfigStore interface {
	LoadAll(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, key, value string) error
}

// ConfigItemService 설정 항목 CRUD 서비스 (/config-items 경로용)
type ConfigItemService struct {
	*basesvc.BaseServiceMongoImpl[models.ConfigItem]
}

// NewConfigItemService 새 ConfigItemService를 생성한다
func NewConfigItemService() (*ConfigItemService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ConfigItems)
	if !exist {
		return nil, fmt.Errorf("컬렉션 %s 을(를) 찾을 수 없습니다: %w", global.MongoDB_ColNames.ConfigItems, common.ErrNotFound)
	}
	return &ConfigItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ConfigItem](coll),
	}, nil
}

// mongoConfigStore cw_config_items 기반 ConfigStore 구현
type mongoConfigStore struct {
	service *ConfigItemService
}

// NewMongoConfigStore MongoDB 기반 ConfigStore를 생성한다
func NewMongoConfigStore() (ConfigStore, error) {
	service, err := NewConfigItemService()
	if err != nil {
		return nil, err
	}
	return &mongoConfigStore{service: service}, nil
}

func (s *mongoConfigStore) LoadAll(ctx context.Context) (map[string]string, error) {
	items, err := s.service.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(items))
	for i := range items {
		values[items[i].Key] = items[i].Value
	}
	return values, nil
}

func (s *mongoConfigStore) Save(ctx context.Context, key, value string) error {
	_, err := s.service.Upsert(ctx, bson.M{"key": key}, basesvc.UpdateData{
		Set: map[string]interface{}{
			"key":   key,
			"value": value,
		},
	})
	return err
}

// Subscriber 설정 변경 통지 콜백. 변경 시마다 전체 설정의 사본을 받는다.
type Subscriber func(values map[string]string)

// SettingService 설정 캐시 + 변경 통지
type SettingService struct {
	store ConfigStore

	mu          sync.Mutex
	loaded      bool
	values      map[string]string
	subscribers []Subscriber
}

// NewSettingService 새 SettingService를 생성한다. store는 명시적으로 주입한다.
func NewSettingService(store ConfigStore) *SettingService {
	return &SettingService{
		store:  store,
		values: map[string]string{},
	}
}

// ensureLoaded 첫 접근 시 저장소에서 설정을 읽는다. mu를 잡은 상태에서 호출한다.
func (s *SettingService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	values, err := s.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}
	s.values = values
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.loaded = true
	return nil
}

func (s *SettingService) snapshot() map[string]string {
	copied := make(map[string]string, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// Get 설정 값 하나를 읽는다
func (s *SettingService) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return "", false, err
	}
	value, ok := s.values[key]
	return value, ok, nil
}

// All 전체 설정의 사본을 반환한다
func (s *SettingService) All(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Set 설정 값을 저장하고 구독자에게 통지한다.
// 저장소 쓰기가 실패하면 캐시도 바꾸지 않는다.
func (s *SettingService) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.store.Save(ctx, key, value); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("설정 저장 실패 (%s): %w", key, err)
	}
	s.values[key] = value

	subscribers, snapshot := s.notifyTargetsLocked()
	s.mu.Unlock()

	notify(subscribers, snapshot)
	return nil
}

// SetMany 여러 설정을 반영하고 통지는 한 번만 한다
func (s *SettingService) SetMany(ctx context.Context, values map[string]string) error {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return err
	}

	for key, value := range values {
		if err := s.store.Save(ctx, key, value); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("설정 저장 실패 (%s): %w", key, err)
		}
		s.values[key] = value
	}

	subscribers, snapshot := s.notifyTargetsLocked()
	s.mu.Unlock()

	notify(subscribers, snapshot)
	return nil
}

// Subscribe 설정 변경 구독을 등록한다
func (s *SettingService) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Invalidate 캐시를 비워 다음 접근 때 저장소에서 다시 읽게 한다.
// /config-items CRUD처럼 이 서비스를 거치지 않는 쓰기 경로가 있을 때 쓴다.
func (s *SettingService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.values = map[string]string{}
}

// WatchCollection 해당 컬렉션의 데이터 변경 이벤트를 구독해 캐시를 무효화한다.
// 라우트 등록 시점에 한 번 호출한다.
func (s *SettingService) WatchCollection(collectionName string) {
	events.OnDataChanged(func(_ context.Context, e events.DataChangeEvent) {
		if e.CollectionName == collectionName {
			s.Invalidate()
		}
	})
}

// notifyTargetsLocked 통지 대상 구독자 목록과 설정 사본을 만든다.
// mu를 잡은 상태에서 호출한다.
func (s *SettingService) notifyTargetsLocked() ([]Subscriber, map[string]string) {
	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	return subscribers, s.snapshot()
}

// notify lock을 놓은 뒤 구독자 전원에게 통지한다.
// 구독자가 Get/Set/All로 재진입해도 deadlock이 없다.
func notify(subscribers []Subscriber, snapshot map[string]string) {
	for _, fn := range subscribers {
		copied := make(map[string]string, len(snapshot))
		for k, v := range snapshot {
			copied[k] = v
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.GetErrorLogger().Errorf("설정 구독자 panic: %v", r)
				}
			}()
			fn(copied)
		}()
	}
}
