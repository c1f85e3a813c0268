// Package router 는 setting 도메인 route를 등록한다: config-items, settings.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "construct_works/internal/api/router"
	sethdl "construct_works/internal/api/setting/handler"
	setsvc "construct_works/internal/api/setting/service"
	"construct_works/internal/global"
)

// Register setting 도메인의 모든 route를 v1에 등록한다
func Register(v1 fiber.Router, r *apirouter.Router) error {
	configHandler, err := sethdl.NewConfigItemHandler()
	if err != nil {
		return fmt.Errorf("ConfigItemHandler 생성: %w", err)
	}

	store, err := setsvc.NewMongoConfigStore()
	if err != nil {
		return fmt.Errorf("ConfigStore 생성: %w", err)
	}
	settingService := setsvc.NewSettingService(store)
	// /config-items CRUD는 이 서비스를 거치지 않고 컬렉션에 직접 쓴다.
	// 변경 이벤트로 캐시를 무효화해 다음 조회 때 다시 읽게 한다.
	settingService.WatchCollection(global.MongoDB_ColNames.ConfigItems)
	settingHandler := sethdl.NewSettingHandler(settingService)

	r.RegisterCRUDRoutes(v1, "/config-items", configHandler, apirouter.ConfigItemConfig)

	// GET /settings — 전체 설정 맵
	apirouter.RegisterRouteWithMiddleware(v1, "/settings", "GET", "/", nil, settingHandler.HandleGetSettings)
	// PUT /settings — 설정 일괄 반영
	apirouter.RegisterRouteWithMiddleware(v1, "/settings", "PUT", "/", nil, settingHandler.HandleUpdateSettings)

	return nil
}
