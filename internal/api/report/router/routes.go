// Package router 는 report 도메인 route를 등록한다: daily-reports.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "construct_works/internal/api/report/handler"
	apirouter "construct_works/internal/api/router"
)

// Register report 도메인의 모든 route를 v1에 등록한다
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewDailyReportHandler()
	if err != nil {
		return fmt.Errorf("DailyReportHandler 생성: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/daily-reports", reportHandler, apirouter.ReadWriteConfig)

	// POST /daily-reports/import — 출역부 일괄 업로드 (xlsx 또는 JSON rows)
	apirouter.RegisterRouteWithMiddleware(v1, "/daily-reports", "POST", "/import", nil, reportHandler.HandleImport)
	// PUT /daily-reports/:id/entries/:workerId — 노무자별 entry 수정
	apirouter.RegisterRouteWithMiddleware(v1, "/daily-reports", "PUT", "/:id/entries/:workerId", nil, reportHandler.HandleUpdateEntry)

	return nil
}
