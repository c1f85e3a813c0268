// Package router 는 payroll 도메인 route를 등록한다: advance-payments, payroll.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	payhdl "construct_works/internal/api/payroll/handler"
	apirouter "construct_works/internal/api/router"
)

// Register payroll 도메인의 모든 route를 v1에 등록한다
func Register(v1 fiber.Router, r *apirouter.Router) error {
	advanceHandler, err := payhdl.NewAdvancePaymentHandler()
	if err != nil {
		return fmt.Errorf("AdvancePaymentHandler 생성: %w", err)
	}
	payrollHandler, err := payhdl.NewPayrollHandler()
	if err != nil {
		return fmt.Errorf("PayrollHandler 생성: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/advance-payments", advanceHandler, apirouter.ReadWriteConfig)

	// GET /payroll/monthly — 월 정산 조회
	apirouter.RegisterRouteWithMiddleware(v1, "/payroll", "GET", "/monthly", nil, payrollHandler.HandleMonthly)
	// GET /payroll/monthly/export — 정산 xlsx 다운로드
	apirouter.RegisterRouteWithMiddleware(v1, "/payroll", "GET", "/monthly/export", nil, payrollHandler.HandleMonthlyExport)
	// PUT /payroll/records/display-content — 명세서 표시용 작업 내용 저장
	apirouter.RegisterRouteWithMiddleware(v1, "/payroll", "PUT", "/records/display-content", nil, payrollHandler.HandleDisplayContent)

	return nil
}
