// Package router 는 workforce 도메인 route를 등록한다: workers, teams, companies, sites.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "construct_works/internal/api/router"
	wfhdl "construct_works/internal/api/workforce/handler"
)

// Register workforce 도메인의 모든 route를 v1에 등록한다
func Register(v1 fiber.Router, r *apirouter.Router) error {
	workerHandler, err := wfhdl.NewWorkerHandler()
	if err != nil {
		return fmt.Errorf("WorkerHandler 생성: %w", err)
	}
	teamHandler, err := wfhdl.NewTeamHandler()
	if err != nil {
		return fmt.Errorf("TeamHandler 생성: %w", err)
	}
	companyHandler, err := wfhdl.NewCompanyHandler()
	if err != nil {
		return fmt.Errorf("CompanyHandler 생성: %w", err)
	}
	siteHandler, err := wfhdl.NewSiteHandler()
	if err != nil {
		return fmt.Errorf("SiteHandler 생성: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/workers", workerHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/teams", teamHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/companies", companyHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/sites", siteHandler, apirouter.ReadWriteConfig)

	// POST /sites/:id/assign-team — 담당팀 배정 + 팀/업체 reconcile
	apirouter.RegisterRouteWithMiddleware(v1, "/sites", "POST", "/:id/assign-team", nil, siteHandler.HandleAssignTeam)

	return nil
}
