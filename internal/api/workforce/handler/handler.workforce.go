// Package wfhdl - workforce 도메인 HTTP handler (노무자/팀/업체/현장).
package wfhdl

import (
	"fmt"

	basehdl "construct_works/internal/api/base/handler"
	"construct_works/internal/api/workforce/dto"
	"construct_works/internal/api/workforce/models"
	wfsvc "construct_works/internal/api/workforce/service"
	"construct_works/internal/common"
	"construct_works/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// WorkerHandler 노무자 CRUD handler
type WorkerHandler struct {
	*basehdl.BaseHandler[models.Worker, dto.WorkerCreateInput, dto.WorkerUpdateInput]
}

// NewWorkerHandler 새 WorkerHandler를 생성한다
func NewWorkerHandler() (*WorkerHandler, error) {
	workerService, err := wfsvc.NewWorkerService()
	if err != nil {
		return nil, fmt.Errorf("WorkerService 생성 실패: %w", err)
	}
	return &WorkerHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Worker, dto.WorkerCreateInput, dto.WorkerUpdateInput](
			workerService.BaseServiceMongoImpl,
			(*dto.WorkerCreateInput).ToModel,
			(*dto.WorkerUpdateInput).ToModel,
		),
	}, nil
}

// TeamHandler 팀 CRUD handler
type TeamHandler struct {
	*basehdl.BaseHandler[models.Team, dto.TeamCreateInput, dto.TeamUpdateInput]
}

// NewTeamHandler 새 TeamHandler를 생성한다
func NewTeamHandler() (*TeamHandler, error) {
	teamService, err := wfsvc.NewTeamService()
	if err != nil {
		return nil, fmt.Errorf("TeamService 생성 실패: %w", err)
	}
	return &TeamHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Team, dto.TeamCreateInput, dto.TeamUpdateInput](
			teamService.BaseServiceMongoImpl,
			(*dto.TeamCreateInput).ToModel,
			(*dto.TeamUpdateInput).ToModel,
		),
	}, nil
}

// CompanyHandler 업체 CRUD handler
type CompanyHandler struct {
	*basehdl.BaseHandler[models.Company, dto.CompanyCreateInput, dto.CompanyUpdateInput]
}

// NewCompanyHandler 새 CompanyHandler를 생성한다
func NewCompanyHandler() (*CompanyHandler, error) {
	companyService, err := wfsvc.NewCompanyService()
	if err != nil {
		return nil, fmt.Errorf("CompanyService 생성 실패: %w", err)
	}
	return &CompanyHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Company, dto.CompanyCreateInput, dto.CompanyUpdateInput](
			companyService.BaseServiceMongoImpl,
			(*dto.CompanyCreateInput).ToModel,
			(*dto.CompanyUpdateInput).ToModel,
		),
	}, nil
}

// SiteHandler 현장 CRUD + 담당팀 배정 handler
type SiteHandler struct {
	*basehdl.BaseHandler[models.Site, dto.SiteCreateInput, dto.SiteUpdateInput]
	reconcileService *wfsvc.SiteReconcileService
	siteService      *wfsvc.SiteService
	teamService      *wfsvc.TeamService
}

// NewSiteHandler 새 SiteHandler를 생성한다
func NewSiteHandler() (*SiteHandler, error) {
	siteService, err := wfsvc.NewSiteService()
	if err != nil {
		return nil, fmt.Errorf("SiteService 생성 실패: %w", err)
	}
	teamService, err := wfsvc.NewTeamService()
	if err != nil {
		return nil, fmt.Errorf("TeamService 생성 실패: %w", err)
	}
	reconcileService, err := wfsvc.NewSiteReconcileService()
	if err != nil {
		return nil, fmt.Errorf("SiteReconcileService 생성 실패: %w", err)
	}
	return &SiteHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Site, dto.SiteCreateInput, dto.SiteUpdateInput](
			siteService.BaseServiceMongoImpl,
			(*dto.SiteCreateInput).ToModel,
			(*dto.SiteUpdateInput).ToModel,
		),
		reconcileService: reconcileService,
		siteService:      siteService,
		teamService:      teamService,
	}, nil
}

// HandleAssignTeam POST /sites/:id/assign-team
// 현장 담당팀을 배정하고 팀/업체 연결을 reconcile한다.
func (h *SiteHandler) HandleAssignTeam(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		siteID := utility.String2ObjectID(c.Params("id"))
		if siteID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("현장 ID가 ObjectID 형식이 아닙니다: %s", c.Params("id")),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input dto.SiteAssignTeamInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		teamID := utility.String2ObjectID(input.TeamId)
		if teamID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("팀 ID가 ObjectID 형식이 아닙니다: %s", input.TeamId),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		site, err := h.siteService.FindOneById(c.Context(), siteID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		team, err := h.teamService.FindOneById(c.Context(), teamID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.reconcileService.AssignResponsibleTeam(c.Context(), site, team)
		h.HandleResponse(c, result, err)
		return nil
	})
}
