// Package payhdl - payroll 도메인 HTTP handler (공제 CRUD + 월 정산 조회/엑셀).
package payhdl

import (
	"fmt"
	"net/url"

	basehdl "construct_works/internal/api/base/handler"
	"construct_works/internal/api/payroll/dto"
	"construct_works/internal/api/payroll/models"
	paysvc "construct_works/internal/api/payroll/service"
	wfmodels "construct_works/internal/api/workforce/models"
	"construct_works/internal/common"
	"construct_works/internal/global"
	"construct_works/internal/utility"

	"github.com/gofiber/fiber/v3"
)

var payModels = []string{
	wfmodels.PayModelMonthly,
	wfmodels.PayModelDaily,
	wfmodels.PayModelSupportTeam,
	wfmodels.PayModelContractTeam,
}

// AdvancePaymentHandler 월별 공제 CRUD handler
type AdvancePaymentHandler struct {
	*basehdl.BaseHandler[models.AdvancePayment, dto.AdvancePaymentCreateInput, dto.AdvancePaymentUpdateInput]
}

// NewAdvancePaymentHandler 새 AdvancePaymentHandler를 생성한다
func NewAdvancePaymentHandler() (*AdvancePaymentHandler, error) {
	advanceService, err := paysvc.NewAdvancePaymentService()
	if err != nil {
		return nil, fmt.Errorf("AdvancePaymentService 생성 실패: %w", err)
	}
	return &AdvancePaymentHandler{
		BaseHandler: basehdl.NewBaseHandler[models.AdvancePayment, dto.AdvancePaymentCreateInput, dto.AdvancePaymentUpdateInput](
			advanceService.BaseServiceMongoImpl,
			(*dto.AdvancePaymentCreateInput).ToModel,
			(*dto.AdvancePaymentUpdateInput).ToModel,
		),
	}, nil
}

// PayrollHandler 월 정산 파이프라인 handler
type PayrollHandler struct {
	payrollService *paysvc.PayrollService
}

// NewPayrollHandler 새 PayrollHandler를 생성한다
func NewPayrollHandler() (*PayrollHandler, error) {
	payrollService, err := paysvc.NewPayrollService()
	if err != nil {
		return nil, fmt.Errorf("PayrollService 생성 실패: %w", err)
	}
	return &PayrollHandler{payrollService: payrollService}, nil
}

// parseMonthlyQuery GET /payroll/monthly 계열의 공통 query 파싱
func (h *PayrollHandler) parseMonthlyQuery(c fiber.Ctx) (string, *paysvc.AssembleResult, error) {
	yearMonth := c.Query("yearMonth")
	if yearMonth == "" {
		return "", nil, common.NewError(
			common.ErrCodeValidationInput,
			"yearMonth는 필수입니다 (YYYY-MM)",
			common.StatusBadRequest,
			nil,
		)
	}

	teamID := utility.String2ObjectID(c.Query("teamId"))
	payModel := c.Query("payModel")
	if payModel != "" && !utility.Contains(payModels, payModel) {
		return "", nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("지원하지 않는 지급 방식입니다: %q", payModel),
			common.StatusBadRequest,
			nil,
		)
	}

	result, err := h.payrollService.MonthlyPayroll(c.Context(), yearMonth, teamID, payModel)
	return yearMonth, result, err
}

// HandleMonthly GET /payroll/monthly?yearMonth=YYYY-MM&teamId=&payModel=
func (h *PayrollHandler) HandleMonthly(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		_, result, err := h.parseMonthlyQuery(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, result)
		return nil
	})
}

// HandleMonthlyExport GET /payroll/monthly/export — 정산 xlsx 다운로드
func (h *PayrollHandler) HandleMonthlyExport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		yearMonth, result, err := h.parseMonthlyQuery(c)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		buf, filename, err := paysvc.ExportMonthlyPayroll(result, yearMonth)
		if err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				"정산 엑셀 생성에 실패했습니다",
				common.StatusInternalServerError,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
		return c.Send(buf.Bytes())
	})
}

// HandleDisplayContent PUT /payroll/records/display-content
// 정산 행의 표시용 작업 내용을 공제 레코드에 저장한다.
func (h *PayrollHandler) HandleDisplayContent(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input dto.DisplayContentInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"요청 본문을 해석할 수 없습니다",
				common.StatusBadRequest,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				map[string]interface{}{"error": err.Error()},
			))
			return nil
		}

		updated, err := h.payrollService.SetDisplayContent(c.Context(), &input)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, updated)
		return nil
	})
}
