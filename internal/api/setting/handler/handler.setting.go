// Package sethdl - setting 도메인 HTTP handler (설정 항목 + 설정 맵).
package sethdl

import (
	"fmt"

	basehdl "construct_works/internal/api/base/handler"
	"construct_works/internal/api/setting/dto"
	"construct_works/internal/api/setting/models"
	setsvc "construct_works/internal/api/setting/service"
	"construct_works/internal/common"
	"construct_works/internal/global"

	"github.com/gofiber/fiber/v3"
)

// ConfigItemHandler 설정 항목 CRUD handler
type ConfigItemHandler struct {
	*basehdl.BaseHandler[models.ConfigItem, dto.ConfigItemCreateInput, dto.ConfigItemUpdateInput]
}

// NewConfigItemHandler 새 ConfigItemHandler를 생성한다
func NewConfigItemHandler() (*ConfigItemHandler, error) {
	configService, err := setsvc.NewConfigItemService()
	if err != nil {
		return nil, fmt.Errorf("ConfigItemService 생성 실패: %w", err)
	}
	return &ConfigItemHandler{
		BaseHandler: basehdl.NewBaseHandler[models.ConfigItem, dto.ConfigItemCreateInput, dto.ConfigItemUpdateInput](
			configService.BaseServiceMongoImpl,
			(*dto.ConfigItemCreateInput).ToModel,
			(*dto.ConfigItemUpdateInput).ToModel,
		),
	}, nil
}

// SettingHandler 설정 맵 조회/일괄 수정 handler
type SettingHandler struct {
	settingService *setsvc.SettingService
}

// NewSettingHandler 새 SettingHandler를 생성한다
func NewSettingHandler(settingService *setsvc.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// HandleGetSettings GET /settings — 전체 설정 맵
func (h *SettingHandler) HandleGetSettings(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		values, err := h.settingService.All(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, values)
		return nil
	})
}

// HandleUpdateSettings PUT /settings — key/value 일괄 반영
func (h *SettingHandler) HandleUpdateSettings(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input dto.SettingsUpdateInput
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

		if err := h.settingService.SetMany(c.Context(), input.Values); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		values, err := h.settingService.All(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, values)
		return nil
	})
}
