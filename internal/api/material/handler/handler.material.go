// Package mathdl - material 도메인 HTTP handler (자재).
package mathdl

import (
	"fmt"

	basehdl "construct_works/internal/api/base/handler"
	"construct_works/internal/api/material/dto"
	"construct_works/internal/api/material/models"
	matsvc "construct_works/internal/api/material/service"
)

// MaterialItemHandler 자재 CRUD handler
type MaterialItemHandler struct {
	*basehdl.BaseHandler[models.MaterialItem, dto.MaterialItemCreateInput, dto.MaterialItemUpdateInput]
}

// NewMaterialItemHandler 새 MaterialItemHandler를 생성한다
func NewMaterialItemHandler() (*MaterialItemHandler, error) {
	materialService, err := matsvc.NewMaterialItemService()
	if err != nil {
		return nil, fmt.Errorf("MaterialItemService 생성 실패: %w", err)
	}
	return &MaterialItemHandler{
		BaseHandler: basehdl.NewBaseHandler[models.MaterialItem, dto.MaterialItemCreateInput, dto.MaterialItemUpdateInput](
			materialService.BaseServiceMongoImpl,
			(*dto.MaterialItemCreateInput).ToModel,
			(*dto.MaterialItemUpdateInput).ToModel,
		),
	}, nil
}
