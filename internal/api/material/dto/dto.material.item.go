// Package dto - material 도메인의 입력 DTO.
package dto

import (
	"construct_works/internal/api/material/models"
	"construct_works/internal/utility"
)

// MaterialItemCreateInput 자재 생성 입력
type MaterialItemCreateInput struct {
	Name     string  `json:"name" validate:"required"`
	Spec     string  `json:"spec,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	SiteId   string  `json:"siteId,omitempty"`
	SiteName string  `json:"siteName,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// MaterialItemUpdateInput 자재 수정 입력
type MaterialItemUpdateInput struct {
	Name     string   `json:"name,omitempty"`
	Spec     string   `json:"spec,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	SiteId   string   `json:"siteId,omitempty"`
	SiteName string   `json:"siteName,omitempty"`
	Note     *string  `json:"note,omitempty"`
}

// ToModel MaterialItemCreateInput을 MaterialItem 모델로 변환한다
func (in *MaterialItemCreateInput) ToModel() (*models.MaterialItem, error) {
	return &models.MaterialItem{
		Name:     in.Name,
		Spec:     in.Spec,
		Unit:     in.Unit,
		Quantity: in.Quantity,
		SiteID:   utility.String2ObjectID(in.SiteId),
		SiteName: in.SiteName,
		Note:     in.Note,
	}, nil
}

// ToModel MaterialItemUpdateInput을 MaterialItem 모델로 변환한다
func (in *MaterialItemUpdateInput) ToModel() (*models.MaterialItem, error) {
	item := &models.MaterialItem{
		Name:     in.Name,
		Spec:     in.Spec,
		Unit:     in.Unit,
		SiteID:   utility.String2ObjectID(in.SiteId),
		SiteName: in.SiteName,
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Note != nil {
		item.Note = *in.Note
	}
	return item, nil
}
