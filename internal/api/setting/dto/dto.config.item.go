// Package dto - setting 도메인의 입력 DTO.
package dto

import (
	"construct_works/internal/api/setting/models"
)

// ConfigItemCreateInput 설정 항목 생성 입력
type ConfigItemCreateInput struct {
	Key         string `json:"key" validate:"required"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// ConfigItemUpdateInput 설정 항목 수정 입력
type ConfigItemUpdateInput struct {
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SettingsUpdateInput PUT /settings 입력: key → value 일괄 반영
type SettingsUpdateInput struct {
	Values map[string]string `json:"values" validate:"required,min=1"`
}

// ToModel ConfigItemCreateInput을 ConfigItem 모델로 변환한다
func (in *ConfigItemCreateInput) ToModel() (*models.ConfigItem, error) {
	return &models.ConfigItem{
		Key:         in.Key,
		Value:       in.Value,
		Description: in.Description,
	}, nil
}

// ToModel ConfigItemUpdateInput을 ConfigItem 모델로 변환한다
func (in *ConfigItemUpdateInput) ToModel() (*models.ConfigItem, error) {
	item := &models.ConfigItem{}
	if in.Value != nil {
		item.Value = *in.Value
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	return item, nil
}
