// Package dto - workforce 도메인의 입력 DTO (site).
package dto

import (
	"construct_works/internal/api/workforce/models"
)

// SiteCreateInput 현장 생성 입력
type SiteCreateInput struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=planned active suspended closed"`
}

// SiteUpdateInput 현장 수정 입력
type SiteUpdateInput struct {
	Name    string `json:"name,omitempty"`
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=planned active suspended closed"`
}

// SiteAssignTeamInput 현장 담당팀 배정 입력 (POST /sites/:id/assign-team)
type SiteAssignTeamInput struct {
	TeamId string `json:"teamId" validate:"required"`
}

// ToModel SiteCreateInput을 Site 모델로 변환한다
func (in *SiteCreateInput) ToModel() (*models.Site, error) {
	return &models.Site{
		Name:    in.Name,
		Code:    in.Code,
		Address: in.Address,
		Status:  in.Status,
	}, nil
}

// ToModel SiteUpdateInput을 Site 모델로 변환한다
func (in *SiteUpdateInput) ToModel() (*models.Site, error) {
	return &models.Site{
		Name:    in.Name,
		Code:    in.Code,
		Address: in.Address,
		Status:  in.Status,
	}, nil
}
