// Package dto - workforce 도메인의 입력 DTO (company).
package dto

import (
	"construct_works/internal/api/workforce/models"
)

// CompanyCreateInput 업체 생성 입력
type CompanyCreateInput struct {
	Name           string `json:"name" validate:"required"`
	Type           string `json:"type,omitempty" validate:"omitempty,oneof=constructor client partner"`
	RegistrationNo string `json:"registrationNo,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// CompanyUpdateInput 업체 수정 입력
type CompanyUpdateInput struct {
	Name           string `json:"name,omitempty"`
	Type           string `json:"type,omitempty" validate:"omitempty,oneof=constructor client partner"`
	RegistrationNo string `json:"registrationNo,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// ToModel CompanyCreateInput을 Company 모델로 변환한다
func (in *CompanyCreateInput) ToModel() (*models.Company, error) {
	return &models.Company{
		Name:           in.Name,
		Type:           in.Type,
		RegistrationNo: in.RegistrationNo,
		Phone:          in.Phone,
	}, nil
}

// ToModel CompanyUpdateInput을 Company 모델로 변환한다
func (in *CompanyUpdateInput) ToModel() (*models.Company, error) {
	return &models.Company{
		Name:           in.Name,
		Type:           in.Type,
		RegistrationNo: in.RegistrationNo,
		Phone:          in.Phone,
	}, nil
}
