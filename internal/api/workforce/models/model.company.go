// Package models - Company는 workforce 도메인의 업체 문서이다 (cw_companies).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 업체 구분.
// 구분에 따라 현장의 어느 역할(발주처/시공사/협력사)에 배정되는지가 결정된다.
const (
	CompanyTypeConstructor = "constructor" // 시공사
	CompanyTypeClient      = "client"      // 발주처
	CompanyTypePartner     = "partner"     // 협력사
)

// Company 업체 (cw_companies)
type Company struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name"`                                       // 업체명
	Type           string `json:"type" bson:"type" default:"partner"`                     // 업체 구분
	RegistrationNo string `json:"registrationNo,omitempty" bson:"registrationNo,omitempty"` // 사업자등록번호
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`                 // 대표 전화

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
