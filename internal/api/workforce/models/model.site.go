// Package models - Site는 workforce 도메인의 현장 문서이다 (cw_sites).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 현장 상태
const (
	SiteStatusPlanned   = "planned"   // 착공 전
	SiteStatusActive    = "active"    // 진행 중
	SiteStatusSuspended = "suspended" // 중단
	SiteStatusClosed    = "closed"    // 준공
)

// CompanyRef 현장의 역할별 업체 참조 (snapshot)
type CompanyRef struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"id,omitempty"`
	Name string             `json:"name,omitempty" bson:"name,omitempty"`
}

// Site 현장 (cw_sites).
// 역할 참조(발주처/시공사/협력사)는 각 역할당 최대 하나이며,
// 담당팀 변경 시 reconcile 과정이 세 역할 모두를 다시 쓸 수 있다.
type Site struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name    string `json:"name" bson:"name"`                         // 현장명
	Code    string `json:"code,omitempty" bson:"code,omitempty"`     // 현장 코드
	Address string `json:"address,omitempty" bson:"address,omitempty"` // 주소
	Status  string `json:"status" bson:"status" default:"planned"`   // 현장 상태

	// 역할별 업체
	Client      CompanyRef `json:"client,omitempty" bson:"client,omitempty"`           // 발주처
	Constructor CompanyRef `json:"constructor,omitempty" bson:"constructor,omitempty"` // 시공사
	Partner     CompanyRef `json:"partner,omitempty" bson:"partner,omitempty"`         // 협력사

	// 담당팀 (snapshot)
	ResponsibleTeamID primitive.ObjectID `json:"responsibleTeamId,omitempty" bson:"responsibleTeamId,omitempty"`
	ResponsibleTeam   string             `json:"responsibleTeamName,omitempty" bson:"responsibleTeamName,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
