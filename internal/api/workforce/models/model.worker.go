// Package models - Worker는 workforce 도메인의 노무자 문서이다 (cw_workers).
// 일일출역과 노무비 계산이 과거 이력으로 참조하므로 hard delete하지 않는다.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 급여 방식
const (
	PayModelMonthly      = "monthly"       // 월급제
	PayModelDaily        = "daily"         // 일당제
	PayModelSupportTeam  = "support-team"  // 지원팀
	PayModelContractTeam = "contract-team" // 계약팀
)

// BankInfo 노무비 지급용 계좌 정보
type BankInfo struct {
	Name          string `json:"name,omitempty" bson:"name,omitempty"`                   // 은행명
	Code          string `json:"code,omitempty" bson:"code,omitempty"`                   // 은행 코드
	AccountNumber string `json:"accountNumber,omitempty" bson:"accountNumber,omitempty"` // 계좌번호
	AccountHolder string `json:"accountHolder,omitempty" bson:"accountHolder,omitempty"` // 예금주
}

// Worker 노무자 (cw_workers)
type Worker struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name       string `json:"name" bson:"name"`                               // 성명
	ResidentNo string `json:"residentNo,omitempty" bson:"residentNo,omitempty"` // 주민등록번호

	// 소속 팀 (snapshot: teamName은 cw_teams의 캐시 사본)
	TeamID   primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`
	TeamName string             `json:"teamName,omitempty" bson:"teamName,omitempty"`

	// 소속 업체 (snapshot)
	CompanyID   primitive.ObjectID `json:"companyId,omitempty" bson:"companyId,omitempty"`
	CompanyName string             `json:"companyName,omitempty" bson:"companyName,omitempty"`

	Bank      BankInfo `json:"bank,omitempty" bson:"bank,omitempty"`     // 계좌 정보
	UnitPrice int64    `json:"unitPrice" bson:"unitPrice"`               // 단가 (원)
	PayModel  string   `json:"payModel" bson:"payModel" default:"daily"` // 급여 방식
	Active    bool     `json:"active" bson:"active" default:"true"`      // 재직 여부

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
