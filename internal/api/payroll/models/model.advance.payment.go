// Package models - AdvancePayment는 payroll 도메인의 월별 공제(가불) 문서이다 (cw_advance_payments).
// 한 노무자의 한 달(yearMonth) 공제 내역을 표준 항목 + 비정형 항목(customItems)으로 담는다.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdvancePayment 월별 공제 내역 (cw_advance_payments)
type AdvancePayment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	WorkerID   primitive.ObjectID `json:"workerId" bson:"workerId"`
	WorkerName string             `json:"workerName,omitempty" bson:"workerName,omitempty"`

	// 팀 미지정 공제는 TeamID가 zero다 (같은 노무자의 팀별 공제 구분용)
	TeamID   primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`
	TeamName string             `json:"teamName,omitempty" bson:"teamName,omitempty"`

	YearMonth string `json:"yearMonth" bson:"yearMonth"` // YYYY-MM

	// 표준 공제 항목 (원)
	Carryover     int64 `json:"carryover,omitempty" bson:"carryover,omitempty"`         // 전월이월
	Accommodation int64 `json:"accommodation,omitempty" bson:"accommodation,omitempty"` // 숙소비
	PrivateRoom   int64 `json:"privateRoom,omitempty" bson:"privateRoom,omitempty"`     // 독방비
	Gloves        int64 `json:"gloves,omitempty" bson:"gloves,omitempty"`               // 장갑비
	Deposit       int64 `json:"deposit,omitempty" bson:"deposit,omitempty"`             // 보증금
	Penalty       int64 `json:"penalty,omitempty" bson:"penalty,omitempty"`             // 범칙금
	Electricity   int64 `json:"electricity,omitempty" bson:"electricity,omitempty"`     // 전기세
	Water         int64 `json:"water,omitempty" bson:"water,omitempty"`                 // 수도세
	Gas           int64 `json:"gas,omitempty" bson:"gas,omitempty"`                     // 가스비
	Maintenance   int64 `json:"maintenance,omitempty" bson:"maintenance,omitempty"`     // 관리비

	// 비정형 공제 항목: key는 항목 코드 또는 원본 라벨
	CustomItems map[string]int64 `json:"customItems,omitempty" bson:"customItems,omitempty"`

	// 표준 + 비정형 합계. 저장 시점에 계산된 값을 신뢰한다
	TotalDeduction int64 `json:"totalDeduction" bson:"totalDeduction"`

	Memo string `json:"memo,omitempty" bson:"memo,omitempty"`

	// 명세서 표시용 작업 내용 (정산 화면에서 직접 수정)
	DisplayContent string `json:"displayContent,omitempty" bson:"displayContent,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// StandardTotal 표준 공제 항목의 합
func (a *AdvancePayment) StandardTotal() int64 {
	return a.Carryover + a.Accommodation + a.PrivateRoom + a.Gloves + a.Deposit +
		a.Penalty + a.Electricity + a.Water + a.Gas + a.Maintenance
}

// CustomTotal 비정형 공제 항목의 합 (양수만 집계)
func (a *AdvancePayment) CustomTotal() int64 {
	var total int64
	for _, amount := range a.CustomItems {
		if amount > 0 {
			total += amount
		}
	}
	return total
}
