// Package dto - payroll 도메인의 입력 DTO.
package dto

import (
	"construct_works/internal/api/payroll/models"
	"construct_works/internal/utility"
)

// AdvancePaymentCreateInput 월별 공제 생성 입력
type AdvancePaymentCreateInput struct {
	WorkerId   string `json:"workerId" validate:"required"`
	WorkerName string `json:"workerName,omitempty"`
	TeamId     string `json:"teamId,omitempty"`
	TeamName   string `json:"teamName,omitempty"`
	YearMonth  string `json:"yearMonth" validate:"required,len=7"` // YYYY-MM

	Carryover     int64 `json:"carryover,omitempty" validate:"gte=0"`
	Accommodation int64 `json:"accommodation,omitempty" validate:"gte=0"`
	PrivateRoom   int64 `json:"privateRoom,omitempty" validate:"gte=0"`
	Gloves        int64 `json:"gloves,omitempty" validate:"gte=0"`
	Deposit       int64 `json:"deposit,omitempty" validate:"gte=0"`
	Penalty       int64 `json:"penalty,omitempty" validate:"gte=0"`
	Electricity   int64 `json:"electricity,omitempty" validate:"gte=0"`
	Water         int64 `json:"water,omitempty" validate:"gte=0"`
	Gas           int64 `json:"gas,omitempty" validate:"gte=0"`
	Maintenance   int64 `json:"maintenance,omitempty" validate:"gte=0"`

	CustomItems map[string]int64 `json:"customItems,omitempty"`

	Memo           string `json:"memo,omitempty"`
	DisplayContent string `json:"displayContent,omitempty"`
}

// AdvancePaymentUpdateInput 월별 공제 수정 입력
type AdvancePaymentUpdateInput struct {
	TeamId   string `json:"teamId,omitempty"`
	TeamName string `json:"teamName,omitempty"`

	Carryover     *int64 `json:"carryover,omitempty" validate:"omitempty,gte=0"`
	Accommodation *int64 `json:"accommodation,omitempty" validate:"omitempty,gte=0"`
	PrivateRoom   *int64 `json:"privateRoom,omitempty" validate:"omitempty,gte=0"`
	Gloves        *int64 `json:"gloves,omitempty" validate:"omitempty,gte=0"`
	Deposit       *int64 `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	Penalty       *int64 `json:"penalty,omitempty" validate:"omitempty,gte=0"`
	Electricity   *int64 `json:"electricity,omitempty" validate:"omitempty,gte=0"`
	Water         *int64 `json:"water,omitempty" validate:"omitempty,gte=0"`
	Gas           *int64 `json:"gas,omitempty" validate:"omitempty,gte=0"`
	Maintenance   *int64 `json:"maintenance,omitempty" validate:"omitempty,gte=0"`

	CustomItems map[string]int64 `json:"customItems,omitempty"`

	Memo           *string `json:"memo,omitempty"`
	DisplayContent *string `json:"displayContent,omitempty"`
}

// DisplayContentInput PUT /payroll/records/display-content 입력
type DisplayContentInput struct {
	WorkerId       string `json:"workerId" validate:"required"`
	TeamId         string `json:"teamId,omitempty"`
	YearMonth      string `json:"yearMonth" validate:"required,len=7"`
	DisplayContent string `json:"displayContent"`
}

// ToModel AdvancePaymentCreateInput을 AdvancePayment 모델로 변환한다.
// totalDeduction은 입력받지 않고 항목 합계로 계산해 저장한다.
func (in *AdvancePaymentCreateInput) ToModel() (*models.AdvancePayment, error) {
	advance := &models.AdvancePayment{
		WorkerID:       utility.String2ObjectID(in.WorkerId),
		WorkerName:     in.WorkerName,
		TeamID:         utility.String2ObjectID(in.TeamId),
		TeamName:       in.TeamName,
		YearMonth:      in.YearMonth,
		Carryover:      in.Carryover,
		Accommodation:  in.Accommodation,
		PrivateRoom:    in.PrivateRoom,
		Gloves:         in.Gloves,
		Deposit:        in.Deposit,
		Penalty:        in.Penalty,
		Electricity:    in.Electricity,
		Water:          in.Water,
		Gas:            in.Gas,
		Maintenance:    in.Maintenance,
		CustomItems:    in.CustomItems,
		Memo:           in.Memo,
		DisplayContent: in.DisplayContent,
	}
	advance.TotalDeduction = advance.StandardTotal() + advance.CustomTotal()
	return advance, nil
}

// ToModel AdvancePaymentUpdateInput을 AdvancePayment 모델로 변환한다.
// 수정 경로에서는 totalDeduction 재계산을 서비스에서 처리한다.
func (in *AdvancePaymentUpdateInput) ToModel() (*models.AdvancePayment, error) {
	advance := &models.AdvancePayment{
		TeamID:      utility.String2ObjectID(in.TeamId),
		TeamName:    in.TeamName,
		CustomItems: in.CustomItems,
	}
	if in.Carryover != nil {
		advance.Carryover = *in.Carryover
	}
	if in.Accommodation != nil {
		advance.Accommodation = *in.Accommodation
	}
	if in.PrivateRoom != nil {
		advance.PrivateRoom = *in.PrivateRoom
	}
	if in.Gloves != nil {
		advance.Gloves = *in.Gloves
	}
	if in.Deposit != nil {
		advance.Deposit = *in.Deposit
	}
	if in.Penalty != nil {
		advance.Penalty = *in.Penalty
	}
	if in.Electricity != nil {
		advance.Electricity = *in.Electricity
	}
	if in.Water != nil {
		advance.Water = *in.Water
	}
	if in.Gas != nil {
		advance.Gas = *in.Gas
	}
	if in.Maintenance != nil {
		advance.Maintenance = *in.Maintenance
	}
	if in.Memo != nil {
		advance.Memo = *in.Memo
	}
	if in.DisplayContent != nil {
		advance.DisplayContent = *in.DisplayContent
	}
	advance.TotalDeduction = advance.StandardTotal() + advance.CustomTotal()
	return advance, nil
}
