// Package dto - workforce 도메인의 입력 DTO (worker).
package dto

import (
	"construct_works/internal/api/workforce/models"
	"construct_works/internal/utility"
)

// BankInput 계좌 정보 입력
type BankInput struct {
	Name          string `json:"name,omitempty"`
	Code          string `json:"code,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
}

// WorkerCreateInput 노무자 생성 입력
type WorkerCreateInput struct {
	Name        string    `json:"name" validate:"required"`
	ResidentNo  string    `json:"residentNo,omitempty"`
	TeamId      string    `json:"teamId,omitempty"`
	TeamName    string    `json:"teamName,omitempty"`
	CompanyId   string    `json:"companyId,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	Bank        BankInput `json:"bank,omitempty"`
	UnitPrice   int64     `json:"unitPrice,omitempty" validate:"gte=0"`
	PayModel    string    `json:"payModel,omitempty" validate:"omitempty,oneof=monthly daily support-team contract-team"`
	Active      *bool     `json:"active,omitempty"`
}

// WorkerUpdateInput 노무자 수정 입력
type WorkerUpdateInput struct {
	Name        string     `json:"name,omitempty"`
	ResidentNo  string     `json:"residentNo,omitempty"`
	TeamId      string     `json:"teamId,omitempty"`
	TeamName    string     `json:"teamName,omitempty"`
	CompanyId   string     `json:"companyId,omitempty"`
	CompanyName string     `json:"companyName,omitempty"`
	Bank        *BankInput `json:"bank,omitempty"`
	UnitPrice   *int64     `json:"unitPrice,omitempty"`
	PayModel    string     `json:"payModel,omitempty" validate:"omitempty,oneof=monthly daily support-team contract-team"`
	Active      *bool      `json:"active,omitempty"`
}

// ToModel WorkerCreateInput을 Worker 모델로 변환한다
func (in *WorkerCreateInput) ToModel() (*models.Worker, error) {
	w := &models.Worker{
		Name:        in.Name,
		ResidentNo:  in.ResidentNo,
		TeamID:      utility.String2ObjectID(in.TeamId),
		TeamName:    in.TeamName,
		CompanyID:   utility.String2ObjectID(in.CompanyId),
		CompanyName: in.CompanyName,
		Bank: models.BankInfo{
			Name:          in.Bank.Name,
			Code:          in.Bank.Code,
			AccountNumber: in.Bank.AccountNumber,
			AccountHolder: in.Bank.AccountHolder,
		},
		UnitPrice: in.UnitPrice,
		PayModel:  in.PayModel,
	}
	if in.Active != nil {
		w.Active = *in.Active
	} else {
		w.Active = true
	}
	return w, nil
}

// ToModel WorkerUpdateInput을 Worker 모델로 변환한다 (zero 필드는 $set에서 제외된다)
func (in *WorkerUpdateInput) ToModel() (*models.Worker, error) {
	w := &models.Worker{
		Name:        in.Name,
		ResidentNo:  in.ResidentNo,
		TeamID:      utility.String2ObjectID(in.TeamId),
		TeamName:    in.TeamName,
		CompanyID:   utility.String2ObjectID(in.CompanyId),
		CompanyName: in.CompanyName,
		PayModel:    in.PayModel,
	}
	if in.Bank != nil {
		w.Bank = models.BankInfo{
			Name:          in.Bank.Name,
			Code:          in.Bank.Code,
			AccountNumber: in.Bank.AccountNumber,
			AccountHolder: in.Bank.AccountHolder,
		}
	}
	if in.UnitPrice != nil {
		w.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		w.Active = *in.Active
	}
	return w, nil
}
