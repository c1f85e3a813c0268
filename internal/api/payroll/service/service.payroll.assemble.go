package paysvc

import (
	"construct_works/internal/api/payroll/models"
	"construct_works/internal/utility"
)

// BankErrorFlags 지급 계좌 검증 실패 항목별 플래그
type BankErrorFlags struct {
	BankName      bool `json:"bankName,omitempty"`
	BankCode      bool `json:"bankCode,omitempty"`
	AccountNumber bool `json:"accountNumber,omitempty"`
	AccountHolder bool `json:"accountHolder,omitempty"`
}

// PaymentRecord 한 (노무자, 팀)의 월 정산 행.
// 정렬은 소비자(화면/엑셀) 몫이라 assembler는 순서를 강제하지 않는다.
type PaymentRecord struct {
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName,omitempty"`
	YearMonth  string `json:"yearMonth"`
	PayModel   string `json:"payModel,omitempty"`

	TotalManDay float64 `json:"totalManDay"`
	UnitPrice   int64   `json:"unitPrice"`
	GrossAmount int64   `json:"grossAmount"`

	TotalDeduction     int64               `json:"totalDeduction"`
	DeductionBreakdown *DeductionBreakdown `json:"deductionBreakdown"`

	TotalAmount int64 `json:"totalAmount"` // 실지급액 = grossAmount - totalDeduction

	BankName      string `json:"bankName,omitempty"`
	BankCode      string `json:"bankCode,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`

	IsValid bool           `json:"isValid"`
	Errors  BankErrorFlags `json:"errors"`

	Entries []WorkEntry `json:"entries"`

	// 명세서 표시용 작업 내용 (공제 레코드에 저장된 값)
	DisplayContent string `json:"displayContent,omitempty"`
}

// AssembleResult 월 정산 조립 결과
type AssembleResult struct {
	Records      []PaymentRecord `json:"records"`
	InvalidCount int             `json:"invalidCount"`
}

// AssemblePayments 집계 + 공제를 합쳐 정산 행을 만든다.
// 계좌 검증 실패는 행 단위 플래그와 배치 카운터로만 기록하고 조립은 계속한다.
func AssemblePayments(
	aggregates map[AggregateKey]*WorkerAggregate,
	advances []models.AdvancePayment,
	yearMonth string,
	payModel string,
) *AssembleResult {
	result := &AssembleResult{Records: make([]PaymentRecord, 0, len(aggregates))}

	for key, agg := range aggregates {
		record := PaymentRecord{
			WorkerID:    key.WorkerID,
			TeamID:      key.TeamID,
			TeamName:    agg.TeamName,
			YearMonth:   yearMonth,
			PayModel:    payModel,
			TotalManDay: agg.TotalManDay,
			UnitPrice:   agg.UnitPrice,
			GrossAmount: agg.GrossAmount,
			Entries:     agg.Entries,
		}

		workerID := utility.String2ObjectID(key.WorkerID)

		// 정산 기준 팀: 노무자 현재 팀이 보고서 유래 팀보다 우선
		canonicalTeamID := key.TeamID
		if agg.Worker != nil && !agg.Worker.TeamID.IsZero() {
			canonicalTeamID = agg.Worker.TeamID.Hex()
		}

		deduped := ResolveDeductions(advances, workerID, canonicalTeamID, yearMonth)
		breakdown := BuildDeductionBreakdown(deduped)
		record.DeductionBreakdown = breakdown
		record.TotalDeduction = breakdown.Total
		record.TotalAmount = record.GrossAmount - record.TotalDeduction

		for i := range deduped {
			if deduped[i].DisplayContent != "" {
				record.DisplayContent = deduped[i].DisplayContent
				break
			}
		}

		if agg.Worker != nil {
			record.WorkerName = agg.Worker.Name
			record.BankName = agg.Worker.Bank.Name
			record.AccountNumber = agg.Worker.Bank.AccountNumber
			record.AccountHolder = agg.Worker.Bank.AccountHolder

			// 은행 코드는 저장값 대신 별칭 표 조회 결과를 신뢰한다
			if code, ok := LookupBankCode(record.BankName); ok {
				record.BankCode = code
			}
		}

		record.Errors = BankErrorFlags{
			BankName:      record.BankName == "",
			BankCode:      record.BankCode == "",
			AccountNumber: record.AccountNumber == "",
			AccountHolder: record.AccountHolder == "",
		}
		record.IsValid = !record.Errors.BankName && !record.Errors.BankCode &&
			!record.Errors.AccountNumber && !record.Errors.AccountHolder
		if !record.IsValid {
			result.InvalidCount++
		}

		result.Records = append(result.Records, record)
	}

	return result
}
