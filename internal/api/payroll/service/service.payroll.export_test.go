package paysvc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportMonthlyPayroll(t *testing.T) {
	result := &AssembleResult{
		Records: []PaymentRecord{
			{
				WorkerName:  "박영희",
				TeamName:    "형틀팀",
				TotalManDay: 1.5,
				UnitPrice:   150000,
				GrossAmount: 225000,
				TotalDeduction: 50000,
				TotalAmount:    175000,
				BankName:       "신한은행",
				BankCode:       "088",
				AccountNumber:  "110-123",
				AccountHolder:  "박영희",
				IsValid:        true,
				DeductionBreakdown: &DeductionBreakdown{
					StandardLines: []DeductionLine{{Label: LabelAccommodation, Amount: 50000}},
					TotalStandard: 50000,
					Total:         50000,
					HasData:       true,
				},
			},
			{
				WorkerName:  "김철수",
				TeamName:    "형틀팀",
				TotalManDay: 1.0,
				GrossAmount: 150000,
				TotalAmount: 150000,
				IsValid:     false,
				Errors:      BankErrorFlags{BankName: true, BankCode: true, AccountNumber: true, AccountHolder: true},
			},
		},
		InvalidCount: 1,
	}

	buf, filename, err := ExportMonthlyPayroll(result, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "정산_2024-03.xlsx", filename)
	require.NotZero(t, buf.Len())

	xl, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer xl.Close()

	// 팀명/성명 정렬이므로 김철수가 첫 데이터 행
	name, err := xl.GetCellValue("정산", "B2")
	require.NoError(t, err)
	assert.Equal(t, "김철수", name)

	note, err := xl.GetCellValue("정산", "O2")
	require.NoError(t, err)
	assert.Contains(t, note, "계좌정보 누락")

	summary, err := xl.GetCellValue("정산", "G3")
	require.NoError(t, err)
	assert.Contains(t, summary, "숙소비 50,000")
}
