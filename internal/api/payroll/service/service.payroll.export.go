package paysvc

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"번호", "성명", "팀", "공수", "단가", "출역금액",
	"공제내역", "공제계", "실지급액",
	"은행", "은행코드", "계좌번호", "예금주", "작업내용", "비고",
}

// breakdownSummary 공제 명세를 한 셀에 들어갈 문자열로 만든다
func breakdownSummary(breakdown *DeductionBreakdown) string {
	if breakdown == nil || !breakdown.HasData {
		return ""
	}
	parts := make([]string, 0, len(breakdown.StandardLines)+len(breakdown.AdditionalLines))
	for _, line := range breakdown.StandardLines {
		parts = append(parts, fmt.Sprintf("%s %s", line.Label, formatWon(line.Amount)))
	}
	for _, line := range breakdown.AdditionalLines {
		parts = append(parts, fmt.Sprintf("%s %s", line.Label, formatWon(line.Amount)))
	}
	return strings.Join(parts, ", ")
}

// formatWon 천 단위 콤마 표기
func formatWon(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// recordNote 검증 실패 행의 비고 문구
func recordNote(record *PaymentRecord) string {
	if record.IsValid {
		return ""
	}
	var missing []string
	if record.Errors.BankName {
		missing = append(missing, "은행명")
	}
	if record.Errors.BankCode {
		missing = append(missing, "은행코드")
	}
	if record.Errors.AccountNumber {
		missing = append(missing, "계좌번호")
	}
	if record.Errors.AccountHolder {
		missing = append(missing, "예금주")
	}
	return "계좌정보 누락: " + strings.Join(missing, ", ")
}

// ExportMonthlyPayroll 정산 결과를 xlsx로 만든다.
// 행은 팀명, 노무자명 순으로 정렬한다 (명세서 출력 관례).
func ExportMonthlyPayroll(result *AssembleResult, yearMonth string) (*bytes.Buffer, string, error) {
	records := make([]PaymentRecord, len(result.Records))
	copy(records, result.Records)
	sort.Slice(records, func(i, j int) bool {
		if records[i].TeamName != records[j].TeamName {
			return records[i].TeamName < records[j].TeamName
		}
		return records[i].WorkerName < records[j].WorkerName
	})

	xl := excelize.NewFile()
	defer xl.Close()

	sheet := "정산"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := xl.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	headerStyle, err := xl.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = xl.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for i, record := range records {
		rowNum := i + 2
		values := []interface{}{
			i + 1,
			record.WorkerName,
			record.TeamName,
			record.TotalManDay,
			record.UnitPrice,
			record.GrossAmount,
			breakdownSummary(record.DeductionBreakdown),
			record.TotalDeduction,
			record.TotalAmount,
			record.BankName,
			record.BankCode,
			record.AccountNumber,
			record.AccountHolder,
			record.DisplayContent,
			recordNote(&record),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, "", err
			}
			if err := xl.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	// 합계 행
	var totalManDay float64
	var totalGross, totalDeduction, totalNet int64
	for _, record := range records {
		totalManDay += record.TotalManDay
		totalGross += record.GrossAmount
		totalDeduction += record.TotalDeduction
		totalNet += record.TotalAmount
	}
	sumRow := len(records) + 2
	sums := map[int]interface{}{
		2: "합계",
		4: totalManDay,
		6: totalGross,
		8: totalDeduction,
		9: totalNet,
	}
	for col, value := range sums {
		cell, err := excelize.CoordinatesToCellName(col, sumRow)
		if err != nil {
			return nil, "", err
		}
		if err := xl.SetCellValue(sheet, cell, value); err != nil {
			return nil, "", err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("정산_%s.xlsx", yearMonth)
	return buf, filename, nil
}
