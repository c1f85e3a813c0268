// Package paysvc - payroll 도메인 서비스 (월별 정산 파이프라인).
package paysvc

import "strings"

// bankCodes 은행명(별칭 포함) → 금융결제원 은행 코드.
// 노무자 등록 화면에서 들어오는 표기 변형을 별칭으로 흡수한다.
var bankCodes = map[string]string{
	"국민은행":    "004",
	"KB국민은행":  "004",
	"국민":      "004",
	"신한은행":    "088",
	"신한":      "088",
	"우리은행":    "020",
	"우리":      "020",
	"하나은행":    "081",
	"KEB하나은행": "081",
	"하나":      "081",
	"기업은행":    "003",
	"IBK기업은행": "003",
	"기업":      "003",
	"농협":      "011",
	"농협은행":    "011",
	"NH농협은행":  "011",
	"NH농협":    "011",
	"지역농협":    "012",
	"수협":      "007",
	"수협은행":    "007",
	"산업은행":    "002",
	"KDB산업은행": "002",
	"SC제일은행":  "023",
	"제일은행":    "023",
	"씨티은행":    "027",
	"한국씨티은행":  "027",
	"대구은행":    "031",
	"iM뱅크":    "031",
	"부산은행":    "032",
	"광주은행":    "034",
	"제주은행":    "035",
	"전북은행":    "037",
	"경남은행":    "039",
	"새마을금고":   "045",
	"새마을":     "045",
	"신협":      "048",
	"우체국":     "071",
	"카카오뱅크":   "090",
	"카카오":     "090",
	"케이뱅크":    "089",
	"토스뱅크":    "092",
	"토스":      "092",
}

// LookupBankCode 은행명으로 은행 코드를 찾는다.
// 빈 이름이거나 별칭 표에 없으면 ("", false).
func LookupBankCode(bankName string) (string, bool) {
	name := strings.TrimSpace(bankName)
	if name == "" {
		return "", false
	}
	code, ok := bankCodes[name]
	return code, ok
}
