package utility

import (
	"strings"
	"unicode"
)

// NormalizeName 이름 비교용 정규화.
// 괄호 구간(반각/전각)을 제거하고 모든 공백을 제거한다. 대소문자는 구분한다.
// 팀명/업체명의 "(주)", "(지원)" 같은 접미사와 공백 차이를 흡수하기 위한 것이다.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(', '（':
			depth++
		case ')', '）':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 && !unicode.IsSpace(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
