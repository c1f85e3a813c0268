package reportsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-03", "2025-01-03"},
		{"2025.1.3", "2025-01-03"},
		{"2025/01/03", "2025-01-03"},
		{" 2025-12-31 ", "2025-12-31"},
	}
	for _, tc := range cases {
		got, err := normalizeDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "2025-13-01", "2025-01-32", "2025-01", "abcd-ef-gh", "1999-01-01"} {
		_, err := normalizeDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAmount(t *testing.T) {
	got, err := parseAmount("150,000")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), got)

	got, err = parseAmount("150000.0")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), got)

	got, err = parseAmount("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	_, err = parseAmount("십오만")
	assert.Error(t, err)
}

func TestParseImportRow(t *testing.T) {
	row := map[string]string{
		"날짜":   "2025.3.5",
		"현장":   "서울역 리모델링",
		"팀":    "형틀팀",
		"성명":   "김철수",
		"공수":   "1.5",
		"단가":   "180,000",
		"작업내용": "거푸집 해체",
	}

	parsed, err := parseImportRow(row)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", parsed.Date)
	assert.Equal(t, "서울역 리모델링", parsed.SiteName)
	assert.Equal(t, "형틀팀", parsed.TeamName)
	assert.Equal(t, "김철수", parsed.WorkerName)
	assert.Equal(t, 1.5, parsed.ManDay)
	assert.Equal(t, int64(180000), parsed.UnitPrice)
	assert.Equal(t, "거푸집 해체", parsed.WorkContent)
}

func TestParseImportRowSynonymHeaders(t *testing.T) {
	// "이름"/"일자"/"현장명" 같은 동의어 헤더도 받아야 한다
	row := map[string]string{
		"일자":  "2025-03-05",
		"현장명": "서울역 리모델링",
		"이름":  "김철수",
		"공수":  "1",
	}

	parsed, err := parseImportRow(row)
	require.NoError(t, err)
	assert.Equal(t, "김철수", parsed.WorkerName)
	assert.Equal(t, "서울역 리모델링", parsed.SiteName)
	assert.Equal(t, 1.0, parsed.ManDay)
	assert.Equal(t, int64(0), parsed.UnitPrice)
	assert.Empty(t, parsed.TeamName)
}

func TestParseImportRowMissingFields(t *testing.T) {
	base := map[string]string{
		"날짜": "2025-03-05",
		"현장": "서울역 리모델링",
		"성명": "김철수",
		"공수": "1.0",
	}

	cases := []struct {
		drop    string
		wantMsg string
	}{
		{"날짜", "날짜"},
		{"현장", "현장명"},
		{"성명", "노무자 이름"},
		{"공수", "공수"},
	}
	for _, tc := range cases {
		row := map[string]string{}
		for k, v := range base {
			if k != tc.drop {
				row[k] = v
			}
		}
		_, err := parseImportRow(row)
		require.Error(t, err, tc.drop)
		assert.Contains(t, err.Error(), tc.wantMsg)
	}
}

func TestParseImportRowBadNumbers(t *testing.T) {
	row := map[string]string{
		"날짜": "2025-03-05",
		"현장": "서울역 리모델링",
		"성명": "김철수",
		"공수": "하루",
	}
	_, err := parseImportRow(row)
	assert.Error(t, err)

	row["공수"] = "-1"
	_, err = parseImportRow(row)
	assert.Error(t, err)

	row["공수"] = "1.0"
	row["단가"] = "백팔십만"
	_, err = parseImportRow(row)
	assert.Error(t, err)
}
