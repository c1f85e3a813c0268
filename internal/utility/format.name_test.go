package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"대한건설(주)", "대한건설"},
		{"대한건설 (주)", "대한건설"},
		{"대한건설（주）", "대한건설"},
		{" 한 빛 전 기 ", "한빛전기"},
		{"형틀팀 (2공구) A반", "형틀팀A반"},
		{"", ""},
		{"(전체가괄호)", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), tc.in)
	}
}

func TestNormalizeNameCaseSensitive(t *testing.T) {
	assert.NotEqual(t, NormalizeName("ABC건설"), NormalizeName("abc건설"))
}
