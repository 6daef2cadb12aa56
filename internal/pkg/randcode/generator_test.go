package randcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWith(t *testing.T) {
	testCases := []struct {
		name     string
		randFunc RandFunc
		length   int
		expected string
	}{
		{
			name:     "固定返回首位字符",
			randFunc: func(n int) int { return 0 },
			length:   4,
			expected: "AAAA",
		},
		{
			name:     "固定返回末位字符",
			randFunc: func(n int) int { return n - 1 },
			length:   4,
			expected: "9999",
		},
		{
			name: "按序递增",
			randFunc: func() RandFunc {
				i := -1
				return func(n int) int {
					i++
					return i % n
				}
			}(),
			length:   6,
			expected: "ABCDEF",
		},
		{
			name:     "零长度",
			randFunc: func(n int) int { return 0 },
			length:   0,
			expected: "",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			code := NewGeneratorWith(tc.randFunc).Generate(tc.length)
			assert.Equal(t, tc.expected, code)
		})
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 100; i++ {
		code := g.Generate(8)
		assert.Equal(t, 8, len(code))
		for _, c := range code {
			assert.True(t, strings.ContainsRune(Alphabet, c))
		}
	}
}
