package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected character %q in %q", r, code)
		}
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		num := GenerateOrderNumber()
		assert.True(t, strings.HasPrefix(num, "ORD-"))
		assert.Len(t, num, 16)
		assert.Equal(t, strings.ToUpper(num), num)
		assert.False(t, seen[num], "duplicate order number %s", num)
		seen[num] = true
	}
}
