package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDetail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short value untouched",
			input:    "fix login bug",
			expected: "fix login bug",
		},
		{
			name:     "exactly 50 characters untouched",
			input:    strings.Repeat("a", 50),
			expected: strings.Repeat("a", 50),
		},
		{
			name:     "51 characters truncated with ellipsis",
			input:    strings.Repeat("a", 51),
			expected: strings.Repeat("a", 50) + "...",
		},
		{
			name:     "empty string untouched",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TruncateDetail(tc.input))
		})
	}
}

func TestDescribeDescription(t *testing.T) {
	assert.Equal(t, "No description", DescribeDescription(""))
	assert.Equal(t, "short", DescribeDescription("short"))

	long := strings.Repeat("x", 80)
	assert.Equal(t, strings.Repeat("x", 50)+"...", DescribeDescription(long))
}
