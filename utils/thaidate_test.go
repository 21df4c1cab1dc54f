package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThaiDate(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025/3/1", "1 มี.ค. 2025"},
		{"2025/12/25", "25 ธ.ค. 2025"},
		{"2025/01/05", "5 ม.ค. 2025"},
		{"not-a-date", "not-a-date"},
		{"2025/13/1", "2025/13/1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ThaiDate(tt.date), "date=%s", tt.date)
	}
}

func TestThaiDayName(t *testing.T) {
	// 2025-03-01 was a Saturday.
	assert.Equal(t, "วันเสาร์", ThaiDayName("2025/3/1"))
	assert.Equal(t, "วันอาทิตย์", ThaiDayName("2025/3/2"))
	assert.Equal(t, "", ThaiDayName("junk"))
}
