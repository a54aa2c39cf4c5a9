package thaislip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBuddhistYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"68", 2025},
		{"67", 2024},
		{"2568", 2025},
		{"2025", 2025},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ConvertBuddhistYear(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ConvertBuddhistYear("๖๘")
	assert.Error(t, err)
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short buddhist year", "1 ส.ค. 68", "2025-08-01"},
		{"september", "15 ก.ย. 67", "2024-09-15"},
		{"ocr noise after day", "โอนเงินสำเร็จ 1d ส.ค. 68 15:33 น.", "2025-08-01"},
		{"dots dropped", "5 มค 2567", "2024-01-05"},
		{"march is not january", "10 มี.ค. 68", "2025-03-10"},
		{"numeric buddhist year", "01/08/2568", "2025-08-01"},
		{"numeric short year", "15-10-25", "2025-10-15"},
		{"invalid day", "31/02/2025", ""},
		{"none", "ไม่มีวันที่", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDate(tt.text))
		})
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"colon", "15:33 น.", "15:33"},
		{"pads hour", "เวลา 9:05", "09:05"},
		{"thai dot form", "เวลา 14.20 น.", "14:20"},
		{"hour out of range", "25:00", ""},
		{"three digit minutes", "12:345", ""},
		{"none", "no time", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTime(tt.text))
		})
	}
}

func TestEstimateDateTime(t *testing.T) {
	t.Run("month marker present", func(t *testing.T) {
		date, clock := EstimateDateTime("ส.ค. 3 68 10 15")
		assert.Equal(t, "2025-08-03", date)
		assert.Equal(t, "10:15", clock)
	})

	t.Run("time only without month", func(t *testing.T) {
		date, clock := EstimateDateTime("โอน 12 ส 68 9 45")
		assert.Empty(t, date)
		assert.Equal(t, "09:45", clock)
	})

	t.Run("oversized tokens", func(t *testing.T) {
		date, clock := EstimateDateTime("ส.ค. 3 25680000000000000000068 10 15")
		assert.Equal(t, "2025-08-03", date)
		assert.Equal(t, "10:15", clock)

		date, clock = EstimateDateTime("12345678901234567890123 68 10 15")
		assert.Empty(t, date)
		assert.Equal(t, "10:15", clock)
	})

	t.Run("not enough numbers", func(t *testing.T) {
		date, clock := EstimateDateTime("1 2 3")
		assert.Empty(t, date)
		assert.Empty(t, clock)
	})
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, []string{"100.00", "1,500", "68"}, Numbers("จำนวน 100.00 บาท 1,500 ปี 68"))
	assert.Equal(t, []string{}, Numbers("ไม่มี"))
}
