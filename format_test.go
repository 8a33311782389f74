package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0 Bytes"},
		{"fraction_of_a_byte", 0.5, "0.5 Bytes"},
		{"small", 500, "500.0 Bytes"},
		{"one_kb", 1024, "1.0 KB"},
		{"one_and_a_half_kb", 1536, "1.5 KB"},
		{"one_mb", 1048576, "1.0 MB"},
		{"fraction_mb", 1234567, "1.18 MB"},
		{"one_gb", 1073741824, "1.0 GB"},
		{"one_tb", 1099511627776, "1.0 TB"},
		{"negative", -1, "N/A"},
		{"nan", math.NaN(), "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.input))
		})
	}
}

func TestFormatBytesValue(t *testing.T) {
	assert.Equal(t, "N/A", FormatBytesValue(nil))
	assert.Equal(t, "N/A", FormatBytesValue("not a number"))
	assert.Equal(t, "2.0 KB", FormatBytesValue(2048))
	assert.Equal(t, "1.0 KB", FormatBytesValue("1024"))
	assert.Equal(t, "0.5 Bytes", FormatBytesValue("0.5"))
	assert.Equal(t, "1.5 KB", FormatBytesValue(1536.0))
}

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 42.0, SafeFloat(nil, 42.0))
	assert.Equal(t, 42.0, SafeFloat("garbage", 42.0))
	assert.Equal(t, 1.5, SafeFloat(1.5, 0))
	assert.Equal(t, 7.0, SafeFloat("7", 0))
	assert.Equal(t, 3.0, SafeFloat(int64(3), 0))
}
