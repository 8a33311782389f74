package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders a byte count as a human readable string with two
// decimal places, so 1024 becomes "1.0 KB" and 1536 becomes "1.5 KB".
// Negative and NaN inputs render as "N/A".
func FormatBytes(sizeBytes float64) string {
	if math.IsNaN(sizeBytes) || sizeBytes < 0 {
		return "N/A"
	}

	if sizeBytes == 0 {
		return "0 Bytes"
	}

	exponent := int(math.Floor(math.Log(sizeBytes) / math.Log(1024)))
	if exponent < 0 {
		exponent = 0
	}

	if exponent >= len(byteUnits) {
		exponent = len(byteUnits) - 1
	}

	value := sizeBytes / math.Pow(1024, float64(exponent))
	value = math.Round(value*100) / 100

	rendered := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(rendered, ".") {
		rendered += ".0"
	}

	return rendered + " " + byteUnits[exponent]
}

// FormatBytesValue formats any loosely typed size value, treating nil and
// unparseable inputs as missing.
func FormatBytesValue(value any) string {
	if value == nil {
		return "N/A"
	}

	sizeBytes, err := cast.ToFloat64E(value)
	if err != nil {
		return "N/A"
	}

	return FormatBytes(sizeBytes)
}

// SafeFloat converts a loosely typed value to float64, falling back to def
// for nil or unconvertible inputs.
func SafeFloat(value any, def float64) float64 {
	if value == nil {
		return def
	}

	result, err := cast.ToFloat64E(value)
	if err != nil {
		return def
	}

	return result
}
