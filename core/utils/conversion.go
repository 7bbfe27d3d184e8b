package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// KB is the number of bytes in a kilobyte.
	KB = 1024
	// MB is the number of bytes in a megabyte.
	MB = 1024 * KB
	// GB is the number of bytes in a gigabyte.
	GB = 1024 * MB
)

// unitMultipliers maps lower-cased unit tokens to byte multipliers.
var unitMultipliers = map[string]float64{
	"b":     1,
	"byte":  1,
	"bytes": 1,
	"kb":    KB,
	"mb":    MB,
	"gb":    GB,
}

// SizeToken matches a "<number> <unit>" size token such as "1.5 MB", "1,024 KB" or "320 KB".
var SizeToken = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:[.,]\d+)?)\s*(bytes|byte|kb|mb|gb|b)\b`)

// thousands matches a number grouped with comma thousands separators.
var thousands = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)

// maxBytes is the first byte count an int64 cannot hold.
const maxBytes = 1 << 63

// parseNumber reads a size number. A comma followed by exactly three digits groups
// thousands, any other comma is a decimal point.
func parseNumber(text string) (float64, error) {
	if thousands.MatchString(text) {
		text = strings.ReplaceAll(text, ",", "")
	} else {
		text = strings.ReplaceAll(text, ",", ".")
	}
	return strconv.ParseFloat(text, 64)
}

// toBytes rounds a byte count, returning 0 when it is negative, not finite or too large.
func toBytes(value float64) int64 {
	rounded := math.Round(value)
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) || rounded < 0 || rounded >= maxBytes {
		return 0
	}
	return int64(rounded)
}

// ParseSize converts a human-readable size token into bytes.
// It returns 0 when the text does not contain a recognizable size.
func ParseSize(text string) int64 {
	m := SizeToken.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}

	value, err := parseNumber(m[1])
	if err != nil {
		return 0
	}

	multiplier, ok := unitMultipliers[strings.ToLower(m[2])]
	if !ok {
		return 0
	}
	return toBytes(value * multiplier)
}

// MegabytesToBytes converts a megabyte limit into bytes.
// Non-positive, non-finite and unrepresentable values mean "no limit" and return 0.
func MegabytesToBytes(mb float64) int64 {
	if mb <= 0 {
		return 0
	}
	return toBytes(mb * MB)
}

// ParseMegabytes parses a megabyte limit as typed by a user ("2", "1.5", "").
func ParseMegabytes(text string) int64 {
	mb, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return MegabytesToBytes(mb)
}

// BytesToMegabytes formats a byte count as megabytes with two decimals.
func BytesToMegabytes(bytes int64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/MB)
}

// ParseIntList parses a comma-separated list of integers.
// Blank and non-numeric items are skipped.
func ParseIntList(text string) []int {
	var out []int
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// FormatIntList joins integers with ", ".
func FormatIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
