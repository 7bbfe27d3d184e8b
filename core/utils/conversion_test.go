package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{"Bytes", "512 bytes", 512},
		{"ShortBytes", "12 B", 12},
		{"KB", "2 KB", 2048},
		{"MBFraction", "1.5 MB", 1572864},
		{"GB", "1 GB", 1073741824},
		{"LowerCase", "3 mb", 3145728},
		{"NoSpace", "10KB", 10240},
		{"CommaDecimal", "1,5 MB", 1572864},
		{"ThousandsSeparator", "1,024 KB", 1048576},
		{"ThousandsWithFraction", "2,048.5 B", 2049},
		{"LongCommaDecimal", "1,0245 KB", 1049},
		{"TooLarge", "99999999999999999999 GB", 0},
		{"Rounded", "0.3 KB", 307},
		{"Embedded", "PDF, 2.4 MB, modified", 2516582},
		{"Unparseable", "big", 0},
		{"Empty", "", 0},
		{"UnknownUnit", "3 TB", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSize(tt.text))
		})
	}
}

func TestMegabytesToBytes(t *testing.T) {
	assert.Equal(t, int64(1048576), MegabytesToBytes(1))
	assert.Equal(t, int64(524288), MegabytesToBytes(0.5))
	assert.Equal(t, int64(0), MegabytesToBytes(0))
	assert.Equal(t, int64(0), MegabytesToBytes(-2))
	assert.Equal(t, int64(0), MegabytesToBytes(math.NaN()))
	assert.Equal(t, int64(0), MegabytesToBytes(math.Inf(1)))
	assert.Equal(t, int64(0), MegabytesToBytes(1e20))
	assert.Equal(t, int64(0), MegabytesToBytes(math.MaxFloat64))
	assert.Equal(t, int64(1<<62), MegabytesToBytes(1<<42))
}

func TestParseMegabytes(t *testing.T) {
	assert.Equal(t, int64(2097152), ParseMegabytes("2"))
	assert.Equal(t, int64(0), ParseMegabytes(""))
	assert.Equal(t, int64(0), ParseMegabytes("abc"))
}

func TestBytesToMegabytes(t *testing.T) {
	assert.Equal(t, "1.00", BytesToMegabytes(MB))
	assert.Equal(t, "2.50", BytesToMegabytes(2621440))
	assert.Equal(t, "0.00", BytesToMegabytes(0))
}

func TestParseIntList(t *testing.T) {
	assert.Equal(t, []int{3, 7, 12}, ParseIntList("3, 7,12"))
	assert.Equal(t, []int{5}, ParseIntList(" , x, 5,"))
	assert.Nil(t, ParseIntList(""))
}

func TestFormatIntList(t *testing.T) {
	assert.Equal(t, "1, 2, 3", FormatIntList([]int{1, 2, 3}))
	assert.Equal(t, "", FormatIntList(nil))
}
