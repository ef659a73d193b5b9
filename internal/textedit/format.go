package textedit

import (
	"strconv"
	"strings"
)

// Pad3 renders n as a zero-left-padded 3-digit decimal.
// Wider values stay unpadded and untruncated (1234 → "1234"); negative values
// get the padded magnitude behind a minus sign (-5 → "-005"). Nothing is clamped.
func Pad3(n int) string {
	if n < 0 {
		// -n переполняется для MinInt, поэтому через uint64
		return "-" + pad3(strconv.FormatUint(uint64(-(n+1))+1, 10))
	}
	return pad3(strconv.Itoa(n))
}

func pad3(digits string) string {
	if len(digits) >= 3 {
		return digits
	}
	return strings.Repeat("0", 3-len(digits)) + digits
}

// FormatPoint renders a point literal `[xxx, yyy]`.
func FormatPoint(x, y int) string {
	return "[" + Pad3(x) + ", " + Pad3(y) + "]"
}

// Quote wraps a color value in double quotes.
func Quote(s string) string {
	return `"` + s + `"`
}
