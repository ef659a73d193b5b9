package textedit

import (
	"math"
	"testing"
)

func TestPad3(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "000"},
		{5, "005"},
		{42, "042"},
		{600, "600"},
		{1234, "1234"},
		{-5, "-005"},
		{-120, "-120"},
		{-1234, "-1234"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		if got := Pad3(tt.in); got != tt.want {
			t.Errorf("Pad3(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPointAndQuote(t *testing.T) {
	if got := FormatPoint(62, 1045); got != "[062, 1045]" {
		t.Fatalf("FormatPoint = %q", got)
	}
	if got := Quote("#187fc4"); got != `"#187fc4"` {
		t.Fatalf("Quote = %q", got)
	}
}
