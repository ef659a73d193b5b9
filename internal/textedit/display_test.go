package textedit

import "testing"

func TestStripZeroPadding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"point", `l = line([062, 045], [549, 176], "#c13030");`, `l = line([62, 45], [549, 176], "#c13030");`},
		{"two zeros", `r = rect([005, 007], 010, 300, "#000000");`, `r = rect([5, 7], 10, 300, "#000000");`},
		{"short hex color is not protected", `c = "#000";`, `c = "#0";`},
		{"all zeros", `x = [000, 100];`, `x = [0, 100];`},
		{"hex color untouched", `c = "#062045";`, `c = "#062045";`},
		{"four digits untouched", `x = [0062, 1];`, `x = [0062, 1];`},
		{"negative", `x = [-005, 1];`, `x = [-5, 1];`},
		{"no boundary at end", `x = 007`, `x = 007`},
		{"adjacent matches do not overlap", `[007,008]`, `[7,008]`},
		{"unicode boundary", "é042é", "é42é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripZeroPadding(tt.in); got != tt.want {
				t.Fatalf("StripZeroPadding(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
