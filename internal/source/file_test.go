package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile_Resolve(t *testing.T) {
	f := Virtual("a = 1;\nbb = 2;\n\nc = 3;")

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{6, LineCol{Line: 1, Col: 7}}, // сам '\n' относится к первой строке
		{7, LineCol{Line: 2, Col: 1}},
		{9, LineCol{Line: 2, Col: 3}},
		{15, LineCol{Line: 3, Col: 1}},
		{16, LineCol{Line: 4, Col: 1}},
		{21, LineCol{Line: 4, Col: 6}},
	}
	for _, tt := range tests {
		got, _ := f.Resolve(Span{Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestFile_GetLine(t *testing.T) {
	f := Virtual("first\nsecond\n\nfourth")
	want := map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: "fourth", 5: ""}
	for n, w := range want {
		if got := f.GetLine(n); got != w {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, w)
		}
	}
}

func TestLoad_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.sns")
	raw := []byte("\xEF\xBB\xBFa = 1;\r\nb = 2;\r\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(f.Content) != "a = 1;\nb = 2;\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if f.Text(Span{Start: 7, End: 8}) != "b" {
		t.Fatalf("Text() mismatch: %q", f.Text(Span{Start: 7, End: 8}))
	}
}
