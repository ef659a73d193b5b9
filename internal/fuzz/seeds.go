package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	`lineTop = line([062, 045], [549, 176], "#c13030");`,
	"lineTop = line([062, 045], [549, 176], \"#c13030\");\nrectLeft = rect([050, 236], 158, 328, \"#187fc4\");\nellipseRight = ellipse([428, 359], 144, 153, \"#fabe00\");",
	`a = rect([-10, 5], 0, 0, "red"); // comment`,
	`line([1, 2], [3, 4], "#000");`,
	`x = (1); y = [1, [2, 3]]; z = f();`,
	`a = line([1, 2], ;`,
	`a = "unterminated`,
	`a = 1.5;`,
	`ellipse2 = ellipse([150, 125], 051, 026, "#fabe00")`,
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.sns файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sns" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
