package scene

import (
	"testing"

	"sns/internal/shape"
)

const sampleProgram = `lineTop = line([062, 045], [549, 176], "#c13030");
rectLeft = rect([050, 236], 158, 328, "#187fc4");
ellipseRight = ellipse([428, 359], 144, 153, "#fabe00");`

func buildText(t *testing.T, text string, widgets bool) *Scene {
	t.Helper()
	shapes, err := shape.Parse(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return Build(shapes, Options{Widgets: widgets})
}
