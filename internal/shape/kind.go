package shape

import "fmt"

type Kind uint8

const (
	KindLine Kind = iota
	KindRect
	KindEllipse
)

var kindNames = [...]string{
	KindLine:    "line",
	KindRect:    "rect",
	KindEllipse: "ellipse",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind maps a call name onto a shape kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
