package scene

import "fmt"

// Role identifies what dragging a control point rewrites.
type Role uint8

const (
	RoleEndpoint    Role = iota // конец линии или центр эллипса
	RoleTopLeft                 // 1
	RoleTopRight                // 2
	RoleBottomLeft              // 3
	RoleBottomRight             // 4
	RoleRight                   // 5
	RoleBottom                  // 6
	RoleLeft                    // 7
	RoleTop                     // 8
)

var roleNames = [...]string{
	RoleEndpoint:    "endpoint",
	RoleTopLeft:     "top-left",
	RoleTopRight:    "top-right",
	RoleBottomLeft:  "bottom-left",
	RoleBottomRight: "bottom-right",
	RoleRight:       "right",
	RoleBottom:      "bottom",
	RoleLeft:        "left",
	RoleTop:         "top",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", r)
}

// IsCorner reports whether r is one of the rect corner roles 1..4.
func (r Role) IsCorner() bool { return r >= RoleTopLeft && r <= RoleBottomRight }

// IsExtremum reports whether r is one of the ellipse extremum roles 5..8.
func (r Role) IsExtremum() bool { return r >= RoleRight && r <= RoleTop }
