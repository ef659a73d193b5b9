package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the program text.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an unsigned decimal integer literal.
	IntLit
	// StringLit represents a quoted string literal (quotes included in Text).
	StringLit

	Assign    // =
	Semicolon // ;
	Comma     // ,
	Minus     // -
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
)

// String returns a human-readable token kind name.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case IntLit:
		return "IntLit"
	case StringLit:
		return "StringLit"
	case Assign:
		return "'='"
	case Semicolon:
		return "';'"
	case Comma:
		return "','"
	case Minus:
		return "'-'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	default:
		return "Unknown"
	}
}
