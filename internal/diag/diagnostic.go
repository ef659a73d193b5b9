package diag

import "sns/internal/source"

// Note points at a secondary span related to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one message from the lexer or the parser.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// NewError builds an error-level diagnostic without notes.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Primary: primary, Message: msg}
}

// IsError: ошибки ломают цикл перестроения, остальное нет
func (d Diagnostic) IsError() bool { return d.Severity >= SevError }
