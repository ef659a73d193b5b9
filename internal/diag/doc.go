// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// A Diagnostic carries a severity, a stable numeric Code, a short message and the
// primary span it refers to. Producers emit through the Reporter interface so
// they never depend on how diagnostics are stored or printed; Bag is the usual
// storage and BagReporter the adapter that fills it.
//
// The editor treats any error-level diagnostic as a failed cycle: the first
// error (in source order) becomes the message surfaced to the user.
package diag
