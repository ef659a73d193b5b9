// Package reverse computes program edits from canvas interactions.
//
// Every operation produces exactly one textedit.Edit over the program text the
// scene was built from. No other span is adjusted; callers rebuild the scene
// from the edited text before the next query.
package reverse
