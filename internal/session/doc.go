// Package session owns the program text and the interaction state of one editor.
//
// Every mutating path ends in an explicit rebuild: parse, extract, build a new
// Scene. A Scene is never patched; after any change to the text it is thrown
// away together with its control points. The Editor is not safe for concurrent
// use, it belongs to whichever loop feeds it pointer events.
package session
