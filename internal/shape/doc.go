// Package shape turns parsed statements into shape records.
//
// A record keeps every literal together with the byte span it was read from, so
// writers can splice replacement text into exactly that range. Records are
// derived fresh from the program on every cycle and are never mutated.
package shape
