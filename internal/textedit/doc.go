// Package textedit holds the primitives every program writer goes through:
// fixed-width numeric formatting, single-range splicing guarded by the
// expected old text, and the display-only zero-stripping transform.
package textedit
