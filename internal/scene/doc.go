// Package scene builds render primitives and control points from shape records
// and answers nearest-control-point queries over the 600×600 logical canvas.
//
// A Scene is valid only against the exact program text its shapes were
// extracted from. After any edit the whole Scene is rebuilt, never patched.
package scene
