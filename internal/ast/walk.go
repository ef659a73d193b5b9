package ast

// Inspect обходит выражение в глубину; fn возвращает false, чтобы не спускаться в детей.
func Inspect(e *Expr, fn func(*Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	if e.Callee != nil {
		Inspect(e.Callee, fn)
	}
	for _, it := range e.Items {
		Inspect(it, fn)
	}
}
