package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to a fixed limit; later ones are dropped.
type Bag struct {
	items []Diagnostic
	limit int
}

// NewBag returns a Bag holding at most limit diagnostics (65535 when limit <= 0).
func NewBag(limit int) *Bag {
	if limit <= 0 || limit > 0xFFFF {
		limit = 0xFFFF
	}
	return &Bag{limit: limit}
}

// Add reports false when the limit is already reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Items отдаёт внутренний срез, менять его нельзя.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, Diagnostic.IsError)
}

// FirstError returns the error that starts earliest in the source; ties keep
// the order of reporting.
func (b *Bag) FirstError() (Diagnostic, bool) {
	best := -1
	for i, d := range b.items {
		if d.IsError() && (best < 0 || d.Primary.Start < b.items[best].Primary.Start) {
			best = i
		}
	}
	if best < 0 {
		return Diagnostic{}, false
	}
	return b.items[best], true
}

// Sort orders by span, then the more severe first, then by code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
