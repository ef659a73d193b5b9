package reverse

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv: деление с округлением к минус бесконечности (b > 0).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
