package internal

// Padding defines spacing on all four sides of an element, in cells.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Symmetric creates a Padding with one value for top and bottom and
// another for left and right.
func Symmetric(vertical, horizontal int) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Values returns the padding in CSS order, as lipgloss Padding expects.
func (p Padding) Values() (int, int, int, int) {
	return p.Top, p.Right, p.Bottom, p.Left
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}
