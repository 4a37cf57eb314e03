package layout

// eps absorbs floating-point drift from position+size arithmetic in bounds checks.
const eps = 1e-9

// HasOverlap reports whether the boxes of a and b intersect with positive
// area. Boxes that only share an edge do not overlap.
func HasOverlap(a, b Element) bool {
	return !(a.Right() <= b.Left() ||
		a.Left() >= b.Right() ||
		a.Bottom() <= b.Top() ||
		a.Top() >= b.Bottom())
}

// IsWithinBounds reports whether e lies entirely inside [0,W]x[0,H].
func IsWithinBounds(e Element, canvas Dimensions) bool {
	return e.Left() >= -eps &&
		e.Top() >= -eps &&
		e.Right() <= canvas.Width+eps &&
		e.Bottom() <= canvas.Height+eps
}

// OverlapsAny reports whether e overlaps any element in others.
func OverlapsAny(e Element, others []Element) bool {
	for _, o := range others {
		if HasOverlap(e, o) {
			return true
		}
	}
	return false
}

// ValidCandidate reports whether no two elements overlap and every element
// lies within the canvas.
func ValidCandidate(elements []Element, canvas Dimensions) bool {
	for i, a := range elements {
		if !IsWithinBounds(a, canvas) {
			return false
		}
		for _, b := range elements[i+1:] {
			if HasOverlap(a, b) {
				return false
			}
		}
	}
	return true
}

// Inset reports whether e lies entirely inside the canvas shrunk by margin.
func Inset(e Element, canvas Dimensions, margin Spacing) bool {
	return e.Left() >= margin.Left-eps &&
		e.Top() >= margin.Top-eps &&
		e.Right() <= canvas.Width-margin.Right+eps &&
		e.Bottom() <= canvas.Height-margin.Bottom+eps
}
