package viewport

// minGutterWidth is the smallest gutter the renderer is asked to draw.
const minGutterWidth = 2

// GutterWidth returns the number of columns needed to display line
// numbers for lineCount lines: the number of decimal digits, with a
// minimum of 2.
func GutterWidth(lineCount int) int {
	digits := 1
	for lineCount >= 10 {
		lineCount /= 10
		digits++
	}
	if digits < minGutterWidth {
		return minGutterWidth
	}
	return digits
}
