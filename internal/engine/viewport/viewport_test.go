package viewport

import "testing"

func TestNewClampsDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 80, 24, 80, 24},
		{"zero", 0, 0, 1, 1},
		{"negative", -5, -3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.width, tt.height)
			if v.Width() != tt.wantW || v.Height() != tt.wantH {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, v.Width(), v.Height())
			}
		})
	}
}

func TestRevealScrollsDown(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(100)

	v.Reveal(50, 0)

	if v.TopLine() != 31 {
		t.Errorf("expected topLine 31, got %d", v.TopLine())
	}
}

func TestRevealScrollsUp(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(100)
	v.ScrollBy(50, 0)

	v.Reveal(10, 0)

	if v.TopLine() != 10 {
		t.Errorf("expected topLine 10, got %d", v.TopLine())
	}
}

func TestRevealNoScrollWhenVisible(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(100)
	v.ScrollBy(30, 0)

	v.Reveal(35, 10)

	if v.TopLine() != 30 || v.LeftColumn() != 0 {
		t.Errorf("expected no scroll, got top %d left %d", v.TopLine(), v.LeftColumn())
	}
}

func TestRevealWithMargins(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(100)
	v.SetMargins(3, 0)

	v.Reveal(50, 0)
	// topLine = 50 - 20 + 3 + 1
	if v.TopLine() != 34 {
		t.Errorf("expected topLine 34, got %d", v.TopLine())
	}

	v.Reveal(35, 0)
	// 35 < 34+3, so topLine = 35 - 3
	if v.TopLine() != 32 {
		t.Errorf("expected topLine 32, got %d", v.TopLine())
	}
}

func TestRevealHorizontal(t *testing.T) {
	v := New(40, 20)
	v.SetLineCount(5)

	v.Reveal(0, 100)
	// leftColumn = 100 - 40 + 1
	if v.LeftColumn() != 61 {
		t.Errorf("expected leftColumn 61, got %d", v.LeftColumn())
	}

	v.Reveal(0, 10)
	if v.LeftColumn() != 10 {
		t.Errorf("expected leftColumn 10, got %d", v.LeftColumn())
	}
}

func TestScrollByClamps(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(50)

	v.ScrollBy(-10, -10)
	if v.TopLine() != 0 || v.LeftColumn() != 0 {
		t.Errorf("expected clamp to origin, got top %d left %d", v.TopLine(), v.LeftColumn())
	}

	v.ScrollBy(200, 5)
	if v.TopLine() != 49 {
		t.Errorf("expected topLine clamped to 49, got %d", v.TopLine())
	}
	if v.LeftColumn() != 5 {
		t.Errorf("expected leftColumn 5, got %d", v.LeftColumn())
	}
}

func TestVisibleLinesClampedToBuffer(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(5)

	start, end := v.VisibleLines()
	if start != 0 || end != 5 {
		t.Errorf("expected [0,5), got [%d,%d)", start, end)
	}
}

func TestSetLineCountClampsTop(t *testing.T) {
	v := New(80, 20)
	v.SetLineCount(100)
	v.ScrollBy(90, 0)

	v.SetLineCount(10)
	if v.TopLine() != 9 {
		t.Errorf("expected topLine 9 after shrink, got %d", v.TopLine())
	}
}

func TestScreenPosition(t *testing.T) {
	v := New(40, 20)
	v.SetLineCount(100)
	v.ScrollBy(30, 5)

	row, col, ok := v.ScreenPosition(35, 10)
	if !ok || row != 5 || col != 5 {
		t.Errorf("expected (5,5) visible, got (%d,%d) ok=%v", row, col, ok)
	}

	if _, _, ok := v.ScreenPosition(10, 10); ok {
		t.Error("expected position above viewport to be invisible")
	}
	if _, _, ok := v.ScreenPosition(35, 2); ok {
		t.Error("expected position left of viewport to be invisible")
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{1, 2},
		{9, 2},
		{10, 2},
		{99, 2},
		{100, 3},
		{1000, 4},
		{99999, 5},
	}

	for _, tt := range tests {
		if got := GutterWidth(tt.lines); got != tt.want {
			t.Errorf("GutterWidth(%d): expected %d, got %d", tt.lines, tt.want, got)
		}
	}
}
