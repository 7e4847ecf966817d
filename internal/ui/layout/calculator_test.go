package layout

import "testing"

func TestTargetOffset(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{0, 8},
		{1, 88},
		{2, 168},
		{3, 248},
	}

	for _, tt := range tests {
		got := TargetOffset(tt.index, 72, 8)
		if got != tt.want {
			t.Errorf("TargetOffset(%d, 72, 8) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestTargetOffset_UniformSpacing(t *testing.T) {
	cases := []struct {
		width, spacing float64
	}{
		{72, 8},
		{12, 1},
		{10, 0},
		{7.5, 2.25},
	}

	for _, c := range cases {
		for i := range 16 {
			diff := TargetOffset(i+1, c.width, c.spacing) - TargetOffset(i, c.width, c.spacing)
			if diff != c.width+c.spacing {
				t.Errorf("width=%v spacing=%v: step %d = %v, want %v",
					c.width, c.spacing, i, diff, c.width+c.spacing)
			}
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		name                  string
		count, width, spacing int
		want                  int
	}{
		{"four items", 4, 12, 1, 53},
		{"one item", 1, 10, 2, 14},
		{"no items", 0, 12, 1, 2},
		{"no spacing", 3, 10, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentWidth(tt.count, tt.width, tt.spacing)
			if got != tt.want {
				t.Errorf("ContentWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContentWidth_MatchesLastOffset(t *testing.T) {
	// The last item ends exactly one spacing before the inner right edge.
	count, width, spacing := 4, 12, 1
	last := TargetOffset(count-1, float64(width), float64(spacing))
	if int(last)+width+spacing != ContentWidth(count, width, spacing) {
		t.Errorf("last item end %d + spacing != content width %d",
			int(last)+width, ContentWidth(count, width, spacing))
	}
}

func TestBarWidth(t *testing.T) {
	if got := BarWidth(4, 12, 1); got != 55 {
		t.Errorf("BarWidth() = %d, want 55", got)
	}
}

func TestContentRows(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{4, 2},
		{3, 1},
		{2, 1},
		{0, 1},
		{6, 4},
	}

	for _, tt := range tests {
		if got := ContentRows(tt.height); got != tt.want {
			t.Errorf("ContentRows(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		width     int
		limit     int
		wantStart int
		wantEnd   int
	}{
		{"exact", 1, 12, 53, 1, 13},
		{"rounds down", 13.4, 12, 53, 13, 25},
		{"rounds up", 13.6, 12, 53, 14, 26},
		{"clamped right", 50, 12, 53, 50, 53},
		{"clamped left", -3, 12, 53, 0, 9},
		{"outside right", 60, 12, 53, 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CellSpan(tt.offset, tt.width, tt.limit)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CellSpan() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestItemAt(t *testing.T) {
	// spacing=1, width=12: item 0 covers [1,13), item 1 covers [14,26)
	tests := []struct {
		x    int
		want int
	}{
		{0, -1},
		{1, 0},
		{12, 0},
		{13, -1},
		{14, 1},
		{40, 3},
		{52, -1},
		{60, -1},
	}

	for _, tt := range tests {
		if got := ItemAt(tt.x, 4, 12, 1); got != tt.want {
			t.Errorf("ItemAt(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestScreenHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ScreenOpts
		want         int
	}{
		{"bar only", 40, ScreenOpts{BarHeight: 4}, 36},
		{"with padding", 40, ScreenOpts{BarHeight: 4, VerticalPadding: 1}, 34},
		{"with help", 40, ScreenOpts{BarHeight: 4, VerticalPadding: 1, HelpHeight: 1}, 33},
		{"too small", 3, ScreenOpts{BarHeight: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScreenHeight(tt.windowHeight, tt.opts); got != tt.want {
				t.Errorf("ScreenHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCenterLeft(t *testing.T) {
	if got := CenterLeft(80, 60); got != 10 {
		t.Errorf("CenterLeft(80, 60) = %d, want 10", got)
	}
	if got := CenterLeft(40, 60); got != 0 {
		t.Errorf("CenterLeft(40, 60) = %d, want 0", got)
	}
}
