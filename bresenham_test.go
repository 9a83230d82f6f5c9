package lantern

import "testing"

func walk(b *Bresenham) []Point {
	var pts []Point
	for i := 0; i < 1000; i++ {
		pt, done := b.DoMove()
		pts = append(pts, pt)
		if done {
			return pts
		}
	}
	return pts
}

func samePath(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBresenhamPaths(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		step       Point
		want       []Point
	}{
		{
			name:  "horizontal overshoot snaps",
			start: Pt(0, 0), end: Pt(10, 0), step: Pt(3, 3),
			want: []Point{{3, 0}, {6, 0}, {9, 0}, {10, 0}},
		},
		{
			name:  "x major diagonal",
			start: Pt(0, 0), end: Pt(10, 4), step: Pt(3, 2),
			want: []Point{{3, 1}, {6, 2}, {9, 3}, {10, 4}},
		},
		{
			name:  "y major spreads minor remainder",
			start: Pt(0, 0), end: Pt(2, 9), step: Pt(3, 3),
			want: []Point{{1, 3}, {1, 6}, {2, 9}},
		},
		{
			name:  "leftward",
			start: Pt(10, 10), end: Pt(0, 10), step: Pt(3, 3),
			want: []Point{{7, 10}, {4, 10}, {1, 10}, {0, 10}},
		},
		{
			name:  "zero step treated as one",
			start: Pt(0, 0), end: Pt(0, 2), step: Pt(0, 0),
			want: []Point{{0, 1}, {0, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBresenham(tt.start, tt.end, tt.step)
			if b.Steps() != len(tt.want) {
				t.Errorf("Steps = %d, want %d", b.Steps(), len(tt.want))
			}
			got := walk(b)
			if !samePath(got, tt.want) {
				t.Errorf("path = %v, want %v", got, tt.want)
			}
			if !b.Done() || b.Current() != tt.end {
				t.Errorf("Done = %v, Current = %v", b.Done(), b.Current())
			}
		})
	}
}

func TestBresenhamZeroDistance(t *testing.T) {
	b := NewBresenham(Pt(4, 4), Pt(4, 4), Pt(3, 2))
	if !b.Done() || b.Steps() != 0 {
		t.Fatalf("Done = %v, Steps = %d", b.Done(), b.Steps())
	}
	pt, done := b.DoMove()
	if !done || pt != Pt(4, 4) {
		t.Errorf("DoMove = %v, %v", pt, done)
	}
}

func TestBresenhamAfterEnd(t *testing.T) {
	b := NewBresenham(Pt(0, 0), Pt(3, 0), Pt(3, 3))
	walk(b)
	pt, done := b.DoMove()
	if !done || pt != Pt(3, 0) {
		t.Errorf("DoMove after end = %v, %v", pt, done)
	}
}
