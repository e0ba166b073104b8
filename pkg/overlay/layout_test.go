package overlay

import (
	"testing"

	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/types"
)

// stubElement reports a fixed intrinsic height and records its assigned
// frame.
type stubElement struct {
	kind      element.Kind
	intrinsic float64
	width     float64
	height    float64
}

func (s *stubElement) Kind() element.Kind       { return s.kind }
func (s *stubElement) IntrinsicHeight() float64 { return s.intrinsic }
func (s *stubElement) SetFrame(w, h float64) {
	s.width = w
	s.height = h
}

func TestOverlayFrame(t *testing.T) {
	tests := []struct {
		name   string
		mode   types.WindowMode
		ratio  float64
		w, h   float64
		want   [4]float64 // x, y, width, height
	}{
		{
			name: "fullscreen covers bounds",
			mode: types.Fullscreen, ratio: 0.4, w: 100, h: 60,
			want: [4]float64{0, 0, 100, 60},
		},
		{
			name: "windowed with ratio 1 covers bounds",
			mode: types.Windowed, ratio: 1.0, w: 100, h: 60,
			want: [4]float64{0, 0, 100, 60},
		},
		{
			name: "windowed square from min dimension",
			mode: types.Windowed, ratio: 0.5, w: 100, h: 60,
			want: [4]float64{35, 15, 30, 30},
		},
		{
			name: "windowed centered in square bounds",
			mode: types.Windowed, ratio: 0.4, w: 100, h: 100,
			want: [4]float64{30, 30, 40, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := OverlayFrame(tt.mode, tt.ratio, tt.w, tt.h)

			got := [4]float64{f.X, f.Y, f.Width, f.Height}
			if got != tt.want {
				t.Errorf("frame = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutElementsAggregateHeight(t *testing.T) {
	frame := OverlayFrame(types.Windowed, 0.4, 200, 200) // 80x80 at (60,60)

	els := []element.Element{
		&stubElement{kind: element.MessageLabel, intrinsic: 2},
		&stubElement{kind: element.ActivityIndicator, intrinsic: 1},
		&stubElement{kind: element.BlankSpace, intrinsic: 0},
	}

	got := LayoutElements(els, frame, 20)

	// 2 + 1 + forced 50, plus 20 spacing between each neighbor pair.
	want := 2.0 + 1.0 + DefaultElementHeight + 2*20.0
	if got != want {
		t.Errorf("aggregate height = %v, want %v", got, want)
	}
}

func TestLayoutElementsForcesFrameOnUnsizedElements(t *testing.T) {
	frame := OverlayFrame(types.Fullscreen, 1, 120, 40)
	blank := &stubElement{kind: element.BlankSpace, intrinsic: 0}

	LayoutElements([]element.Element{blank}, frame, 20)

	if blank.width != 120 {
		t.Errorf("forced width = %v, want frame width 120", blank.width)
	}
	if blank.height != DefaultElementHeight {
		t.Errorf("forced height = %v, want %v", blank.height, DefaultElementHeight)
	}
}

func TestLayoutElementsSingleElementHasNoSpacing(t *testing.T) {
	frame := OverlayFrame(types.Fullscreen, 1, 100, 100)
	el := &stubElement{kind: element.ActivityIndicator, intrinsic: 1}

	if got := LayoutElements([]element.Element{el}, frame, 20); got != 1 {
		t.Errorf("aggregate height = %v, want 1", got)
	}
}

func TestLayoutElementsEmpty(t *testing.T) {
	frame := OverlayFrame(types.Fullscreen, 1, 100, 100)

	if got := LayoutElements(nil, frame, 20); got != 0 {
		t.Errorf("aggregate height = %v, want 0", got)
	}
}
