package overlay

import (
	"testing"

	"github.com/veilhq/veil/pkg/element"
	"github.com/veilhq/veil/pkg/types"
)

func TestElementKinds(t *testing.T) {
	tests := []struct {
		name string
		kind types.OverlayKind
		want []element.Kind
	}{
		{
			name: "basic",
			kind: types.KindBasic,
			want: []element.Kind{element.ActivityIndicator},
		},
		{
			name: "message",
			kind: types.KindMessage,
			want: []element.Kind{element.MessageLabel},
		},
		{
			name: "message with indicator",
			kind: types.KindMessageWithIndicator,
			want: []element.Kind{element.MessageLabel, element.ActivityIndicator},
		},
		{
			name: "message with indicator and cancel",
			kind: types.KindMessageWithIndicatorAndCancel,
			want: []element.Kind{element.MessageLabel, element.ActivityIndicator, element.CancelButton},
		},
		{
			name: "progress",
			kind: types.KindProgress,
			want: []element.Kind{element.MessageLabel, element.ProgressBar},
		},
	}

	// The composition must be identical for both window modes.
	modes := []types.WindowMode{types.Fullscreen, types.Windowed}

	for _, tt := range tests {
		for _, mode := range modes {
			t.Run(tt.name+"/"+mode.String(), func(t *testing.T) {
				got := ElementKinds(tt.kind, mode)

				if len(got) != len(tt.want) {
					t.Fatalf("got %d elements, want %d", len(got), len(tt.want))
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("element %d = %s, want %s", i, got[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestElementKindsIsPure(t *testing.T) {
	a := ElementKinds(types.KindProgress, types.Fullscreen)
	b := ElementKinds(types.KindProgress, types.Fullscreen)

	if len(a) != len(b) {
		t.Fatal("repeated calls returned different compositions")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("element %d differs between calls", i)
		}
	}
}
