package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veilhq/veil/pkg/types"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	assert.Equal(t, DefaultAnimationDuration, c.AnimationDuration())
	assert.Equal(t, DefaultItemSpacing, c.ItemSpacing())
	assert.Equal(t, DefaultCornerRadius, c.CornerRadius())
	assert.False(t, c.BlurredBackground())
	assert.Equal(t, DefaultWindowRatio, c.WindowRatio())
	assert.Equal(t, DefaultMessageText, c.MessageText())
	assert.Nil(t, c.CancelCallback())
}

func TestSetWindowRatioClamping(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "below minimum", in: 0.1, want: 0.3},
		{name: "at minimum", in: 0.3, want: 0.3},
		{name: "in range", in: 0.55, want: 0.55},
		{name: "at maximum", in: 1.0, want: 1.0},
		{name: "above maximum", in: 1.5, want: 1.0},
		{name: "negative", in: -2.0, want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			stored := c.SetWindowRatio(tt.in)
			assert.Equal(t, tt.want, stored)
			assert.Equal(t, tt.want, c.WindowRatio())
		})
	}
}

func TestApplyWindowModeFullscreen(t *testing.T) {
	c := New()
	c.SetCornerRadius(8)

	c.ApplyWindowMode(types.Fullscreen)

	assert.Equal(t, 0.0, c.CornerRadius(), "fullscreen must force corner radius to 0")
}

func TestApplyWindowModeWindowed(t *testing.T) {
	t.Run("promotes zero radius to default", func(t *testing.T) {
		c := New()
		c.SetBlurredBackground(true)

		c.ApplyWindowMode(types.Windowed)

		assert.False(t, c.BlurredBackground(), "windowed must disable blur")
		assert.Equal(t, WindowedCornerRadius, c.CornerRadius())
	})

	t.Run("leaves non-zero radius alone", func(t *testing.T) {
		c := New()
		c.SetCornerRadius(5)

		c.ApplyWindowMode(types.Windowed)

		assert.Equal(t, 5.0, c.CornerRadius())
	})
}

func TestReset(t *testing.T) {
	c := New()
	c.SetWindowRatio(0.9)
	c.SetItemSpacing(4)
	c.SetAnimationDuration(2 * time.Second)
	c.SetCornerRadius(3)
	c.SetBlurredBackground(true)
	c.SetMessageText("Please wait")
	c.SetCancelCallback(func() {})

	c.Reset()

	assert.Equal(t, 0.4, c.WindowRatio())
	assert.Equal(t, 20.0, c.ItemSpacing())
	assert.Equal(t, 500*time.Millisecond, c.AnimationDuration())
	assert.Equal(t, 0.0, c.CornerRadius())
	assert.False(t, c.BlurredBackground())
	assert.Equal(t, DefaultMessageText, c.MessageText())
	assert.Nil(t, c.CancelCallback())
}

func TestSnapshotIsConsistentCopy(t *testing.T) {
	c := New()
	c.SetWindowRatio(0.6)
	c.SetMessageText("indexing")

	snap := c.Snapshot()

	// Later mutation must not leak into the snapshot.
	c.SetWindowRatio(0.3)
	c.SetMessageText("done")

	assert.Equal(t, 0.6, snap.WindowRatio)
	assert.Equal(t, "indexing", snap.MessageText)
}
