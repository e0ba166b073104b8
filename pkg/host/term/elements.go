package term

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/veilhq/veil/pkg/element"
)

// viewer is implemented by every terminal element; the surface renders by
// joining the views vertically.
type viewer interface {
	View() string
}

// label shows the overlay message, wrapping at the assigned frame width.
type label struct {
	text  string
	style lipgloss.Style
	width int
}

func (l *label) Kind() element.Kind { return element.MessageLabel }

func (l *label) IntrinsicHeight() float64 {
	return float64(lipgloss.Height(l.View()))
}

func (l *label) SetFrame(width, height float64) {
	l.width = int(width)
}

func (l *label) SetText(text string) { l.text = text }

func (l *label) SetStyle(style lipgloss.Style) { l.style = style }

func (l *label) View() string {
	style := l.style
	if l.width > 0 {
		// Leave room for the surface border and padding.
		inner := l.width - 6
		if inner > 0 {
			style = style.Width(inner)
		}
	}
	return style.Align(lipgloss.Center).Render(l.text)
}

// indicator is an indeterminate spinner backed by a bubbles spinner
// definition. The host advances frames on its tick.
type indicator struct {
	frames spinner.Spinner
	idx    int
	style  lipgloss.Style
}

func newIndicator() *indicator {
	return &indicator{frames: spinner.Dot}
}

func (i *indicator) Kind() element.Kind { return element.ActivityIndicator }

func (i *indicator) IntrinsicHeight() float64 { return 1 }

func (i *indicator) SetFrame(width, height float64) {}

// Advance steps to the next spinner frame.
func (i *indicator) Advance() {
	if len(i.frames.Frames) == 0 {
		return
	}
	i.idx = (i.idx + 1) % len(i.frames.Frames)
}

func (i *indicator) View() string {
	if len(i.frames.Frames) == 0 {
		return ""
	}
	return i.style.Render(i.frames.Frames[i.idx])
}

// progressBar shows determinate progress using the bubbles progress
// renderer.
type progressBar struct {
	model   progress.Model
	percent float64
}

func newProgressBar() *progressBar {
	return &progressBar{model: progress.New(progress.WithDefaultGradient())}
}

func (p *progressBar) Kind() element.Kind { return element.ProgressBar }

func (p *progressBar) IntrinsicHeight() float64 { return 1 }

func (p *progressBar) SetFrame(width, height float64) {
	w := int(width) - 6
	if w < 4 {
		w = 4
	}
	p.model.Width = w
}

func (p *progressBar) SetProgress(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	p.percent = value
}

func (p *progressBar) Progress() float64 { return p.percent }

func (p *progressBar) View() string {
	return p.model.ViewAs(p.percent)
}

// cancelButton is a bordered control bound to the configured cancel
// callback. Tapping invokes the callback only; it never hides the overlay
// itself.
type cancelButton struct {
	text  string
	style lipgloss.Style
	onTap func()
}

func newCancelButton() *cancelButton {
	return &cancelButton{
		text: "Cancel",
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2),
	}
}

func (c *cancelButton) Kind() element.Kind { return element.CancelButton }

func (c *cancelButton) IntrinsicHeight() float64 {
	return float64(lipgloss.Height(c.View()))
}

func (c *cancelButton) SetFrame(width, height float64) {}

func (c *cancelButton) SetOnTap(fn func()) { c.onTap = fn }

func (c *cancelButton) Tap() {
	if c.onTap != nil {
		c.onTap()
	}
}

func (c *cancelButton) View() string {
	return c.style.Render(c.text)
}

// blank is an empty filler with no natural size; the layout pass assigns
// its frame.
type blank struct {
	height float64
}

func (b *blank) Kind() element.Kind { return element.BlankSpace }

func (b *blank) IntrinsicHeight() float64 { return 0 }

func (b *blank) SetFrame(width, height float64) {
	b.height = height
}

func (b *blank) View() string {
	h := int(b.height)
	if h < 1 {
		h = 1
	}
	return lipgloss.NewStyle().Height(h).Render("")
}
