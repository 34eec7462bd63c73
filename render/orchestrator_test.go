package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// stubRenderer writes its rune at a fixed cell and records call order
type stubRenderer struct {
	r       rune
	order   *[]rune
	visible bool
}

func (s *stubRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*s.order = append(*s.order, s.r)
	buf.Set(0, 0, s.r, tcell.StyleDefault)
}

func (s *stubRenderer) IsVisible() bool { return s.visible }

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2)

	var order []rune
	o.Register(&stubRenderer{r: 'u', order: &order, visible: true}, PriorityUI)
	o.Register(&stubRenderer{r: 'b', order: &order, visible: true}, PriorityBackground)
	o.Register(&stubRenderer{r: 'f', order: &order, visible: true}, PriorityField)
	o.Register(&stubRenderer{r: 'g', order: &order, visible: true}, PriorityField)

	o.RenderFrame(RenderContext{Width: 4, Height: 2})

	if got := string(order); got != "bfgu" {
		t.Errorf("Render order = %q, want \"bfgu\"", got)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != 'u' {
		t.Errorf("Top cell = %q, want last renderer 'u'", r)
	}
}

func TestOrchestratorSkipsHidden(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2)

	var order []rune
	o.Register(&stubRenderer{r: 'a', order: &order, visible: true}, PriorityField)
	o.Register(&stubRenderer{r: 'h', order: &order, visible: false}, PriorityUI)

	o.RenderFrame(RenderContext{Width: 4, Height: 2})

	if got := string(order); got != "a" {
		t.Errorf("Render order = %q, want \"a\"", got)
	}
}

func TestOrchestratorClearsBetweenFrames(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	o := NewRenderOrchestrator(screen, 4, 2)

	var order []rune
	s := &stubRenderer{r: 'x', order: &order, visible: true}
	o.Register(s, PriorityField)

	o.RenderFrame(RenderContext{})
	s.visible = false
	o.RenderFrame(RenderContext{})

	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Stale cell %q survived frame", r)
	}

	o.Resize(6, 3)
	if w, h := o.Buffer().Bounds(); w != 6 || h != 3 {
		t.Errorf("Buffer = %dx%d after resize", w, h)
	}
}
