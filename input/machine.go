package input

import "github.com/gdamore/tcell/v2"

// HoleLocator resolves screen cells and hot-keys to holes
type HoleLocator interface {
	HoleAt(x, y int) (int, bool)
	Center(hole int) (int, int)
	Holes() int
}

// Machine turns tcell events into intents
type Machine struct {
	keys    *KeyTable
	holes   HoleLocator
	buttons tcell.ButtonMask // last seen mouse buttons for edge detection
}

// NewMachine creates a machine over the hole layout, using the default key table if keys is nil
func NewMachine(holes HoleLocator, keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys, holes: holes}
}

// SetLocator swaps the hole layout, used after a resize
func (m *Machine) SetLocator(holes HoleLocator) {
	m.holes = holes
}

// Process returns the intent for ev, or nil if it maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Hole: -1, X: w, Y: h}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if t, ok := m.keys.SpecialKeys[ev.Key()]; ok {
			return &Intent{Type: t, Hole: -1}
		}
		return nil
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		hole := int(r - '1')
		if hole >= m.holes.Holes() {
			return nil
		}
		x, y := m.holes.Center(hole)
		return &Intent{Type: IntentHit, Hole: hole, X: x, Y: y}
	}
	if t, ok := m.keys.Runes[r]; ok {
		return &Intent{Type: t, Hole: -1}
	}
	return nil
}

// processMouse fires on the press edge of the left button only
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = buttons
	if !pressed {
		return nil
	}

	x, y := ev.Position()
	hole, ok := m.holes.HoleAt(x, y)
	if !ok {
		return nil
	}
	return &Intent{Type: IntentHit, Hole: hole, X: x, Y: y}
}
