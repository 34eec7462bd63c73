package events

import "testing"

type counter struct {
	seen []EventType
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*counter](q)

	var order []string
	r.Register(HandlerFunc[*counter]{
		Types: []EventType{EventMoleHit, EventRoundOver},
		Fn: func(c *counter, ev GameEvent) {
			c.seen = append(c.seen, ev.Type)
			order = append(order, "first")
		},
	})
	r.Register(HandlerFunc[*counter]{
		Types: []EventType{EventRoundOver},
		Fn:    func(c *counter, ev GameEvent) { order = append(order, "second") },
	})

	if r.HandlerCount(EventRoundOver) != 2 || r.HandlerCount(EventMuteToggle) != 0 {
		t.Fatal("unexpected handler counts")
	}

	q.Push(GameEvent{Type: EventMoleHit})
	q.Push(GameEvent{Type: EventMuteToggle})
	q.Push(GameEvent{Type: EventRoundOver})

	c := &counter{}
	if n := r.DispatchAll(c); n != 3 {
		t.Errorf("dispatched %d, want 3", n)
	}

	if len(c.seen) != 2 || c.seen[0] != EventMoleHit || c.seen[1] != EventRoundOver {
		t.Errorf("seen = %v", c.seen)
	}
	want := []string{"first", "first", "second"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}

	if n := r.DispatchAll(c); n != 0 {
		t.Errorf("second dispatch consumed %d", n)
	}
}
