package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/event"

	"github.com/jakecoffman/cp"
)

// seqRand replays a fixed list of draws.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type fakeResolver struct {
	paths []string
}

func (f *fakeResolver) Load(path string) component.ImageHandle {
	f.paths = append(f.paths, path)
	return 7
}

type fixedLocator struct {
	pos cp.Vector
	ok  bool
}

func (l *fixedLocator) PlayerPosition() (cp.Vector, bool) {
	return l.pos, l.ok
}

// eventLog records every event it is subscribed to.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) of(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newEventLog(d *event.Dispatcher) *eventLog {
	l := &eventLog{}
	d.Subscribe(event.WaveSpawned, l)
	d.Subscribe(event.StageAdvanced, l)
	d.Subscribe(event.StagesExhausted, l)
	return l
}
