package slider

// PointerKind distinguishes the events a drag session listens for.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerUp
)

// PointerEvent is a viewport-level pointer event. X is in pixels, in the same
// coordinate space as the reference bounds.
type PointerEvent struct {
	Kind PointerKind
	X    float64
}

type PointerHandler func(PointerEvent)

// Bus fans viewport pointer events out to whoever is subscribed. The host
// dispatches every move/up it sees; only an active drag session listens.
type Bus struct {
	nextID int
	subs   map[int]PointerHandler
	order  []int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]PointerHandler)}
}

// Subscribe registers h and returns a func that removes it. The returned func
// is safe to call more than once.
func (b *Bus) Subscribe(h PointerHandler) func() {
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.order = append(b.order, id)
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int) {
	if _, ok := b.subs[id]; !ok {
		return
	}
	delete(b.subs, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Dispatch delivers ev to every handler subscribed at the time of the call.
// Handlers may unsubscribe themselves while being called.
func (b *Bus) Dispatch(ev PointerEvent) {
	ids := append([]int(nil), b.order...)
	for _, id := range ids {
		if h, ok := b.subs[id]; ok {
			h(ev)
		}
	}
}

// Len is the number of live subscriptions.
func (b *Bus) Len() int { return len(b.subs) }
