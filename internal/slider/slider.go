package slider

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// State is the drag tracker's position in its gesture lifecycle.
type State int

const (
	Idle State = iota
	Dragging
	Settled
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// Reference supplies the current bounds of the track element. ok is false
// while the element is not laid out yet.
type Reference interface {
	Bounds() (r Rect, ok bool)
}

// ReferenceFunc adapts a plain func to Reference.
type ReferenceFunc func() (Rect, bool)

func (f ReferenceFunc) Bounds() (Rect, bool) { return f() }

// Outcome is reported to the embedding application when a gesture latches a
// decision.
type Outcome struct {
	ID       uuid.UUID
	Decision Decision
	Offset   float64
	At       time.Time
}

type Options struct {
	// MaxDistance is the clamp boundary. Zero means DefaultMaxDistance.
	MaxDistance float64
	// OnDecision is called synchronously once per latched decision.
	OnDecision func(Outcome)
	Logger     log.FieldLogger
	Now        func() time.Time
}

// dragSession is the listening state between pointer-down and pointer-up.
type dragSession struct {
	id          uuid.UUID
	unsubscribe func()
}

// Slider is the drag tracker. It is not safe for concurrent use; all calls are
// expected from the host's event loop.
type Slider struct {
	bus      *Bus
	ref      Reference
	max      float64
	onDec    func(Outcome)
	log      log.FieldLogger
	now      func() time.Time
	offset   float64
	decision Decision
	session  *dragSession
}

func New(bus *Bus, ref Reference, opts Options) *Slider {
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = DefaultMaxDistance
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Slider{
		bus:   bus,
		ref:   ref,
		max:   opts.MaxDistance,
		onDec: opts.OnDecision,
		log:   opts.Logger,
		now:   opts.Now,
	}
}

func (s *Slider) Offset() float64      { return s.offset }
func (s *Slider) Decision() Decision   { return s.decision }
func (s *Slider) MaxDistance() float64 { return s.max }
func (s *Slider) DialogOpen() bool     { return s.decision != None }
func (s *Slider) Sign() Sign           { return SignOf(s.offset) }

func (s *Slider) State() State {
	switch {
	case s.session != nil:
		return Dragging
	case s.decision != None:
		return Settled
	default:
		return Idle
	}
}

// Presentation maps the current state to its visual attributes.
func (s *Slider) Presentation() Presentation {
	return Present(s.Sign(), s.decision)
}

// PointerDown starts a gesture. It is ignored unless the slider is idle.
func (s *Slider) PointerDown() {
	if s.State() != Idle {
		return
	}
	sess := &dragSession{id: uuid.New()}
	sess.unsubscribe = s.bus.Subscribe(s.handle)
	s.session = sess
	s.log.WithFields(log.Fields{
		"gesture": sess.id,
	}).Debug("Drag started")
}

func (s *Slider) handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		s.move(ev.X)
	case PointerUp:
		s.release()
	}
}

func (s *Slider) move(x float64) {
	if s.ref == nil {
		return
	}
	r, ok := s.ref.Bounds()
	if !ok {
		return
	}
	s.offset = Clamp(x-r.CenterX(), s.max)
}

func (s *Slider) release() {
	sess := s.session
	if sess == nil {
		return
	}
	s.endSession()

	switch s.offset {
	case s.max:
		s.latch(sess.id, Accepted)
	case -s.max:
		s.latch(sess.id, Declined)
	default:
		s.log.WithFields(log.Fields{
			"gesture": sess.id,
			"offset":  s.offset,
		}).Debug("Released short of an end, snapping back")
		s.offset = 0
	}
}

func (s *Slider) latch(id uuid.UUID, d Decision) {
	s.decision = d
	out := Outcome{ID: id, Decision: d, Offset: s.offset, At: s.now()}
	s.log.WithFields(log.Fields{
		"gesture":  id,
		"decision": d.String(),
	}).Info("Bet decision latched")
	if s.onDec != nil {
		s.onDec(out)
	}
}

// Dismiss closes the decision dialog and returns the slider to neutral.
func (s *Slider) Dismiss() {
	if s.decision == None {
		return
	}
	s.log.WithFields(log.Fields{
		"decision": s.decision.String(),
	}).Debug("Decision dialog dismissed")
	s.decision = None
	s.offset = 0
}

// Teardown releases a live drag subscription without latching anything. The
// host calls it when the widget goes away mid-gesture.
func (s *Slider) Teardown() {
	if s.session == nil {
		return
	}
	s.log.WithFields(log.Fields{
		"gesture": s.session.id,
	}).Debug("Torn down mid-drag")
	s.endSession()
	s.offset = 0
}

func (s *Slider) endSession() {
	if s.session == nil {
		return
	}
	s.session.unsubscribe()
	s.session = nil
}
