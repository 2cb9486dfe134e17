package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/status"
)

// EventSource delivers terminal events; tcell.Screen satisfies it
// PollEvent returns nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Handler receives everything the loop dispatches, always on the loop goroutine
type Handler interface {
	// HandleEvent processes one input event and returns false to end the loop
	HandleEvent(ev tcell.Event) bool
	// Frame advances and renders one frame at now
	Frame(now time.Time)
}

// Loop funnels polled input and frame ticks into a single goroutine
// The event poller is the only other goroutine and it never touches game state
type Loop struct {
	source   EventSource
	handler  Handler
	clock    TimeProvider
	interval time.Duration

	events   chan tcell.Event
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	statFrames *atomic.Int64
	statEvents *atomic.Int64
	statDrops  *atomic.Int64
}

// NewLoop creates a loop rendering every interval
func NewLoop(source EventSource, handler Handler, clock TimeProvider, interval time.Duration, reg *status.Registry) *Loop {
	return &Loop{
		source:     source,
		handler:    handler,
		clock:      clock,
		interval:   interval,
		events:     make(chan tcell.Event, 256),
		stopChan:   make(chan struct{}),
		statFrames: reg.Ints.Get("loop.frames"),
		statEvents: reg.Ints.Get("loop.events"),
		statDrops:  reg.Ints.Get("loop.dropped_events"),
	}
}

// Run blocks until the handler asks to quit, Stop is called or the source closes
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)

	closed := make(chan struct{})
	core.Go(func() { l.poll(closed) })

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	// Draw once so the paused track is visible before the first tick
	l.handler.Frame(l.clock.Now())

	for {
		select {
		case <-l.stopChan:
			return

		case <-closed:
			log.Printf("event source closed, leaving loop")
			return

		case ev := <-l.events:
			l.statEvents.Add(1)
			if !l.handler.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			l.statFrames.Add(1)
			l.handler.Frame(l.clock.Now())
		}
	}
}

// poll forwards source events until the source closes or the loop stops
func (l *Loop) poll(closed chan<- struct{}) {
	defer close(closed)
	for {
		ev := l.source.PollEvent()
		if ev == nil {
			return
		}

		select {
		case l.events <- ev:
		case <-l.stopChan:
			return
		default:
			// Loop is stalled; drop rather than block the terminal reader
			l.statDrops.Add(1)
		}
	}
}

// Stop ends Run; safe to call more than once and from any goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Running reports whether Run is active
func (l *Loop) Running() bool {
	return l.running.Load()
}
