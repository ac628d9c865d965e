// Package dispatch implements the single-writer broadcast loop: one
// goroutine owns the subscriber table and multiplexes one event channel
// into N independent, filtered, per-subscriber outbound channels with
// non-blocking backpressure and lag-eviction.
//
// The loop shape (one goroutine, two input channels, no priority between
// them, non-blocking per-receiver send classified into accepted/full/
// closed) is the same structure as a broadcast hub's run loop: a
// register/unregister/broadcast select with a default-case drop on a full
// receiver channel.
package dispatch

import (
	"context"
	"sync/atomic"

	"geyserfanout/internal/events"
	"geyserfanout/internal/filter"
	pb "geyserfanout/internal/proto/pb"
)

// Gauge is the minimal counter interface the loop needs to report live
// subscriber count. prometheus.Gauge satisfies this.
type Gauge interface {
	Inc()
	Dec()
}

type noopGauge struct{}

func (noopGauge) Inc() {}
func (noopGauge) Dec() {}

// Reporter receives best-effort notifications for the admin feed. Neither
// method may block; the loop calls them inline during table maintenance.
type Reporter interface {
	Registered(total int)
	Removed(total int, id uint64, reason string)
}

type noopReporter struct{}

func (noopReporter) Registered(int)           {}
func (noopReporter) Removed(int, uint64, string) {}

// OutMsg is the wire-level update handed to a subscriber's outbound
// channel. Err, when set, is a terminal status; the channel is not used
// again afterward.
type OutMsg struct {
	Labels  []string
	Payload *pb.SubscribeUpdate
	Err     error
}

// subscriber is the dispatch loop's private view of one connection. Done
// is closed by the subscription handler when the underlying stream ends;
// it lets the loop distinguish "full" (slow consumer) from "closed" (peer
// gone) on a channel whose send already failed non-blockingly, since plain
// Go channels carry no such signal on their own.
type subscriber struct {
	id       uint64
	filter   filter.Filter
	outbound chan *OutMsg
	done     <-chan struct{}
}

// Register installs a new subscriber. The caller guarantees id is fresh
// and filter is the Empty filter.
type Register struct {
	ID       uint64
	Filter   filter.Filter
	Outbound chan *OutMsg
	Done     <-chan struct{}
}

// UpdateFilter replaces the active filter for an existing subscriber. A
// reference to an unknown or already-evicted id is dropped silently.
type UpdateFilter struct {
	ID     uint64
	Filter filter.Filter
}

// idCounter is the process-wide, monotonically increasing subscriber-id
// source. It is mutated only by atomic fetch-and-add and must survive
// failed subscription attempts, so it lives independently of any table.
var idCounter uint64

// NextID allocates a fresh subscriber id.
func NextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}

// Loop is the dispatch core. Zero value is not usable; construct with New.
type Loop struct {
	events  <-chan events.Event
	control <-chan any

	gauge    Gauge
	reporter Reporter

	table map[uint64]*subscriber
}

// Option configures a Loop at construction time.
type Option func(*Loop)

// WithGauge sets the connection gauge the loop increments and decrements.
func WithGauge(g Gauge) Option {
	return func(l *Loop) { l.gauge = g }
}

// WithReporter sets the admin-feed observer.
func WithReporter(r Reporter) Option {
	return func(l *Loop) { l.reporter = r }
}

// New constructs a dispatch loop reading from the given event and control
// channels. Run must be called to drive it.
func New(eventsCh <-chan events.Event, controlCh <-chan any, opts ...Option) *Loop {
	l := &Loop{
		events:   eventsCh,
		control:  controlCh,
		gauge:    noopGauge{},
		reporter: noopReporter{},
		table:    make(map[uint64]*subscriber),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run drains both channels until they are closed, then removes every
// subscriber still in the table (decrementing the gauge for each) and
// returns. It never blocks on a subscriber's outbound channel while
// holding the table.
func (l *Loop) Run(ctx context.Context) {
	defer func() {
		for id := range l.table {
			delete(l.table, id)
			l.gauge.Dec()
		}
	}()
	eventsCh := l.events
	controlCh := l.control
	for eventsCh != nil || controlCh != nil {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-eventsCh:
			if !ok {
				eventsCh = nil
				continue
			}
			l.handleEvent(e)
		case c, ok := <-controlCh:
			if !ok {
				controlCh = nil
				continue
			}
			l.handleControl(c)
		}
	}
}

func (l *Loop) handleControl(c any) {
	switch msg := c.(type) {
	case Register:
		l.table[msg.ID] = &subscriber{
			id:       msg.ID,
			filter:   msg.Filter,
			outbound: msg.Outbound,
			done:     msg.Done,
		}
		l.gauge.Inc()
		l.reporter.Registered(len(l.table))
	case UpdateFilter:
		if sub, ok := l.table[msg.ID]; ok {
			sub.filter = msg.Filter
		}
	}
}

func (l *Loop) handleEvent(e events.Event) {
	if len(l.table) == 0 {
		return
	}

	var fullIDs, closedIDs []uint64
	for id, sub := range l.table {
		labels := sub.filter.FiltersFor(e)
		if len(labels) == 0 {
			continue
		}
		msg := &OutMsg{Labels: labels, Payload: events.Project(e)}
		switch enqueue(sub, msg) {
		case enqueueFull:
			fullIDs = append(fullIDs, id)
		case enqueueClosed:
			closedIDs = append(closedIDs, id)
		}
	}

	for _, id := range fullIDs {
		l.evictLagging(id)
	}
	for _, id := range closedIDs {
		l.removePassive(id)
	}
}

type enqueueResult int

const (
	enqueueAccepted enqueueResult = iota
	enqueueFull
	enqueueClosed
)

// enqueue is the non-blocking send at the heart of the dispatch loop's
// backpressure policy. A full buffer and a gone peer both fail the first
// select non-blockingly; done distinguishes which one happened.
func enqueue(sub *subscriber, msg *OutMsg) enqueueResult {
	select {
	case sub.outbound <- msg:
		return enqueueAccepted
	default:
	}
	select {
	case <-sub.done:
		return enqueueClosed
	default:
		return enqueueFull
	}
}

func (l *Loop) evictLagging(id uint64) {
	sub, ok := l.table[id]
	if !ok {
		return
	}
	delete(l.table, id)
	l.gauge.Dec()
	l.reporter.Removed(len(l.table), id, "lagged")

	go func() {
		select {
		case sub.outbound <- &OutMsg{Err: errLagged}:
		case <-sub.done:
		}
	}()
}

func (l *Loop) removePassive(id uint64) {
	if _, ok := l.table[id]; !ok {
		return
	}
	delete(l.table, id)
	l.gauge.Dec()
	l.reporter.Removed(len(l.table), id, "peer_closed")
}
