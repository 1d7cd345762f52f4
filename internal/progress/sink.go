package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Marker prefixes every machine-readable progress line. Supervising
// processes scan stderr for this prefix and parse the JSON after it.
const Marker = ">>>PROGRESS:"

// Sink consumes progress events. Implementations must tolerate being
// called from the single orchestrator goroutine in strict event order;
// they decide themselves whether to hand off to other goroutines.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Multi fans each event out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			s.Emit(e)
		}
	})
}

// MarkerSink serializes events as one ">>>PROGRESS:{json}" line each,
// the side-channel protocol a supervising GUI reads from stderr.
type MarkerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewMarkerSink writes marker lines to w, typically os.Stderr.
func NewMarkerSink(w io.Writer) *MarkerSink {
	return &MarkerSink{w: w}
}

// Emit writes one marker line. Serialization problems are swallowed;
// a progress side channel must never break the batch.
func (s *MarkerSink) Emit(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s%s\n", Marker, data)
}

// ChanSink forwards events to a channel, letting a consumer goroutine
// (the TUI) receive them without sharing state with the orchestrator.
// The channel should be buffered; Emit blocks when it is full.
type ChanSink chan Event

// Emit sends e on the channel.
func (c ChanSink) Emit(e Event) { c <- e }
