package region

import (
	"bytes"
	"fmt"
)

// Kind identifies an Event.
type Kind uint8

const (
	// KindAllocated reports a block handed out by Allocate.
	KindAllocated Kind = iota + 1
	// KindDeallocated reports a block returned by Deallocate.
	KindDeallocated
	// KindWrite reports a payload stored by Write.
	KindWrite
	// KindRead reports a window returned by Read or ReadInto.
	KindRead
	// KindCorrected reports a data bit flipped back by the decoder.
	KindCorrected
	// KindCheckBit reports a group whose stored check code was damaged.
	KindCheckBit
	// KindUncorrectable reports a detected error with no safe correction.
	KindUncorrectable
	// KindFault reports an injected data or check-code fault.
	KindFault
	// KindScrubbed reports one block verified by Scrub.
	KindScrubbed
)

var kindNames = map[Kind]string{
	KindAllocated:     "allocated",
	KindDeallocated:   "deallocated",
	KindWrite:         "write",
	KindRead:          "read",
	KindCorrected:     "corrected",
	KindCheckBit:      "check-bit",
	KindUncorrectable: "uncorrectable",
	KindFault:         "fault",
	KindScrubbed:      "scrubbed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event describes one observable action of a region.
//
// Offset is a byte offset into the data buffer. BitPosition and Slot are set
// for decode events; BitPosition is an absolute bit offset (byte*8 + bit) of
// the corrected bit, or of the first bit of the group when nothing was
// corrected.
type Event struct {
	Kind        Kind
	Offset      int
	Size        int
	BitPosition int
	Slot        int
	Syndrome    uint8
	// Mask is the XOR mask applied by a fault event.
	Mask byte
	// Data is the payload of write and read events. It aliases caller
	// memory and is only valid during Observe; observers that keep it must
	// copy it.
	Data []byte
}

// Observer receives region events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Observers fans an event out to every non-nil member in order.
type Observers []Observer

// Observe delivers e to each observer.
func (o Observers) Observe(e Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Observe(e)
		}
	}
}

// Recorder keeps every event it observes. It is not safe for concurrent use
// outside a region.
type Recorder struct {
	Events []Event
}

// Observe appends e, copying its Data.
func (r *Recorder) Observe(e Event) {
	e.Data = bytes.Clone(e.Data)
	r.Events = append(r.Events, e)
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded events of kind k.
func (r *Recorder) Filter(k Kind) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops every recorded event.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }
