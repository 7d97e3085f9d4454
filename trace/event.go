package trace

import (
	"fmt"

	"github.com/shpegun60/coop/tick"
)

// Kind identifies a trace event category.
type Kind uint8

const (
	// KindWaitBegin marks entry into a wait scope.
	KindWaitBegin Kind = iota + 1
	// KindWaitEnd marks exit from a wait scope.
	KindWaitEnd
	// KindPump marks one pump invocation.
	KindPump
	// KindTimeout marks a conditional wait that expired before its
	// predicate became true.
	KindTimeout
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindWaitBegin:
		return "wait-begin"
	case KindWaitEnd:
		return "wait-end"
	case KindPump:
		return "pump"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Event is one record of cooperative wait activity.
type Event struct {
	Kind  Kind
	At    tick.Ticks // tick at emission time
	Depth int        // wait-nesting depth at emission time
	Light bool       // latency hint, meaningful for KindPump
	Note  string     // operation label, e.g. "delay" or "until"
}

// String renders the event as a single line, the format used by Stream.
func (ev Event) String() string {
	out := fmt.Sprintf("[%8d] %-10s depth=%d", uint64(ev.At), ev.Kind, ev.Depth)
	if ev.Kind == KindPump {
		out += fmt.Sprintf(" light=%t", ev.Light)
	}
	if ev.Note != "" {
		out += " " + ev.Note
	}
	return out
}

// level returns the minimum Level at which the event is emitted.
func (ev Event) level() Level {
	if ev.Kind == KindPump {
		return LevelPump
	}
	return LevelWait
}
