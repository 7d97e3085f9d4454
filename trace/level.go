package trace

import "fmt"

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff Level = iota
	// LevelWait emits wait boundaries and timeouts.
	LevelWait
	// LevelPump additionally emits one event per pump call.
	LevelPump
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelWait:
		return "wait"
	case LevelPump:
		return "pump"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off":
		return LevelOff, nil
	case "wait":
		return LevelWait, nil
	case "pump":
		return LevelPump, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|wait|pump)", s)
	}
}
