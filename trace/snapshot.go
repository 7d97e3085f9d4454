package trace

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the snapshot format changes.
const snapshotSchemaVersion uint16 = 1

// snapshot is the serialized form of a ring dump.
type snapshot struct {
	Schema uint16
	Events []Event
}

// WriteSnapshot encodes events as a versioned msgpack snapshot.
func WriteSnapshot(w io.Writer, events []Event) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(snapshot{Schema: snapshotSchemaVersion, Events: events}); err != nil {
		return fmt.Errorf("failed to encode trace snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a msgpack snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) ([]Event, error) {
	dec := msgpack.NewDecoder(r)
	var s snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode trace snapshot: %w", err)
	}
	if s.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot schema %d (want %d)", s.Schema, snapshotSchemaVersion)
	}
	return s.Events, nil
}
