package midi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrUnsupportedEvent = errors.New("unsupported event type")

// ScaleEvents plays the notes one after another, each held for Hold ticks
func ScaleEvents(notes []uint8) []Event {
	events := make([]Event, 0, 2*len(notes)+1)
	for _, n := range notes {
		events = append(events, NoteOnEvent(0, n), NoteOffEvent(Hold, n))
	}
	return append(events, EndOfTrackEvent(0))
}

// ChordEvents strikes all notes together and releases them together Hold
// ticks later. Only the first release carries the delay.
func ChordEvents(notes []uint8) []Event {
	events := make([]Event, 0, 2*len(notes)+1)
	for _, n := range notes {
		events = append(events, NoteOnEvent(0, n))
	}
	for i, n := range notes {
		delta := uint32(0)
		if i == 0 {
			delta = Hold
		}
		events = append(events, NoteOffEvent(delta, n))
	}
	return append(events, EndOfTrackEvent(0))
}

// EncodeEvents serializes events as delta-time + message pairs
func EncodeEvents(events []Event) ([]byte, error) {
	var out []byte
	for i, e := range events {
		if e.Delta > MaxVLQ {
			return nil, fmt.Errorf("event %d delta %d: %w", i, e.Delta, ErrVLQTooLarge)
		}
		msg, err := e.Bytes()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = AppendVLQ(out, e.Delta)
		out = append(out, msg...)
	}
	return out, nil
}

// TrackChunk returns a complete MTrk chunk. The length field is taken from
// the encoded events themselves.
func TrackChunk(events []Event) ([]byte, error) {
	data, err := EncodeEvents(events)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, chunkPrefix+len(data))
	out = append(out, TrackTag...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(data)))
	return append(out, data...), nil
}

// WriteTrack encodes events and writes them as one track chunk
func WriteTrack(w io.Writer, events []Event) error {
	chunk, err := TrackChunk(events)
	if err != nil {
		return err
	}
	_, err = w.Write(chunk)
	return err
}

// WriteScaleTrack writes a track playing the notes in sequence
func WriteScaleTrack(w io.Writer, notes []uint8) error {
	return WriteTrack(w, ScaleEvents(notes))
}

// WriteChordTrack writes a track playing the notes simultaneously
func WriteChordTrack(w io.Writer, notes []uint8) error {
	return WriteTrack(w, ChordEvents(notes))
}
