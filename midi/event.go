package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
	SysEx   uint8 = 0xF0
	Meta    uint8 = 0xFF
)

// Meta event types
const (
	MetaEndOfTrack uint8 = 0x2F
)

// Fixed output parameters
const (
	Channel  uint8  = 0
	Velocity uint8  = 0x63
	Division uint16 = 96  // ticks per quarter note
	Hold     uint32 = 384 // note length in ticks (one whole note)
)

// Event is a single track event. Delta is in ticks since the previous event.
type Event struct {
	Delta    uint32
	Type     uint8 // NoteOn, NoteOff, Meta, or another channel status (high nibble)
	Channel  uint8
	Note     uint8
	Velocity uint8
	MetaType uint8  // Meta only
	Data     []byte // Meta and SysEx payload
}

// NoteOnEvent strikes a note on the output channel at the fixed velocity
func NoteOnEvent(delta uint32, note uint8) Event {
	return Event{Delta: delta, Type: NoteOn, Channel: Channel, Note: note, Velocity: Velocity}
}

// NoteOffEvent releases a note on the output channel
func NoteOffEvent(delta uint32, note uint8) Event {
	return Event{Delta: delta, Type: NoteOff, Channel: Channel, Note: note}
}

// EndOfTrackEvent terminates a track
func EndOfTrackEvent(delta uint32) Event {
	return Event{Delta: delta, Type: Meta, MetaType: MetaEndOfTrack}
}

// IsEndOfTrack reports whether e is the end-of-track meta event
func (e Event) IsEndOfTrack() bool {
	return e.Type == Meta && e.MetaType == MetaEndOfTrack
}

// Bytes returns the event's message bytes, without the delta-time
func (e Event) Bytes() ([]byte, error) {
	switch e.Type {
	case NoteOn:
		return gomidi.NoteOn(e.Channel, e.Note, e.Velocity), nil
	case NoteOff:
		return gomidi.NoteOff(e.Channel, e.Note), nil
	case Meta:
		if len(e.Data) > int(MaxVLQ) {
			return nil, fmt.Errorf("meta event 0x%02X: %w", e.MetaType, ErrVLQTooLarge)
		}
		out := []byte{Meta, e.MetaType}
		out = AppendVLQ(out, uint32(len(e.Data)))
		return append(out, e.Data...), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnsupportedEvent, e.Type)
	}
}

func (e Event) String() string {
	switch e.Type {
	case NoteOn:
		return fmt.Sprintf("+%-5d note-on  ch=%d key=%d vel=%d", e.Delta, e.Channel, e.Note, e.Velocity)
	case NoteOff:
		return fmt.Sprintf("+%-5d note-off ch=%d key=%d vel=%d", e.Delta, e.Channel, e.Note, e.Velocity)
	case Meta:
		if e.IsEndOfTrack() {
			return fmt.Sprintf("+%-5d end-of-track", e.Delta)
		}
		return fmt.Sprintf("+%-5d meta 0x%02X len=%d", e.Delta, e.MetaType, len(e.Data))
	case SysEx:
		return fmt.Sprintf("+%-5d sysex len=%d", e.Delta, len(e.Data))
	default:
		return fmt.Sprintf("+%-5d status 0x%02X ch=%d data=%d,%d", e.Delta, e.Type, e.Channel, e.Note, e.Velocity)
	}
}
