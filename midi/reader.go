package midi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrShortData         = errors.New("unexpected end of data")
	ErrBadChunk          = errors.New("unexpected chunk tag")
	ErrLengthMismatch    = errors.New("chunk length does not match its events")
	ErrMissingEndOfTrack = errors.New("track has no end-of-track event")
	ErrMissingStatus     = errors.New("data byte without running status")
)

// Track is a parsed MTrk chunk
type Track struct {
	Length uint32 // declared in the chunk header
	Events []Event
}

// File is a parsed Standard MIDI File
type File struct {
	Header Header
	Tracks []Track
}

// ReadFile parses a complete file from r
func ReadFile(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseFile(data)
}

// ParseFile parses a header chunk followed by track chunks. Every track
// must end with end-of-track exactly at its declared length.
func ParseFile(data []byte) (*File, error) {
	tag, body, rest, err := splitChunk(data)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if tag != HeaderTag {
		return nil, fmt.Errorf("%w: %q, want %q", ErrBadChunk, tag, HeaderTag)
	}
	if len(body) < headerDataLen {
		return nil, fmt.Errorf("header: %w", ErrShortData)
	}

	f := &File{Header: Header{
		Format:   binary.BigEndian.Uint16(body[0:2]),
		Tracks:   binary.BigEndian.Uint16(body[2:4]),
		Division: binary.BigEndian.Uint16(body[4:6]),
	}}

	for len(rest) > 0 {
		tag, body, rest, err = splitChunk(rest)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", len(f.Tracks), err)
		}
		// Unknown chunk types are skipped
		if tag != TrackTag {
			continue
		}
		events, err := ParseTrack(body)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", len(f.Tracks), err)
		}
		f.Tracks = append(f.Tracks, Track{Length: uint32(len(body)), Events: events})
	}

	return f, nil
}

func splitChunk(data []byte) (tag string, body, rest []byte, err error) {
	if len(data) < chunkPrefix {
		return "", nil, nil, ErrShortData
	}
	tag = string(data[0:4])
	length := binary.BigEndian.Uint32(data[4:8])
	end := uint64(chunkPrefix) + uint64(length)
	if end > uint64(len(data)) {
		return tag, nil, nil, fmt.Errorf("%w: %s declares %d bytes, %d available",
			ErrLengthMismatch, tag, length, len(data)-chunkPrefix)
	}
	return tag, data[chunkPrefix:end], data[end:], nil
}

// ParseTrack decodes the event stream of one track chunk body
func ParseTrack(data []byte) ([]Event, error) {
	var (
		events  []Event
		running uint8
		offset  int
	)

	for offset < len(data) {
		delta, next, err := ReadVLQ(data, offset)
		if err != nil {
			return nil, fmt.Errorf("delta at %d: %w", offset, err)
		}
		offset = next
		if offset >= len(data) {
			return nil, fmt.Errorf("event at %d: %w", offset, ErrShortData)
		}

		e := Event{Delta: delta}
		start := offset
		status := data[offset]

		switch {
		case status == Meta:
			if offset+2 > len(data) {
				return nil, fmt.Errorf("meta at %d: %w", start, ErrShortData)
			}
			e.Type = Meta
			e.MetaType = data[offset+1]
			e.Data, offset, err = readPayload(data, offset+2)
			if err != nil {
				return nil, fmt.Errorf("meta at %d: %w", start, err)
			}
			running = 0

		case status == SysEx || status == 0xF7:
			e.Type = SysEx
			e.Data, offset, err = readPayload(data, offset+1)
			if err != nil {
				return nil, fmt.Errorf("sysex at %d: %w", start, err)
			}
			running = 0

		default:
			if status&0x80 != 0 {
				running = status
				offset++
			} else if running == 0 {
				return nil, fmt.Errorf("event at %d: %w", start, ErrMissingStatus)
			}
			e.Type = running & 0xF0
			e.Channel = running & 0x0F

			n := dataBytes(e.Type)
			if offset+n > len(data) {
				return nil, fmt.Errorf("event at %d: %w", start, ErrShortData)
			}
			e.Note = data[offset]
			if n == 2 {
				e.Velocity = data[offset+1]
			}
			offset += n
		}

		events = append(events, e)
		if e.IsEndOfTrack() {
			if offset != len(data) {
				return nil, fmt.Errorf("%w: end-of-track at %d, chunk is %d bytes",
					ErrLengthMismatch, offset, len(data))
			}
			return events, nil
		}
	}

	return nil, ErrMissingEndOfTrack
}

func readPayload(data []byte, offset int) ([]byte, int, error) {
	length, offset, err := ReadVLQ(data, offset)
	if err != nil {
		return nil, offset, err
	}
	end := offset + int(length)
	if end > len(data) {
		return nil, offset, ErrShortData
	}
	return data[offset:end], end, nil
}

// Program change and channel pressure carry one data byte, the rest two
func dataBytes(kind uint8) int {
	switch kind {
	case 0xC0, 0xD0:
		return 1
	default:
		return 2
	}
}

// Notes returns the keys of every note-on with non-zero velocity, in order
func Notes(events []Event) []uint8 {
	var notes []uint8
	for _, e := range events {
		if e.Type == NoteOn && e.Velocity > 0 {
			notes = append(notes, e.Note)
		}
	}
	return notes
}
