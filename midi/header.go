package midi

import (
	"encoding/binary"
	"io"
)

// Chunk tags
const (
	HeaderTag = "MThd"
	TrackTag  = "MTrk"
)

const (
	headerDataLen = 6
	chunkPrefix   = 8 // tag + 4-byte length
)

// Header holds the MThd fields
type Header struct {
	Format   uint16
	Tracks   uint16
	Division uint16
}

// DefaultHeader is a single-track format 0 file at 96 ticks per quarter
var DefaultHeader = Header{Format: 0, Tracks: 1, Division: Division}

// Bytes returns the complete 14-byte header chunk
func (h Header) Bytes() []byte {
	out := make([]byte, 0, chunkPrefix+headerDataLen)
	out = append(out, HeaderTag...)
	out = binary.BigEndian.AppendUint32(out, headerDataLen)
	out = binary.BigEndian.AppendUint16(out, h.Format)
	out = binary.BigEndian.AppendUint16(out, h.Tracks)
	out = binary.BigEndian.AppendUint16(out, h.Division)
	return out
}

// WriteHeader writes the fixed header chunk (format 0, one track, 96 ticks)
func WriteHeader(w io.Writer) error {
	_, err := w.Write(DefaultHeader.Bytes())
	return err
}
