package midi

import "errors"

// MaxVLQ is the largest value a 4-byte variable-length quantity can hold
const MaxVLQ uint32 = 0x0FFFFFFF

var (
	ErrVLQTooLarge = errors.New("value exceeds variable-length quantity range")
	ErrVLQTooLong  = errors.New("variable-length quantity longer than 4 bytes")
)

// AppendVLQ appends v as a MIDI variable-length quantity: 7 bits per byte,
// most significant group first, continuation bit set on all but the last.
// Bits above MaxVLQ are dropped.
func AppendVLQ(dst []byte, v uint32) []byte {
	v &= MaxVLQ

	var buf [4]byte
	i := len(buf) - 1
	buf[i] = byte(v & 0x7F)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		buf[i] = byte(v&0x7F) | 0x80
	}
	return append(dst, buf[i:]...)
}

// ReadVLQ decodes a variable-length quantity starting at offset and returns
// the value and the offset just past it.
func ReadVLQ(data []byte, offset int) (uint32, int, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		if offset >= len(data) {
			return 0, offset, ErrShortData
		}
		b := data[offset]
		offset++
		v = v<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return v, offset, nil
		}
	}
	return 0, offset, ErrVLQTooLong
}
