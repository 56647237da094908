package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendVLQ(t *testing.T) {
	tests := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{0x40, []byte{0x40}},
		{0x7F, []byte{0x7F}},
		{0x80, []byte{0x81, 0x00}},
		{384, []byte{0x83, 0x00}},
		{0x2000, []byte{0xC0, 0x00}},
		{0x3FFF, []byte{0xFF, 0x7F}},
		{0x4000, []byte{0x81, 0x80, 0x00}},
		{0x1FFFFF, []byte{0xFF, 0xFF, 0x7F}},
		{0x200000, []byte{0x81, 0x80, 0x80, 0x00}},
		{MaxVLQ, []byte{0xFF, 0xFF, 0xFF, 0x7F}},
	}

	for _, tt := range tests {
		got := AppendVLQ(nil, tt.value)
		assert.Equal(t, tt.want, got, "0x%X", tt.value)

		v, next, err := ReadVLQ(got, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.value, v)
		assert.Equal(t, len(got), next)
	}
}

func TestAppendVLQKeepsPrefix(t *testing.T) {
	got := AppendVLQ([]byte{0xAA}, 384)
	assert.Equal(t, []byte{0xAA, 0x83, 0x00}, got)
}

func TestReadVLQErrors(t *testing.T) {
	_, _, err := ReadVLQ([]byte{0x83}, 0)
	assert.ErrorIs(t, err, ErrShortData)

	_, _, err = ReadVLQ([]byte{0x80, 0x80, 0x80, 0x80, 0x00}, 0)
	assert.ErrorIs(t, err, ErrVLQTooLong)

	_, _, err = ReadVLQ(nil, 0)
	assert.ErrorIs(t, err, ErrShortData)
}

func TestReadVLQOffset(t *testing.T) {
	data := []byte{0x00, 0x90, 0x83, 0x00, 0x80}
	v, next, err := ReadVLQ(data, 2)
	require.NoError(t, err)
	assert.Equal(t, Hold, v)
	assert.Equal(t, 4, next)
}
