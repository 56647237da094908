package generator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midigen/midi"
	"midigen/theory"
)

func TestParseShape(t *testing.T) {
	tests := map[string]Shape{
		"s":      ShapeScale,
		"scale":  ShapeScale,
		"c":      ShapeChord,
		"chord":  ShapeChord,
		"Chord":  ShapeChord,
		"":       ShapeUnknown,
		"arpegg": ShapeUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseShape(in), in)
	}
}

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("c", "Fs", "m7")
	require.NoError(t, err)
	assert.Equal(t, Request{Shape: ShapeChord, Root: theory.RootFs, RootName: "Fs", Mapping: "m7"}, req)

	req, err = NewRequest("s", "D", "")
	require.NoError(t, err)
	assert.Equal(t, "major", req.Mapping)

	req, err = NewRequest("chord", "D", "")
	require.NoError(t, err)
	assert.Equal(t, "maj", req.Mapping)

	req, err = NewRequest("s", "H", "minor")
	require.NoError(t, err)
	assert.Equal(t, theory.RootUnknown, req.Root)

	_, err = NewRequest("x", "C", "maj")
	assert.ErrorIs(t, err, ErrUnknownShape)
	assert.True(t, IsUsageError(err))
}

func TestNotes(t *testing.T) {
	tests := []struct {
		shape, root, mapping string
		want                 []uint8
	}{
		{"s", "C", "", []uint8{36, 38, 40, 41, 43, 45, 47, 48}},
		{"s", "A", "minor", []uint8{45, 47, 48, 50, 52, 53, 55, 57}},
		{"s", "C", "minor_pentatonic", []uint8{36, 39, 41, 43, 46, 48}},
		{"c", "C", "", []uint8{36, 40, 43}},
		{"c", "D", "m7", []uint8{38, 41, 45, 48}},
		{"c", "G", "7", []uint8{43, 47, 50, 53}},
	}
	for _, tt := range tests {
		t.Run(tt.shape+tt.root+tt.mapping, func(t *testing.T) {
			req, err := NewRequest(tt.shape, tt.root, tt.mapping)
			require.NoError(t, err)
			notes, warnings := Notes(req)
			assert.Empty(t, warnings)
			assert.Equal(t, tt.want, notes)
		})
	}
}

func TestNotesWarningsCarryInput(t *testing.T) {
	req, err := NewRequest("c", "H", "bogus")
	require.NoError(t, err)

	notes, warnings := Notes(req)
	assert.Equal(t, []uint8{36, 40, 43}, notes)
	require.Len(t, warnings, 2)
	assert.Equal(t, theory.Warning{Kind: theory.UnknownRoot, Input: "H", Fallback: "C"}, warnings[0])
	assert.Equal(t, theory.Warning{Kind: theory.UnknownQuality, Input: "bogus", Fallback: "maj"}, warnings[1])

	req, err = NewRequest("s", "E", "bogus")
	require.NoError(t, err)
	_, warnings = Notes(req)
	require.Len(t, warnings, 1)
	assert.Equal(t, theory.Warning{Kind: theory.UnknownMode, Input: "bogus", Fallback: "major"}, warnings[0])
}

func generate(t *testing.T, shape, root, mapping string) ([]byte, *Result) {
	t.Helper()
	req, err := NewRequest(shape, root, mapping)
	require.NoError(t, err)
	var buf bytes.Buffer
	res, err := Generate(&buf, req)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), res.Bytes)
	return buf.Bytes(), res
}

func TestGenerateFallbackMatchesDefault(t *testing.T) {
	bogusScale, res := generate(t, "s", "D", "bogus")
	majorScale, _ := generate(t, "s", "D", "major")
	assert.Equal(t, majorScale, bogusScale)
	assert.Len(t, res.Warnings, 1)

	bogusChord, res := generate(t, "c", "D", "bogus")
	majChord, _ := generate(t, "c", "D", "maj")
	assert.Equal(t, majChord, bogusChord)
	assert.Len(t, res.Warnings, 1)
}

func TestGenerateProducesReadableFile(t *testing.T) {
	data, res := generate(t, "c", "As", "maj9")
	assert.Equal(t, int64(14+8+8*5+5), res.Bytes)

	f, err := midi.ParseFile(data)
	require.NoError(t, err)
	require.Len(t, f.Tracks, 1)
	assert.Equal(t, res.Notes, midi.Notes(f.Tracks[0].Events))

	data, res = generate(t, "s", "B", "locrian")
	assert.Equal(t, int64(14+8+9*8+4), res.Bytes)
	f, err = midi.ParseFile(data)
	require.NoError(t, err)
	assert.Equal(t, res.Notes, midi.Notes(f.Tracks[0].Events))
}

func TestGenerateRejectsUnknownShape(t *testing.T) {
	_, err := Generate(&bytes.Buffer{}, Request{Shape: ShapeUnknown})
	assert.ErrorIs(t, err, ErrUnknownShape)
}

type limitWriter struct{ left int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.left {
		n := w.left
		w.left = 0
		return n, errors.New("no space left")
	}
	w.left -= len(p)
	return len(p), nil
}

func TestGenerateWriteFailure(t *testing.T) {
	req, err := NewRequest("s", "C", "major")
	require.NoError(t, err)

	res, err := Generate(&limitWriter{left: 3}, req)
	assert.ErrorContains(t, err, "writing header")
	assert.Equal(t, int64(3), res.Bytes)

	res, err = Generate(&limitWriter{left: 20}, req)
	assert.ErrorContains(t, err, "writing track")
	assert.Equal(t, int64(20), res.Bytes)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Cmaj.mid", Filename("C", ""))
	assert.Equal(t, "Csmaj7.mid", Filename("Cs", "maj7"))
	assert.Equal(t, "C6-9.mid", Filename("C", "6/9"))
	assert.Equal(t, "Ddorian.mid", Filename("D", "dorian"))
	assert.Equal(t, "A-b.mid", Filename(`A\`, "b"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	req, err := NewRequest("c", "G", "6/9")
	require.NoError(t, err)

	path, res, err := WriteFile(dir, req)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "G6-9.mid"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Bytes, int64(len(data)))

	var buf bytes.Buffer
	_, err = Generate(&buf, req)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), data)
}

func TestWriteFileMissingDir(t *testing.T) {
	req, err := NewRequest("s", "C", "")
	require.NoError(t, err)

	_, _, err = WriteFile(filepath.Join(t.TempDir(), "missing"), req)
	assert.Error(t, err)
}
