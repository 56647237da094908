package theory

import (
	"fmt"
	"strings"
)

// Root is one of the twelve pitch classes a scale or chord can be built on
type Root int

const (
	RootC Root = iota
	RootCs
	RootD
	RootDs
	RootE
	RootF
	RootFs
	RootG
	RootGs
	RootA
	RootAs
	RootB
	RootCount

	// RootUnknown is produced by ParseRoot for anything it can't resolve
	RootUnknown Root = -1
)

// Root tokens as typed on the command line (sharps spelled with a trailing s)
var rootNames = []string{"C", "Cs", "D", "Ds", "E", "F", "Fs", "G", "Gs", "A", "As", "B"}

// Display names, used for note labels
var pitchNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ParseRoot resolves a root token. Accepts "Cs", "C#" and lower-case letters.
func ParseRoot(s string) Root {
	s = strings.TrimSpace(s)
	if s == "" {
		return RootUnknown
	}

	letter := strings.ToUpper(s[:1])
	rest := s[1:]
	switch rest {
	case "":
	case "s", "#":
		letter += "s"
	default:
		return RootUnknown
	}

	for i, name := range rootNames {
		if name == letter {
			return Root(i)
		}
	}
	return RootUnknown
}

// Valid reports whether r is one of the twelve pitch classes
func (r Root) Valid() bool {
	return r >= RootC && r < RootCount
}

// Offset returns the semitone offset from C (0-11)
func (r Root) Offset() uint8 {
	if !r.Valid() {
		return 0
	}
	return uint8(r)
}

// String returns the command-line token ("Cs" for C sharp)
func (r Root) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return rootNames[r]
}

// Roots returns all twelve roots in pitch order
func Roots() []Root {
	out := make([]Root, 0, RootCount)
	for r := RootC; r < RootCount; r++ {
		out = append(out, r)
	}
	return out
}

// NoteName formats a MIDI note number as pitch class plus octave (60 = C4)
func NoteName(note uint8) string {
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", pitchNames[note%12], octave)
}

// NoteNames formats every note in order
func NoteNames(notes []uint8) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = NoteName(n)
	}
	return names
}
