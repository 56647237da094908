package theory

// Degree indices into the 8-note template
const (
	DegreeRoot = iota
	DegreeSecond
	DegreeThird
	DegreeFourth
	DegreeFifth
	DegreeSixth
	DegreeSeventh
	DegreeOctave

	TemplateLen
)

// Octave in semitones
const Octave = 12

// C major from C2 (36) to C3, degrees 1-7 plus the octave
var template = [TemplateLen]uint8{36, 38, 40, 41, 43, 45, 47, 48}

// Template returns a fresh copy of the C major template scale
func Template() []uint8 {
	out := make([]uint8, TemplateLen)
	copy(out, template[:])
	return out
}

// Transpose shifts every degree of the template up by the root's offset.
// An unknown root leaves the template as is (C) and returns a warning.
func Transpose(tmpl []uint8, root Root) ([]uint8, []Warning) {
	out := make([]uint8, len(tmpl))
	copy(out, tmpl)

	if !root.Valid() {
		return out, fallback(UnknownRoot, RootC.String())
	}

	offset := root.Offset()
	for i := range out {
		out[i] += offset
	}
	return out, nil
}
