package theory

import "strings"

// Mode is a named scale mapping
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
	ModeHarmonicMinor
	ModeMelodicMinor
	ModeDorian
	ModePhrygian
	ModeLydian
	ModeMixolydian
	ModeLocrian
	ModePentatonic
	ModeMinorPentatonic
	ModeCount

	ModeUnknown Mode = -1
)

// First name of each entry is canonical
var modeNames = [ModeCount][]string{
	ModeMajor:           {"major", "ionian"},
	ModeMinor:           {"minor", "natural_minor", "aeolian"},
	ModeHarmonicMinor:   {"harmonic_minor"},
	ModeMelodicMinor:    {"melodic_minor"},
	ModeDorian:          {"dorian"},
	ModePhrygian:        {"phrygian"},
	ModeLydian:          {"lydian"},
	ModeMixolydian:      {"mixolydian"},
	ModeLocrian:         {"locrian"},
	ModePentatonic:      {"pentatonic", "major_pentatonic"},
	ModeMinorPentatonic: {"minor_pentatonic"},
}

var modeRecipes = [ModeCount]recipe{
	ModeMajor:         {},
	ModeMinor:         {shifts: []shift{flat(DegreeThird), flat(DegreeSixth), flat(DegreeSeventh)}},
	ModeHarmonicMinor: {shifts: []shift{flat(DegreeThird), flat(DegreeSixth)}},
	ModeMelodicMinor:  {shifts: []shift{flat(DegreeThird)}},
	ModeDorian:        {shifts: []shift{flat(DegreeThird), flat(DegreeSeventh)}},
	ModePhrygian: {shifts: []shift{
		flat(DegreeSecond), flat(DegreeThird), flat(DegreeSixth), flat(DegreeSeventh),
	}},
	ModeLydian:     {shifts: []shift{sharp(DegreeFourth)}},
	ModeMixolydian: {shifts: []shift{flat(DegreeSeventh)}},
	ModeLocrian: {shifts: []shift{
		flat(DegreeSecond), flat(DegreeThird), flat(DegreeFifth), flat(DegreeSixth), flat(DegreeSeventh),
	}},
	ModePentatonic: {
		keep: degrees(DegreeRoot, DegreeSecond, DegreeFourth, DegreeFifth, DegreeSixth, DegreeOctave),
	},
	// After the 3rd and 7th are dropped, positions 1 and 4 are the 2nd and 6th
	ModeMinorPentatonic: {
		shifts: []shift{sharp(DegreeSecond), sharp(DegreeSixth)},
		keep:   degrees(DegreeRoot, DegreeSecond, DegreeFourth, DegreeFifth, DegreeSixth, DegreeOctave),
	},
}

// ParseMode resolves a scale mapping name, ModeUnknown if none matches
func ParseMode(s string) Mode {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, names := range modeNames {
		for _, name := range names {
			if name == s {
				return Mode(m)
			}
		}
	}
	return ModeUnknown
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m >= ModeMajor && m < ModeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m][0]
}

// Aliases returns every accepted name for the mode, canonical first
func (m Mode) Aliases() []string {
	if !m.Valid() {
		return nil
	}
	return append([]string(nil), modeNames[m]...)
}

// Modes returns every known mode
func Modes() []Mode {
	out := make([]Mode, 0, ModeCount)
	for m := ModeMajor; m < ModeCount; m++ {
		out = append(out, m)
	}
	return out
}

// MapScale turns a transposed template into the notes of the given mode.
// An unknown mode falls back to the major scale with a warning.
func MapScale(transposed []uint8, mode Mode) ([]uint8, []Warning) {
	if !mode.Valid() {
		return recipe{}.apply(transposed), fallback(UnknownMode, ModeMajor.String())
	}
	return modeRecipes[mode].apply(transposed), nil
}
