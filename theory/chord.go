package theory

import "strings"

// Quality is a named chord mapping
type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityDominant7
	QualityMinor7
	QualityMajor7
	QualityMinorMajor7
	QualitySixth
	QualityMinorSixth
	QualitySixNine
	QualityNinth
	QualityMinorNinth
	QualityMajorNinth
	QualityEleventh
	QualityMinorEleventh
	QualityMajorEleventh
	QualityThirteenth
	QualityMinorThirteenth
	QualityMajorThirteenth
	QualityAdd2
	QualityAdd9
	QualitySus2
	QualitySus4
	QualityPower
	QualityDiminished
	QualityDiminished7
	QualityHalfDiminished
	QualityAugmented
	QualityAugmented7
	QualitySevenFlatFive
	QualitySevenSharpFive
	QualityCount

	QualityUnknown Quality = -1
)

// First name of each entry is canonical. Names are matched case-sensitively
// since "M" and "m" mean different things.
var qualityNames = [QualityCount][]string{
	QualityMajor:           {"maj", "M", "major"},
	QualityMinor:           {"m", "min"},
	QualityDominant7:       {"7"},
	QualityMinor7:          {"m7", "min7"},
	QualityMajor7:          {"maj7"},
	QualityMinorMajor7:     {"mM7", "minM7"},
	QualitySixth:           {"6"},
	QualityMinorSixth:      {"m6"},
	QualitySixNine:         {"6/9", "69"},
	QualityNinth:           {"9"},
	QualityMinorNinth:      {"m9"},
	QualityMajorNinth:      {"maj9"},
	QualityEleventh:        {"11"},
	QualityMinorEleventh:   {"m11"},
	QualityMajorEleventh:   {"maj11"},
	QualityThirteenth:      {"13"},
	QualityMinorThirteenth: {"m13"},
	QualityMajorThirteenth: {"maj13"},
	QualityAdd2:            {"add2"},
	QualityAdd9:            {"add9"},
	QualitySus2:            {"sus2"},
	QualitySus4:            {"sus4"},
	QualityPower:           {"5"},
	QualityDiminished:      {"dim"},
	QualityDiminished7:     {"dim7"},
	QualityHalfDiminished:  {"m7b5"},
	QualityAugmented:       {"aug", "+"},
	QualityAugmented7:      {"aug7"},
	QualitySevenFlatFive:   {"7b5", "7-5"},
	QualitySevenSharpFive:  {"7s5", "7+5", "7#5"},
}

var (
	triad      = degrees(DegreeRoot, DegreeThird, DegreeFifth)
	seventh    = degrees(DegreeRoot, DegreeThird, DegreeFifth, DegreeSeventh)
	sixth      = degrees(DegreeRoot, DegreeThird, DegreeFifth, DegreeSixth)
	sixNine    = degrees(DegreeRoot, DegreeSecond, DegreeThird, DegreeFifth, DegreeSixth)
	ninth      = degrees(DegreeRoot, DegreeSecond, DegreeThird, DegreeFifth, DegreeSeventh)
	eleventh   = degrees(DegreeRoot, DegreeSecond, DegreeThird, DegreeFourth, DegreeFifth, DegreeSeventh)
	thirteenth = degrees(DegreeRoot, DegreeSecond, DegreeThird, DegreeFourth, DegreeFifth, DegreeSixth, DegreeSeventh)
	addSecond  = degrees(DegreeRoot, DegreeSecond, DegreeThird, DegreeFifth)
)

// 9th, 11th and 13th are the 2nd, 4th and 6th raised an octave
var (
	nine     = octaveUp(DegreeSecond)
	eleven   = octaveUp(DegreeFourth)
	thirteen = octaveUp(DegreeSixth)
	minor3   = flat(DegreeThird)
	minor7   = flat(DegreeSeventh)
)

var chordRecipes = [QualityCount]recipe{
	QualityMajor:       {keep: triad},
	QualityMinor:       {shifts: []shift{minor3}, keep: triad},
	QualityDominant7:   {shifts: []shift{minor7}, keep: seventh},
	QualityMinor7:      {shifts: []shift{minor3, minor7}, keep: seventh},
	QualityMajor7:      {keep: seventh},
	QualityMinorMajor7: {shifts: []shift{minor3}, keep: seventh},
	QualitySixth:       {keep: sixth},
	QualityMinorSixth:  {shifts: []shift{minor3}, keep: sixth},
	QualitySixNine:     {shifts: []shift{nine}, keep: sixNine},

	QualityNinth:      {shifts: []shift{nine, minor7}, keep: ninth},
	QualityMinorNinth: {shifts: []shift{nine, minor3, minor7}, keep: ninth},
	QualityMajorNinth: {shifts: []shift{nine}, keep: ninth},

	QualityEleventh:      {shifts: []shift{nine, eleven, minor7}, keep: eleventh},
	QualityMinorEleventh: {shifts: []shift{nine, eleven, minor3, minor7}, keep: eleventh},
	QualityMajorEleventh: {shifts: []shift{nine, eleven}, keep: eleventh},

	QualityThirteenth:      {shifts: []shift{nine, eleven, thirteen, minor7}, keep: thirteenth},
	QualityMinorThirteenth: {shifts: []shift{nine, eleven, thirteen, minor3, minor7}, keep: thirteenth},
	QualityMajorThirteenth: {shifts: []shift{nine, eleven, thirteen}, keep: thirteenth},

	QualityAdd2:  {keep: addSecond},
	QualityAdd9:  {shifts: []shift{nine}, keep: addSecond},
	QualitySus2:  {keep: degrees(DegreeRoot, DegreeSecond, DegreeFifth)},
	QualitySus4:  {keep: degrees(DegreeRoot, DegreeFourth, DegreeFifth)},
	QualityPower: {keep: degrees(DegreeRoot, DegreeFifth)},

	QualityDiminished: {shifts: []shift{minor3, flat(DegreeFifth)}, keep: triad},
	// bb7 is the major 6th
	QualityDiminished7:    {shifts: []shift{minor3, flat(DegreeFifth)}, keep: sixth},
	QualityHalfDiminished: {shifts: []shift{minor3, flat(DegreeFifth), minor7}, keep: seventh},
	QualityAugmented:      {shifts: []shift{sharp(DegreeFifth)}, keep: triad},
	QualityAugmented7:     {shifts: []shift{sharp(DegreeFifth), minor7}, keep: seventh},
	QualitySevenFlatFive:  {shifts: []shift{flat(DegreeFifth), minor7}, keep: seventh},
	QualitySevenSharpFive: {shifts: []shift{sharp(DegreeFifth), minor7}, keep: seventh},
}

// ParseQuality resolves a chord mapping name, QualityUnknown if none matches
func ParseQuality(s string) Quality {
	s = strings.TrimSpace(s)
	for q, names := range qualityNames {
		for _, name := range names {
			if name == s {
				return Quality(q)
			}
		}
	}
	return QualityUnknown
}

// Valid reports whether q is a known quality
func (q Quality) Valid() bool {
	return q >= QualityMajor && q < QualityCount
}

func (q Quality) String() string {
	if !q.Valid() {
		return "unknown"
	}
	return qualityNames[q][0]
}

// Aliases returns every accepted name for the quality, canonical first
func (q Quality) Aliases() []string {
	if !q.Valid() {
		return nil
	}
	return append([]string(nil), qualityNames[q]...)
}

// Qualities returns every known chord quality
func Qualities() []Quality {
	out := make([]Quality, 0, QualityCount)
	for q := QualityMajor; q < QualityCount; q++ {
		out = append(out, q)
	}
	return out
}

// MapChord turns a transposed template into chord tones. The octave degree
// is always dropped; the rest are kept in degree order, so extensions sit
// at their degree's position rather than sorted by pitch. An unknown
// quality falls back to a major triad with a warning.
func MapChord(transposed []uint8, quality Quality) ([]uint8, []Warning) {
	if len(transposed) > DegreeOctave {
		transposed = transposed[:DegreeOctave]
	}
	if !quality.Valid() {
		return chordRecipes[QualityMajor].apply(transposed), fallback(UnknownQuality, QualityMajor.String())
	}
	return chordRecipes[quality].apply(transposed), nil
}
