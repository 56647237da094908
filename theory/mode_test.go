package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapScaleC(t *testing.T) {
	tests := []struct {
		name string
		want []uint8 // C2 = 36
	}{
		{"major", []uint8{36, 38, 40, 41, 43, 45, 47, 48}},
		{"ionian", []uint8{36, 38, 40, 41, 43, 45, 47, 48}},
		{"minor", []uint8{36, 38, 39, 41, 43, 44, 46, 48}},
		{"natural_minor", []uint8{36, 38, 39, 41, 43, 44, 46, 48}},
		{"aeolian", []uint8{36, 38, 39, 41, 43, 44, 46, 48}},
		{"harmonic_minor", []uint8{36, 38, 39, 41, 43, 44, 47, 48}},
		{"melodic_minor", []uint8{36, 38, 39, 41, 43, 45, 47, 48}},
		{"dorian", []uint8{36, 38, 39, 41, 43, 45, 46, 48}},
		{"phrygian", []uint8{36, 37, 39, 41, 43, 44, 46, 48}},
		{"lydian", []uint8{36, 38, 40, 42, 43, 45, 47, 48}},
		{"mixolydian", []uint8{36, 38, 40, 41, 43, 45, 46, 48}},
		{"locrian", []uint8{36, 37, 39, 41, 42, 44, 46, 48}},
		{"pentatonic", []uint8{36, 38, 41, 43, 45, 48}},
		{"major_pentatonic", []uint8{36, 38, 41, 43, 45, 48}},
		{"minor_pentatonic", []uint8{36, 39, 41, 43, 46, 48}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := ParseMode(tt.name)
			require.True(t, mode.Valid())

			got, warnings := MapScale(Template(), mode)
			assert.Empty(t, warnings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapScaleEveryRoot(t *testing.T) {
	// Interval pattern is root independent
	for _, mode := range Modes() {
		base, _ := MapScale(Template(), mode)
		for _, root := range Roots() {
			transposed, _ := Transpose(Template(), root)
			got, warnings := MapScale(transposed, mode)
			assert.Empty(t, warnings)
			require.Len(t, got, len(base), "%s %s", root, mode)
			for i := range base {
				assert.Equal(t, int(base[i])+int(root), int(got[i]), "%s %s degree %d", root, mode, i)
			}
		}
	}
}

func TestMapScaleAscending(t *testing.T) {
	for _, mode := range Modes() {
		got, _ := MapScale(Template(), mode)
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1], "%s position %d", mode, i)
		}
		assert.Equal(t, uint8(36), got[0], "%s starts on the root", mode)
		assert.Equal(t, uint8(48), got[len(got)-1], "%s ends on the octave", mode)
	}
}

func TestMapScaleDoesNotMutateInput(t *testing.T) {
	in := Template()
	MapScale(in, ModeLocrian)
	MapScale(in, ModeMinorPentatonic)
	assert.Equal(t, Template(), in)
}

func TestMapScaleUnknown(t *testing.T) {
	transposed, _ := Transpose(Template(), RootE)
	major, _ := MapScale(transposed, ModeMajor)

	got, warnings := MapScale(transposed, ParseMode("bogus"))
	assert.Equal(t, major, got)
	require.Len(t, warnings, 1)
	assert.Equal(t, UnknownMode, warnings[0].Kind)
	assert.Equal(t, "major", warnings[0].Fallback)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeMinor, ParseMode("Minor"))
	assert.Equal(t, ModeMinorPentatonic, ParseMode(" minor_pentatonic "))
	assert.Equal(t, ModeUnknown, ParseMode(""))
	assert.Equal(t, ModeUnknown, ParseMode("maj"))

	for _, mode := range Modes() {
		for _, alias := range mode.Aliases() {
			assert.Equal(t, mode, ParseMode(alias), alias)
		}
	}
	assert.Nil(t, ModeUnknown.Aliases())
	assert.Equal(t, "unknown", ModeUnknown.String())
}
