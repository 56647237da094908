package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"midigen/theme"
	"midigen/theory"
)

// black keys within an octave, by pitch class
var blackKeys = [theory.Octave]bool{1: true, 3: true, 6: true, 8: true, 10: true}

// RenderKey renders a single keyboard cell
func RenderKey(t *theme.Theme, pitchClass int, held bool) string {
	switch {
	case held:
		return lipgloss.NewStyle().Foreground(t.Active()).Bold(true).Render(string(t.Symbols.KeyHeld))
	case blackKeys[pitchClass%theory.Octave]:
		return lipgloss.NewStyle().Foreground(t.Muted()).Render(string(t.Symbols.KeyBlack))
	default:
		return lipgloss.NewStyle().Foreground(t.FG()).Render(string(t.Symbols.KeyWhite))
	}
}

// RenderKeyboard renders one row per octave spanned by notes, lowest octave
// first, marking held keys. Each row is labelled with its C.
func RenderKeyboard(t *theme.Theme, notes []uint8) string {
	if len(notes) == 0 {
		return ""
	}

	held := make(map[uint8]bool, len(notes))
	lo, hi := notes[0], notes[0]
	for _, n := range notes {
		held[n] = true
		lo = min(lo, n)
		hi = max(hi, n)
	}

	label := lipgloss.NewStyle().Foreground(t.Muted())
	var lines []string
	for base := int(lo) / theory.Octave * theory.Octave; base <= int(hi); base += theory.Octave {
		var line strings.Builder
		line.WriteString(label.Render(fmt.Sprintf("%-4s", theory.NoteName(uint8(base)))))
		for pc := 0; pc < theory.Octave; pc++ {
			n := base + pc
			if pc > 0 {
				line.WriteString(" ")
			}
			line.WriteString(RenderKey(t, pc, n <= 127 && held[uint8(n)]))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderNoteNames renders notes as space separated names, e.g. "C2 E2 G2"
func RenderNoteNames(t *theme.Theme, notes []uint8) string {
	style := lipgloss.NewStyle().Foreground(t.FG())
	return style.Render(strings.Join(theory.NoteNames(notes), " "))
}

// RenderLegendItem renders a single legend item: "● name - description"
func RenderLegendItem(t *theme.Theme, sym rune, color lipgloss.Color, name, desc string) string {
	mark := lipgloss.NewStyle().Foreground(color).Render(string(sym))
	return fmt.Sprintf("  %s %s - %s", mark, name, lipgloss.NewStyle().Foreground(t.Muted()).Render(desc))
}

// RenderKeyboardLegend explains the keyboard symbols, one item per line
func RenderKeyboardLegend(t *theme.Theme) string {
	return strings.Join([]string{
		RenderLegendItem(t, t.Symbols.KeyHeld, t.Active(), "held", "note in the file"),
		RenderLegendItem(t, t.Symbols.KeyWhite, t.FG(), "white", "natural key"),
		RenderLegendItem(t, t.Symbols.KeyBlack, t.Muted(), "black", "sharp key"),
	}, "\n")
}
