package theory

// shift moves one degree (by its index in the transposed template) up or down
type shift struct {
	degree    int
	semitones int
}

// recipe describes how to turn a transposed template into a scale or chord.
// Shifts and keep both address template indices, so dropping a
// degree never moves another one out from under a later edit.
type recipe struct {
	shifts []shift
	keep   []int // ascending; nil keeps every degree
}

func (r recipe) apply(transposed []uint8) []uint8 {
	work := make([]int, len(transposed))
	for i, n := range transposed {
		work[i] = int(n)
	}

	for _, s := range r.shifts {
		if s.degree < len(work) {
			work[s.degree] += s.semitones
		}
	}

	keep := r.keep
	if keep == nil {
		keep = make([]int, len(work))
		for i := range keep {
			keep[i] = i
		}
	}

	out := make([]uint8, 0, len(keep))
	for _, idx := range keep {
		if idx < len(work) {
			out = append(out, clampNote(work[idx]))
		}
	}
	return out
}

func clampNote(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}

func flat(degree int) shift     { return shift{degree, -1} }
func sharp(degree int) shift    { return shift{degree, 1} }
func octaveUp(degree int) shift { return shift{degree, Octave} }

func degrees(d ...int) []int { return d }
