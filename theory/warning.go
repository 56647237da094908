package theory

import (
	"fmt"

	"midigen/debug"
)

// WarningKind identifies which input fell back to a default
type WarningKind int

const (
	UnknownRoot WarningKind = iota
	UnknownMode
	UnknownQuality
)

func (k WarningKind) String() string {
	switch k {
	case UnknownRoot:
		return "root"
	case UnknownMode:
		return "scale mapping"
	case UnknownQuality:
		return "chord mapping"
	default:
		return "input"
	}
}

// Warning reports an unrecognized name and the fallback used in its place.
// Input is empty when the mapper only saw the unknown variant; the caller
// holding the raw token fills it in.
type Warning struct {
	Kind     WarningKind
	Input    string
	Fallback string
}

func (w Warning) String() string {
	if w.Input == "" {
		return fmt.Sprintf("%s not recognized, using %s", w.Kind, w.Fallback)
	}
	return fmt.Sprintf("%s %q not recognized, using %s", w.Kind, w.Input, w.Fallback)
}

func fallback(kind WarningKind, to string) []Warning {
	w := Warning{Kind: kind, Fallback: to}
	debug.Log("theory", "%s", w)
	return []Warning{w}
}
