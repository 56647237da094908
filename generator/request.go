package generator

import (
	"errors"
	"fmt"
	"strings"

	"midigen/theory"
)

// ErrUnknownShape is returned for a shape token other than scale or chord
var ErrUnknownShape = errors.New("unknown shape")

// Shape selects between a sequential scale and a simultaneous chord
type Shape int

const (
	ShapeUnknown Shape = iota - 1
	ShapeScale
	ShapeChord
)

// ParseShape accepts s, scale, c and chord
func ParseShape(s string) Shape {
	switch strings.ToLower(s) {
	case "s", "scale":
		return ShapeScale
	case "c", "chord":
		return ShapeChord
	default:
		return ShapeUnknown
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeScale:
		return "scale"
	case ShapeChord:
		return "chord"
	default:
		return "unknown"
	}
}

// DefaultMapping is the mapping used when none is given
func (s Shape) DefaultMapping() string {
	if s == ShapeChord {
		return theory.QualityMajor.String()
	}
	return theory.ModeMajor.String()
}

// Request is a parsed generation request. RootName and Mapping keep the raw
// tokens for filenames and warnings.
type Request struct {
	Shape    Shape
	Root     theory.Root
	RootName string
	Mapping  string
}

// NewRequest parses the three user tokens. Unknown roots and mappings are
// kept as unknown variants and resolved by fallback later.
func NewRequest(shape, root, mapping string) (Request, error) {
	sh := ParseShape(shape)
	if sh == ShapeUnknown {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	if mapping == "" {
		mapping = sh.DefaultMapping()
	}
	return Request{
		Shape:    sh,
		Root:     theory.ParseRoot(root),
		RootName: root,
		Mapping:  mapping,
	}, nil
}

// Notes runs the request through transposition and the mode or chord mapper
func Notes(req Request) ([]uint8, []theory.Warning) {
	transposed, warnings := theory.Transpose(theory.Template(), req.Root)

	var (
		notes  []uint8
		mapped []theory.Warning
	)
	if req.Shape == ShapeChord {
		notes, mapped = theory.MapChord(transposed, theory.ParseQuality(req.Mapping))
	} else {
		notes, mapped = theory.MapScale(transposed, theory.ParseMode(req.Mapping))
	}
	warnings = append(warnings, mapped...)

	for i := range warnings {
		switch warnings[i].Kind {
		case theory.UnknownRoot:
			warnings[i].Input = req.RootName
		default:
			warnings[i].Input = req.Mapping
		}
	}
	return notes, warnings
}
