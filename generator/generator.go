package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"midigen/debug"
	"midigen/midi"
	"midigen/theory"
)

// Result describes a generated file
type Result struct {
	Notes    []uint8
	Warnings []theory.Warning
	Bytes    int64
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Generate writes a complete single-track MIDI file for req to w
func Generate(w io.Writer, req Request) (*Result, error) {
	if req.Shape != ShapeScale && req.Shape != ShapeChord {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, req.Shape)
	}

	notes, warnings := Notes(req)
	res := &Result{Notes: notes, Warnings: warnings}
	cw := &countingWriter{w: w}

	if err := midi.WriteHeader(cw); err != nil {
		res.Bytes = cw.n
		return res, fmt.Errorf("writing header: %w", err)
	}

	var err error
	if req.Shape == ShapeChord {
		err = midi.WriteChordTrack(cw, notes)
	} else {
		err = midi.WriteScaleTrack(cw, notes)
	}
	res.Bytes = cw.n
	if err != nil {
		return res, fmt.Errorf("writing track: %w", err)
	}

	debug.Log("generator", "%s %s%s -> %v (%d bytes)", req.Shape, req.RootName, req.Mapping, notes, res.Bytes)
	return res, nil
}

var filenameReplacer = strings.NewReplacer("/", "-", `\`, "-")

// Filename builds <root><mapping>.mid, e.g. Csmaj7.mid or C6-9.mid
func Filename(rootName, mapping string) string {
	if mapping == "" {
		mapping = theory.QualityMajor.String()
	}
	return filenameReplacer.Replace(rootName+mapping) + ".mid"
}

// WriteFile generates req into dir and returns the written path.
// A partially written file is removed on failure.
func WriteFile(dir string, req Request) (path string, res *Result, err error) {
	path = filepath.Join(dir, Filename(req.RootName, req.Mapping))

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(path)
			debug.Log("generator", "removed partial %s: %v", path, err)
		}
	}()

	bw := bufio.NewWriter(f)
	res, err = Generate(bw, req)
	if err != nil {
		f.Close()
		return "", res, err
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return "", res, fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", res, fmt.Errorf("closing %s: %w", path, err)
	}
	return path, res, nil
}

// IsUsageError reports whether err comes from bad request tokens rather than I/O
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownShape)
}
