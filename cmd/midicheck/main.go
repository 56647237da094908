package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"midigen/midi"
	"midigen/theory"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("MIDI file checks")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  dump <file>    - Print chunks and events")
	fmt.Println("  verify <file>  - Cross-check with an independent SMF reader")
	fmt.Println("  notes <file>   - Print the played notes by name")
}

func run(args []string, out io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "dump":
		return dump(out, data)
	case "verify":
		return verify(out, data)
	case "notes":
		return notes(out, data)
	default:
		return errUsage
	}
}

func dump(out io.Writer, data []byte) error {
	f, err := midi.ParseFile(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s format=%d tracks=%d division=%d\n",
		midi.HeaderTag, f.Header.Format, f.Header.Tracks, f.Header.Division)
	for i, tr := range f.Tracks {
		fmt.Fprintf(out, "%s #%d length=%d events=%d\n", midi.TrackTag, i, tr.Length, len(tr.Events))
		var tick uint32
		for _, e := range tr.Events {
			tick += e.Delta
			fmt.Fprintf(out, "  %6d  %s\n", tick, e)
		}
	}
	return nil
}

func verify(out io.Writer, data []byte) error {
	f, err := midi.ParseFile(data)
	if err != nil {
		return fmt.Errorf("midigen reader: %w", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("smf reader: %w", err)
	}

	if s.TimeFormat != smf.MetricTicks(f.Header.Division) {
		return fmt.Errorf("time format mismatch: smf %v, header %d", s.TimeFormat, f.Header.Division)
	}
	if len(s.Tracks) != len(f.Tracks) {
		return fmt.Errorf("track count mismatch: smf %d, midigen %d", len(s.Tracks), len(f.Tracks))
	}

	for i, track := range s.Tracks {
		var played []uint8
		for _, ev := range track {
			var ch, key, vel uint8
			if gomidi.Message(ev.Message).GetNoteOn(&ch, &key, &vel) && vel > 0 {
				played = append(played, key)
			}
		}
		want := midi.Notes(f.Tracks[i].Events)
		if !slices.Equal(played, want) {
			return fmt.Errorf("track %d notes differ: smf %v, midigen %v", i, played, want)
		}
	}

	fmt.Fprintf(out, "OK: %d track(s), %d bytes\n", len(f.Tracks), len(data))
	return nil
}

func notes(out io.Writer, data []byte) error {
	f, err := midi.ParseFile(data)
	if err != nil {
		return err
	}
	for _, tr := range f.Tracks {
		fmt.Fprintln(out, strings.Join(theory.NoteNames(midi.Notes(tr.Events)), " "))
	}
	return nil
}
