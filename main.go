package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"midigen/config"
	"midigen/debug"
	"midigen/generator"
	"midigen/theme"
	"midigen/theory"
	"midigen/tui"
)

var errMissingRoot = errors.New("missing root note")

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	if err := newApp(cfg, os.Stdout).Run(context.Background(), os.Args); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err, with a help hint when the arguments were at fault
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
	if isUsageError(err) {
		fmt.Fprintln(w, "Use --help for more information.")
	}
}

func isUsageError(err error) bool {
	return errors.Is(err, errMissingRoot) || generator.IsUsageError(err)
}

func newApp(cfg *config.Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "midigen",
		Usage:  "Write scales and chords as single-track MIDI files",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory (default from config, else .)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write a debug log to " + debug.DefaultPath(),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "scale",
				Aliases:   []string{"s"},
				Usage:     "write a scale, one note after another",
				ArgsUsage: "<root> [mode]",
				Action:    generateAction("scale", cfg, out),
			},
			{
				Name:      "chord",
				Aliases:   []string{"c"},
				Usage:     "write a chord, all notes together",
				ArgsUsage: "<root> [quality]",
				Action:    generateAction("chord", cfg, out),
			},
			{
				Name:  "list",
				Usage: "list supported roots, modes and chord qualities",
				Action: func(ctx context.Context, c *cli.Command) error {
					th, err := loadTheme(cfg)
					if err != nil {
						return err
					}
					printList(out, th)
					return nil
				},
			},
			{
				Name:  "browse",
				Usage: "pick and write files interactively",
				Action: func(ctx context.Context, c *cli.Command) error {
					stop, err := startDebug(c, cfg)
					if err != nil {
						return err
					}
					defer stop()

					th, err := loadTheme(cfg)
					if err != nil {
						return err
					}
					m := tui.NewModel(th, cfg, outputDir(c, cfg))
					_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
					return err
				},
			},
		},
	}
}

func generateAction(shape string, cfg *config.Config, out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() < 1 {
			return fmt.Errorf("%w: usage: midigen %s %s", errMissingRoot, c.Name, c.ArgsUsage)
		}

		stop, err := startDebug(c, cfg)
		if err != nil {
			return err
		}
		defer stop()

		req, err := generator.NewRequest(shape, c.Args().Get(0), c.Args().Get(1))
		if err != nil {
			return err
		}

		path, res, err := generator.WriteFile(outputDir(c, cfg), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Wrote %q\n", path)
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "Warning: %s\n", w)
		}
		return nil
	}
}

func outputDir(c *cli.Command, cfg *config.Config) string {
	if dir := c.String("out"); dir != "" {
		return dir
	}
	return cfg.OutputPath()
}

// startDebug enables the debug log when asked for; stop closes it again
func startDebug(c *cli.Command, cfg *config.Config) (stop func(), err error) {
	if !c.Bool("debug") && !cfg.DebugEnabled() {
		return func() {}, nil
	}
	if err := debug.Enable(debug.DefaultPath()); err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	debug.Log("main", "args %v", os.Args[1:])
	return debug.Disable, nil
}

func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	if cfg.Palette == "" {
		return theme.New(theme.Default()), nil
	}
	p, err := theme.LoadGPL(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return theme.New(p), nil
}

func printList(out io.Writer, th *theme.Theme) {
	titleStyle := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(th.FG())
	aliasStyle := lipgloss.NewStyle().Foreground(th.Muted())

	entry := func(aliases []string) string {
		s := nameStyle.Render(aliases[0])
		if len(aliases) > 1 {
			s += " " + aliasStyle.Render("("+strings.Join(aliases[1:], ", ")+")")
		}
		return s
	}

	var roots []string
	for _, r := range theory.Roots() {
		roots = append(roots, nameStyle.Render(r.String()))
	}
	fmt.Fprintln(out, titleStyle.Render("Roots"))
	fmt.Fprintln(out, "  "+strings.Join(roots, " "))

	fmt.Fprintln(out, titleStyle.Render("Scale modes"))
	for _, m := range theory.Modes() {
		fmt.Fprintln(out, "  "+entry(m.Aliases()))
	}

	fmt.Fprintln(out, titleStyle.Render("Chord qualities"))
	for _, q := range theory.Qualities() {
		fmt.Fprintln(out, "  "+entry(q.Aliases()))
	}
}
