package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"eca/internal/config"
	"eca/internal/sims/elementary"
)

// DefaultWidth is the number of cells used when no width is given.
const DefaultWidth = 100

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Init selects how the first generation is seeded.
type Init int

const (
	// InitFirst seeds a single live cell at position 0.
	InitFirst Init = iota
	// InitMiddle seeds a single live cell in the centre.
	InitMiddle
	// InitCells seeds the cells given on the command line.
	InitCells
	// InitRandom fills every cell at random.
	InitRandom
)

func (i Init) String() string {
	switch i {
	case InitFirst:
		return "first"
	case InitMiddle:
		return "middle"
	case InitCells:
		return "cells"
	case InitRandom:
		return "random"
	}
	return "Init(" + strconv.Itoa(int(i)) + ")"
}

// Options is the resolved configuration of a run.
type Options struct {
	Rule     uint8
	Width    int
	Boundary elementary.Boundary
	Glyphs   elementary.Glyphs
	Init     Init
	// Cells holds the initial prefix when Init is InitCells.
	Cells []bool
	// Iterations is the number of generations printed in batch mode.
	Iterations int
	// Interactive is set when no iteration count was given.
	Interactive bool
	LogLevel    slog.Level
}

// NewAutomaton builds an automaton from the options and seeds its first
// generation.
func (o *Options) NewAutomaton() (*elementary.Automaton, error) {
	a, err := elementary.New(o.Rule, o.Width, o.Boundary, o.Glyphs)
	if err != nil {
		return nil, err
	}
	switch o.Init {
	case InitRandom:
		a.Randomize()
	case InitCells:
		err = a.SetState(o.Cells)
	case InitMiddle:
		err = a.SetOnly(a.Width() / 2)
	default:
		err = a.SetState([]bool{true})
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Parse processes command-line arguments. It returns the resolved Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// env is exposed to preset files loaded with -config.
func Parse(args []string, output io.Writer, env config.Env) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	fs := flag.NewFlagSet("eca", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(output, `
eca - elementary cellular automata simulator.

A RULE (8 bit number) is required for every simulation as it derives all of
the rules of interaction between cells. The program runs in interactive mode
unless -iterations is set. In interactive mode press enter to advance the
simulation one step, enter a number to advance that many steps, or q to quit.

Usage:
  eca [options] RULE [CELLS]

Arguments:
  RULE
    Wolfram rule number, 0-255.
  CELLS
    Initial condition; ' ', '.', '0' are dead, 'x', 'X', '1', '█' are alive.

Options:
`)
		fs.PrintDefaults()
	}

	var (
		width      int
		iterations int
		display    string
		block      bool
		random     bool
		middle     bool
		noWrap     bool
		configPath string
		logLevel   string
	)
	fs.IntVar(&width, "width", DefaultWidth, "Number of cells in a generation.")
	fs.IntVar(&width, "w", DefaultWidth, "Number of cells (shorthand).")
	fs.IntVar(&iterations, "iterations", 0, "Print N generations and exit. If unset, run interactively.")
	fs.IntVar(&iterations, "height", 0, "Alias for -iterations.")
	fs.IntVar(&iterations, "i", 0, "Alias for -iterations (shorthand).")
	fs.StringVar(&display, "display", "", "Two characters used to draw alive and dead cells, e.g. \"X.\".")
	fs.StringVar(&display, "d", "", "Alias for -display (shorthand).")
	fs.StringVar(&display, "c", "", "Alias for -display.")
	fs.BoolVar(&block, "solid", false, "Draw cells as solid blocks.")
	fs.BoolVar(&block, "block", false, "Alias for -solid.")
	fs.BoolVar(&block, "s", false, "Alias for -solid (shorthand).")
	fs.BoolVar(&block, "b", false, "Alias for -solid.")
	fs.BoolVar(&random, "random", false, "Randomize the initial condition.")
	fs.BoolVar(&random, "r", false, "Alias for -random (shorthand).")
	fs.BoolVar(&middle, "middle", false, "Start with one live cell in the centre.")
	fs.BoolVar(&middle, "m", false, "Alias for -middle (shorthand).")
	fs.BoolVar(&noWrap, "no-wrap", false, "Treat the edges of the simulation as dead cells.")
	fs.BoolVar(&noWrap, "n", false, "Alias for -no-wrap (shorthand).")
	fs.StringVar(&configPath, "config", "", "Path to an HCL preset file.")
	fs.StringVar(&logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	anySet := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if len(positional) > 2 {
		return nil, false, usageError("unexpected argument %q", positional[2])
	}

	opts := &Options{Width: DefaultWidth, Glyphs: elementary.DefaultGlyphs, Interactive: true}
	if err := opts.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, false, usageError("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", logLevel)
	}

	var preset config.Preset
	if configPath != "" {
		p, err := config.Load(configPath, env)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		preset = *p
		slog.Debug("Preset loaded.", "path", configPath)
	}

	// Rule.
	switch {
	case len(positional) > 0:
		rule, err := strconv.ParseUint(positional[0], 10, 8)
		if err != nil {
			return nil, false, usageError("invalid RULE %q: must be an integer between 0 and 255", positional[0])
		}
		opts.Rule = uint8(rule)
	case preset.Rule != nil:
		if *preset.Rule < 0 || *preset.Rule > 255 {
			return nil, false, usageError("invalid rule %d in preset: must be between 0 and 255", *preset.Rule)
		}
		opts.Rule = uint8(*preset.Rule)
	default:
		fs.Usage()
		return nil, false, usageError("missing required argument RULE")
	}

	// Width and iteration count.
	switch {
	case anySet("width", "w"):
		opts.Width = width
	case preset.Width != nil:
		opts.Width = *preset.Width
	}
	if opts.Width <= 0 {
		return nil, false, usageError("width must be positive, got %d", opts.Width)
	}

	switch {
	case anySet("iterations", "height", "i"):
		opts.Iterations, opts.Interactive = iterations, false
	case preset.Iterations != nil:
		opts.Iterations, opts.Interactive = *preset.Iterations, false
	}
	if opts.Iterations < 0 {
		return nil, false, usageError("iterations must not be negative, got %d", opts.Iterations)
	}

	// Boundary.
	if noWrap || (!anySet("no-wrap", "n") && preset.Wrap != nil && !*preset.Wrap) {
		opts.Boundary = elementary.DeadEdges
	}

	// Glyphs.
	displaySet := anySet("display", "d", "c")
	switch {
	case displaySet && block:
		return nil, false, usageError("-display and -solid are mutually exclusive")
	case block:
		opts.Glyphs = elementary.BlockGlyphs
	case displaySet:
		if opts.Glyphs, err = elementary.ParseGlyphs(display); err != nil {
			return nil, false, usageError("Input to -display must be a string of two characters i.e. \"X.\" or \"█ \"")
		}
	case preset.Glyphs != nil:
		if opts.Glyphs, err = presetGlyphs(*preset.Glyphs); err != nil {
			return nil, false, usageError("invalid glyphs %q in preset: %v", *preset.Glyphs, err)
		}
	}

	// Initial condition: random > cells > middle > first.
	var custom *string
	if len(positional) > 1 {
		custom = &positional[1]
	}
	chosen := 0
	for _, b := range []bool{random, middle, custom != nil} {
		if b {
			chosen++
		}
	}
	if chosen > 1 {
		return nil, false, usageError("-random, -middle and CELLS are mutually exclusive")
	}
	switch {
	case random:
		opts.Init = InitRandom
	case custom != nil:
		if err := opts.setCells(*custom); err != nil {
			return nil, false, err
		}
	case middle:
		opts.Init = InitMiddle
	case preset.Start != nil:
		if err := opts.setStart(*preset.Start); err != nil {
			return nil, false, err
		}
	}

	slog.Debug("CLI parser finished successfully.", "rule", opts.Rule, "width", opts.Width,
		"interactive", opts.Interactive, "init", opts.Init, "boundary", opts.Boundary)
	return opts, false, nil
}

// parseInterleaved parses fs over args, allowing flags to follow positional
// arguments. Everything after a "--" terminator is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func (o *Options) setCells(s string) error {
	cells, err := elementary.ParseCells(s)
	if err != nil {
		return usageError("Custom input must only be [' ', '.', '0'] (dead) or ['x', 'X', '1', '█'] (alive): %v", err)
	}
	if len(cells) > o.Width {
		return usageError("initial state too large (%d cells) for width %d", len(cells), o.Width)
	}
	o.Init, o.Cells = InitCells, cells
	return nil
}

func (o *Options) setStart(s string) error {
	switch strings.ToLower(s) {
	case config.StartRandom:
		o.Init = InitRandom
	case config.StartMiddle:
		o.Init = InitMiddle
	case config.StartFirst:
		o.Init = InitFirst
	default:
		return o.setCells(s)
	}
	return nil
}

func presetGlyphs(s string) (elementary.Glyphs, error) {
	if strings.EqualFold(s, config.GlyphsBlock) {
		return elementary.BlockGlyphs, nil
	}
	return elementary.ParseGlyphs(s)
}
