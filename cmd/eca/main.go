package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"

	"eca/internal/cli"
	"eca/internal/config"
	"eca/internal/ctxlog"
	"eca/internal/driver"
)

// progressThreshold is the smallest batch that gets a progress bar.
const progressThreshold = 4096

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, stdout, terminalEnv(stdout))
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.LogLevel}))
	ctx = ctxlog.WithLogger(ctx, logger)

	auto, err := opts.NewAutomaton()
	if err != nil {
		return fmt.Errorf("cannot start simulation: %w", err)
	}
	logger.Debug("Automaton ready.", "rule", auto.Rule(), "width", auto.Width(),
		"boundary", auto.Boundary(), "init", opts.Init)

	runner := &driver.Runner{Automaton: auto, Out: stdout, Redraw: isTerminal(stdin)}
	if opts.Interactive {
		return runner.Interactive(ctx, stdin)
	}

	if wantProgress(opts.Iterations, isTerminal(stdout), isTerminal(stderr)) {
		bar := attachProgress(runner, stderr, opts.Iterations)
		defer bar.Finish()
	}
	return runner.Batch(ctx, opts.Iterations)
}

// wantProgress reports whether a batch of n generations gets a progress bar:
// only for long runs whose output is redirected while stderr is watched.
func wantProgress(n int, stdoutTTY, stderrTTY bool) bool {
	return n >= progressThreshold && !stdoutTTY && stderrTTY
}

// attachProgress starts a bar on w that advances with every generation
// runner prints. The caller finishes the bar.
func attachProgress(runner *driver.Runner, w io.Writer, n int) *pb.ProgressBar {
	bar := pb.New(n)
	bar.SetWriter(w)
	bar.Start()
	runner.OnGeneration = func() { bar.Increment() }
	return bar
}

func fd(v any) (int, bool) {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func isTerminal(v any) bool {
	n, ok := fd(v)
	return ok && term.IsTerminal(n)
}

// terminalEnv reports the size of the terminal behind out, if any.
func terminalEnv(out io.Writer) config.Env {
	env := config.DefaultEnv()
	if n, ok := fd(out); ok && term.IsTerminal(n) {
		if w, h, err := term.GetSize(n); err == nil && w > 0 && h > 0 {
			env.TermWidth, env.TermHeight = w, h
		}
	}
	return env
}
