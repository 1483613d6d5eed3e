// Package driver prints generations of an automaton, either a fixed number
// in one go or step by step under control of line-based input.
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"eca/internal/ctxlog"
	"eca/internal/sims/elementary"
)

// cursorUp moves the terminal cursor to the start of the previous line.
const cursorUp = "\x1b[1A"

// Runner renders an automaton to Out.
type Runner struct {
	Automaton *elementary.Automaton
	Out       io.Writer
	// Redraw moves the cursor up before printing the generation requested by
	// an empty line, overwriting the newline the terminal echoed.
	Redraw bool
	// OnGeneration, if set, is called after each printed generation.
	OnGeneration func()
}

// Batch prints n generations, starting with the current one, then returns.
func (r *Runner) Batch(ctx context.Context, n int) error {
	ctxlog.FromContext(ctx).Debug("batch run", "generations", n)
	w := bufio.NewWriter(r.Out)
	if err := r.print(ctx, w, n); err != nil {
		return err
	}
	return w.Flush()
}

// Interactive prints the current generation and then executes one command
// per line read from in until the user quits or input ends. Lines have no
// length limit.
func (r *Runner) Interactive(ctx context.Context, in io.Reader) error {
	log := ctxlog.FromContext(ctx)
	w := bufio.NewWriter(r.Out)
	if err := r.print(ctx, w, 1); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	rd := bufio.NewReader(in)
	for {
		line, readErr := rd.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		cmd := ParseCommand(line)
		log.Debug("interactive command", "action", cmd.Action, "count", cmd.Count)

		var err error
		switch cmd.Action {
		case Quit:
			return nil
		case Continue:
			if r.Redraw {
				w.WriteString(cursorUp)
			}
			err = r.print(ctx, w, 1)
		case Advance:
			err = r.print(ctx, w, cmd.Count)
		case Reject:
			_, err = fmt.Fprintln(w, cmd.Message)
		}
		if err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if readErr != nil {
			break
		}
	}
	log.Debug("input closed")
	return nil
}

// print writes the current generation and advances, n times.
func (r *Runner) print(ctx context.Context, w *bufio.Writer, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.WriteString(r.Automaton.String())
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		r.Automaton.StepAndUpdate()
		if r.OnGeneration != nil {
			r.OnGeneration()
		}
	}
	return nil
}
