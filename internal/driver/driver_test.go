package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"eca/internal/sims/elementary"
)

func newRunner(t *testing.T, out *bytes.Buffer) *Runner {
	t.Helper()
	a, err := elementary.New(2, 5, elementary.Wrap, elementary.DefaultGlyphs)
	require.NoError(t, err)
	require.NoError(t, a.SetState([]bool{true}))
	return &Runner{Automaton: a, Out: out}
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestBatch_PrintsNGenerations(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	r := newRunner(t, out)
	calls := 0
	r.OnGeneration = func() { calls++ }

	require.NoError(t, r.Batch(context.Background(), 6))
	require.Equal(t, []string{"X....", "....X", "...X.", "..X..", ".X...", "X...."}, lines(out.String()))
	require.Equal(t, 6, calls)
}

func TestBatch_Zero(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, newRunner(t, out).Batch(context.Background(), 0))
	require.Empty(t, out.String())
}

func TestBatch_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}
	err := newRunner(t, out).Batch(ctx, 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestInteractive_Protocol(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	r := newRunner(t, out)
	in := strings.NewReader("\n3\nnope\n-2\n99999999999999999999999\nq\n\n")

	require.NoError(t, r.Interactive(context.Background(), in))
	require.Equal(t, []string{
		"X....", // initial generation
		"....X", // empty line
		"...X.", // 3
		"..X..",
		".X...",
		MsgExpectedNumber,
		MsgBackwards,
		MsgTooLarge,
	}, lines(out.String()))
}

func TestInteractive_RedrawMovesCursor(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	r := newRunner(t, out)
	r.Redraw = true

	require.NoError(t, r.Interactive(context.Background(), strings.NewReader("\n2\n")))
	require.Equal(t, "X....\n"+cursorUp+"....X\n...X.\n..X..\n", out.String())
}

func TestInteractive_QuitImmediately(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, newRunner(t, out).Interactive(context.Background(), strings.NewReader("QUIT\n3\n")))
	require.Equal(t, "X....\n", out.String())
}

func TestInteractive_EndOfInput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, newRunner(t, out).Interactive(context.Background(), strings.NewReader("1")))
	require.Equal(t, "X....\n....X\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestInteractive_WriteError(t *testing.T) {
	t.Parallel()

	a, err := elementary.New(30, 4, elementary.Wrap, elementary.DefaultGlyphs)
	require.NoError(t, err)
	r := &Runner{Automaton: a, Out: failingWriter{}}
	err = r.Interactive(context.Background(), strings.NewReader(""))
	require.ErrorContains(t, err, "disk full")
}

func TestInteractive_LongLinesAreRejectedNotFatal(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Repeat("9", 70000) + "\n\n" + strings.Repeat("z", 70000) + "\n\nq\n")

	require.NoError(t, newRunner(t, out).Interactive(context.Background(), in))
	require.Equal(t, []string{
		"X....",
		MsgTooLarge,
		"....X",
		MsgExpectedNumber,
		"...X.",
	}, lines(out.String()))
}
