package driver

import (
	"errors"
	"strconv"
	"strings"
)

// Messages printed for rejected interactive input.
const (
	MsgExpectedNumber = "Expected empty or number"
	MsgBackwards      = "Unfortunately the simulation can't go backwards"
	MsgTooLarge       = "Too large"
)

// Action is what an interactive input line asks the driver to do.
type Action int

const (
	// Continue advances one generation, overwriting the echoed newline.
	Continue Action = iota
	// Advance prints Count generations.
	Advance
	// Quit ends the session.
	Quit
	// Reject prints Message and leaves the automaton untouched.
	Reject
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Advance:
		return "advance"
	case Quit:
		return "quit"
	case Reject:
		return "reject"
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// Command is a parsed interactive input line.
type Command struct {
	Action  Action
	Count   int
	Message string
}

// ParseCommand interprets one line of interactive input. Surrounding
// whitespace is ignored.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Action: Continue}
	}
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return Command{Action: Quit}
	}
	n, err := strconv.ParseInt(line, 10, strconv.IntSize)
	if err == nil {
		if n < 0 {
			return Command{Action: Reject, Message: MsgBackwards}
		}
		return Command{Action: Advance, Count: int(n)}
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if strings.HasPrefix(line, "-") {
			return Command{Action: Reject, Message: MsgBackwards}
		}
		return Command{Action: Reject, Message: MsgTooLarge}
	}
	return Command{Action: Reject, Message: MsgExpectedNumber}
}
