// Package cli parses the command line of eca, merges it with an optional
// preset file, and translates the result into the options used to seed and
// drive an automaton. Usage errors are reported as *ExitError values carrying
// the process exit code.
package cli
