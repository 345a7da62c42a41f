// Package detector decides whether an operator is available to answer prompts.
package detector

import (
	"os"

	"golang.org/x/term"
)

// InteractionMode is the way operator questions are handled.
type InteractionMode int

const (
	// ModeInteractive asks the operator on the terminal.
	ModeInteractive InteractionMode = iota
	// ModeBatch answers every question with its default.
	ModeBatch
)

// DetectEnvironment returns the interaction mode for the given input.
// Input that is not a terminal, or a CI environment, means batch mode.
func DetectEnvironment(in *os.File) InteractionMode {
	if in == nil || !term.IsTerminal(int(in.Fd())) {
		return ModeBatch
	}
	if IsCI() {
		return ModeBatch
	}
	return ModeInteractive
}

// IsCI reports whether the CI environment variable is set to a true value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
