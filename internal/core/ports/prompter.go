package ports

import "context"

// Prompter asks the operator to choose between answers.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Choose asks question and returns one of choices.
	// def is returned when no operator is available to answer.
	Choose(ctx context.Context, question string, choices []string, def string) (string, error)
}
