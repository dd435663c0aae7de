package release

import "context"

// ConfirmAnswer is the only prompt answer that lets a rollback proceed.
const ConfirmAnswer = "y"

// Prompter asks the operator to confirm a rollback of host to release and returns the
// raw answer.
type Prompter interface {
	Prompt(ctx context.Context, release string, host string) (string, error)
}

// PromptFunc adapts a function into a Prompter.
type PromptFunc func(ctx context.Context, release string, host string) (string, error)

// Prompt calls f.
func (f PromptFunc) Prompt(ctx context.Context, release string, host string) (string, error) {
	return f(ctx, release, host)
}

// AutoConfirm is a Prompter that always confirms.
var AutoConfirm Prompter = PromptFunc(func(context.Context, string, string) (string, error) {
	return ConfirmAnswer, nil
})
