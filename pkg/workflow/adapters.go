package workflow

import (
	"context"

	"github.com/forgeflow/forgeflow/pkg/models"
)

// Adapter is a single typed stage implementation. Contract:
//   - mutate only the context fields the stage owns
//   - be idempotent under retry with the same input context
//   - respect ctx cancellation and deadlines
//
// An adapter returning a *PermanentError is not retried.
type Adapter interface {
	Name() string
	Execute(ctx context.Context, rc *models.RunContext) error
}

// PermanentError marks a stage failure that retrying cannot fix (bad input,
// rejected by policy, unparseable model output after fallback).
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// adapter binds a stage name to its implementation function.
type adapter struct {
	name string
	fn   func(ctx context.Context, rc *models.RunContext) error
}

func (a *adapter) Name() string { return a.name }

func (a *adapter) Execute(ctx context.Context, rc *models.RunContext) error {
	return a.fn(ctx, rc)
}
