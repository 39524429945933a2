// Package pipeline runs request stages in order and stops at the first failure.
//
// A route is described as an ordered list of stages: existence checks, payload
// validators, domain rules and finally the terminal handler. Each stage reads the
// request scope and may attach data to it for the stages after it.
//
// Example:
//
//	chain := pipeline.New(
//	    resolver.OrderExists(repo),
//	    validation.OrderIsPending(),
//	    destroy,
//	)
//	if err := chain.Run(ctx, &request.OrderScope{OrderID: id}); err != nil {
//	    return err
//	}
package pipeline

import "context"

// Stage is one step of a request pipeline. A non-nil error aborts the chain.
type Stage[S any] func(ctx context.Context, scope S) error

// Chain is an immutable ordered list of stages.
type Chain[S any] struct {
	stages []Stage[S]
}

// New builds a chain from stages, in the order given.
func New[S any](stages ...Stage[S]) Chain[S] {
	return Chain[S]{stages: append([]Stage[S](nil), stages...)}
}

// Then returns a new chain with stages appended. The receiver is not modified.
func (c Chain[S]) Then(stages ...Stage[S]) Chain[S] {
	next := make([]Stage[S], 0, len(c.stages)+len(stages))
	next = append(next, c.stages...)
	next = append(next, stages...)
	return Chain[S]{stages: next}
}

// Len returns the number of stages.
func (c Chain[S]) Len() int {
	return len(c.stages)
}

// Run executes every stage in order against scope. The first error is returned
// unchanged and no later stage runs.
func (c Chain[S]) Run(ctx context.Context, scope S) error {
	for _, stage := range c.stages {
		if err := stage(ctx, scope); err != nil {
			return err
		}
	}
	return nil
}

// Map builds one stage per name, in order.
func Map[S any](names []string, build func(name string) Stage[S]) []Stage[S] {
	stages := make([]Stage[S], 0, len(names))
	for _, name := range names {
		stages = append(stages, build(name))
	}
	return stages
}
