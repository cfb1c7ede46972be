package ports

import (
	"context"
	"sync"
)

type commitHooksKey struct{}

// CommitHooks collects callbacks for the outermost unit of work.
type CommitHooks struct {
	mu  sync.Mutex
	fns []func(ctx context.Context)
}

// WithCommitHooks marks ctx as carrying a unit of work. Transactor
// implementations call it when they start the outermost one.
func WithCommitHooks(ctx context.Context) (context.Context, *CommitHooks) {
	h := &CommitHooks{}
	return context.WithValue(ctx, commitHooksKey{}, h), h
}

// InUnitOfWork reports whether ctx already belongs to a unit of work, in
// which case a nested WithinTransaction joins it.
func InUnitOfWork(ctx context.Context) bool {
	_, ok := ctx.Value(commitHooksKey{}).(*CommitHooks)
	return ok
}

// AfterCommit defers fn until the unit of work carried by ctx commits. With
// no unit of work in ctx it runs fn immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	h, ok := ctx.Value(commitHooksKey{}).(*CommitHooks)
	if !ok {
		fn(ctx)
		return
	}
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

// Run calls the collected callbacks in registration order with ctx.
func (h *CommitHooks) Run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn(ctx)
	}
}
