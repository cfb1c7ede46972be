package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/songcontest/contest-api/internal/core/ports"
)

// Transactor runs units of work inside a multi-document transaction when
// enabled. Transactions need a replica set; on a standalone server leave it
// disabled and fn runs directly. fn runs exactly once: transient errors and
// unknown commit results are returned, not retried.
type Transactor struct {
	client  *mongo.Client
	enabled bool
}

func NewTransactor(client *mongo.Client, enabled bool) *Transactor {
	return &Transactor{client: client, enabled: enabled}
}

// WithinTransaction joins a unit of work already carried by ctx instead of
// starting a nested one. Commit hooks run after a successful commit. When
// transactions are disabled nothing can be rolled back, so hooks run even
// if fn fails part way.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ports.InUnitOfWork(ctx) {
		return fn(ctx)
	}
	uowCtx, hooks := ports.WithCommitHooks(ctx)

	if !t.enabled {
		err := fn(uowCtx)
		hooks.Run(ctx)
		return err
	}

	if err := t.runTransaction(uowCtx, fn); err != nil {
		return err
	}
	hooks.Run(ctx)
	return nil
}

func (t *Transactor) runTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(context.WithoutCancel(ctx))

	if err := session.StartTransaction(); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	sc := mongo.NewSessionContext(ctx, session)

	if err := fn(sc); err != nil {
		if abortErr := session.AbortTransaction(context.WithoutCancel(ctx)); abortErr != nil {
			return fmt.Errorf("%w (abort: %v)", err, abortErr)
		}
		return err
	}
	if err := session.CommitTransaction(sc); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
