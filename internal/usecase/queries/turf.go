package queries

import (
	"context"

	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type TurfReadStore interface {
	FindAll(ctx context.Context) ([]*TurfView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TurfView, error)
}

type TurfQueries interface {
	List(ctx context.Context) ([]*TurfView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TurfView, error)
}

type turfQueriesImpl struct {
	store TurfReadStore
}

func NewTurfQueries(store TurfReadStore) TurfQueries {
	return &turfQueriesImpl{store: store}
}

func (q *turfQueriesImpl) List(ctx context.Context) ([]*TurfView, error) {
	return q.store.FindAll(ctx)
}

func (q *turfQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TurfView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTurfNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
