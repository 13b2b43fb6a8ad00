package queries

import (
	"context"

	"turfbook/internal/domain/squad"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type SquadReader interface {
	Find(ctx context.Context, id uuid.UUID) (*squad.Squad, error)
}

type SquadQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SquadView, error)
}

type squadQueriesImpl struct {
	reader SquadReader
}

func NewSquadQueries(reader SquadReader) SquadQueries {
	return &squadQueriesImpl{reader: reader}
}

func (q *squadQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SquadView, error) {
	sq, err := q.reader.Find(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSquadNotFound)
	}
	return SquadViewFrom(sq), nil
}

// SquadViewFrom flattens a squad aggregate into its read model.
func SquadViewFrom(sq *squad.Squad) *SquadView {
	players := sq.Players()
	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = PlayerView{
			ID:   p.ID,
			Name: p.Name,
			Role: p.Role.String(),
		}
	}
	return &SquadView{
		ID:            sq.ID(),
		EventID:       sq.EventID(),
		EventName:     sq.EventName(),
		Sport:         sq.Sport(),
		TeamName:      sq.TeamName(),
		TargetSize:    sq.TargetSize(),
		PlayersNeeded: sq.PlayersNeeded(),
		IsComplete:    sq.IsComplete(),
		Players:       views,
	}
}
