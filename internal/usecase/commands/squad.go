package commands

import (
	"context"
	"errors"

	"turfbook/internal/domain/squad"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateSquadParams struct {
	EventID    string
	EventName  string
	Sport      string
	TeamName   string
	TargetSize int
}

type SquadCommands interface {
	Create(ctx context.Context, params CreateSquadParams) (*queries.SquadView, error)
	AddPlayer(ctx context.Context, squadID uuid.UUID) (*queries.SquadView, error)
	RemovePlayer(ctx context.Context, squadID, playerID uuid.UUID) (*queries.SquadView, error)
	RenamePlayer(ctx context.Context, squadID, playerID uuid.UUID, name string) (*queries.SquadView, error)
	Resize(ctx context.Context, squadID uuid.UUID, targetSize int) (*queries.SquadView, error)
	RequestPlayers(ctx context.Context, squadID uuid.UUID) (*squad.MatchmakingRequest, error)
	Discard(ctx context.Context, squadID uuid.UUID) error
}

type squadCommandsImpl struct {
	store    SquadStore
	notifier MatchmakingNotifier
}

func NewSquadCommands(store SquadStore, notifier MatchmakingNotifier) SquadCommands {
	return &squadCommandsImpl{
		store:    store,
		notifier: notifier,
	}
}

func (s *squadCommandsImpl) Create(ctx context.Context, params CreateSquadParams) (*queries.SquadView, error) {
	sq, err := squad.NewSquad(params.EventID, params.EventName, params.Sport, params.TeamName, params.TargetSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := s.store.Save(ctx, sq); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.SquadViewFrom(sq), nil
}

func (s *squadCommandsImpl) AddPlayer(ctx context.Context, squadID uuid.UUID) (*queries.SquadView, error) {
	return s.mutate(ctx, squadID, func(sq *squad.Squad) error {
		if _, err := sq.AddPlayer(); err != nil {
			return errs.Mark(err, errs.ErrRosterFull)
		}
		return nil
	})
}

func (s *squadCommandsImpl) RemovePlayer(ctx context.Context, squadID, playerID uuid.UUID) (*queries.SquadView, error) {
	return s.mutate(ctx, squadID, func(sq *squad.Squad) error {
		err := sq.RemovePlayer(playerID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, squad.ErrPlayerNotFound):
			return errs.Mark(err, errs.ErrPlayerNotFound)
		default:
			return errs.Mark(err, errs.ErrCannotRemoveCaptain)
		}
	})
}

func (s *squadCommandsImpl) RenamePlayer(ctx context.Context, squadID, playerID uuid.UUID, name string) (*queries.SquadView, error) {
	return s.mutate(ctx, squadID, func(sq *squad.Squad) error {
		if err := sq.RenamePlayer(playerID, name); err != nil {
			return errs.Mark(err, errs.ErrPlayerNotFound)
		}
		return nil
	})
}

func (s *squadCommandsImpl) Resize(ctx context.Context, squadID uuid.UUID, targetSize int) (*queries.SquadView, error) {
	return s.mutate(ctx, squadID, func(sq *squad.Squad) error {
		if err := sq.Resize(targetSize); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil
	})
}

// RequestPlayers hands an incomplete roster to matchmaking. Complete
// rosters have nothing to request and get a validation error.
func (s *squadCommandsImpl) RequestPlayers(ctx context.Context, squadID uuid.UUID) (*squad.MatchmakingRequest, error) {
	sq, err := s.store.Find(ctx, squadID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSquadNotFound)
	}

	req, ok := sq.MatchmakingHandoff()
	if !ok {
		return nil, errs.Mark(errs.New("roster has no open spots"), errs.ErrDomainValidation)
	}

	if err := s.notifier.RequestPlayers(ctx, req); err != nil {
		return nil, errs.Wrap(err, "matchmaking handoff failed")
	}
	return &req, nil
}

func (s *squadCommandsImpl) Discard(ctx context.Context, squadID uuid.UUID) error {
	if err := s.store.Delete(ctx, squadID); err != nil {
		return errs.Mark(err, errs.ErrSquadNotFound)
	}
	return nil
}

func (s *squadCommandsImpl) mutate(ctx context.Context, squadID uuid.UUID, op func(*squad.Squad) error) (*queries.SquadView, error) {
	sq, err := s.store.Find(ctx, squadID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSquadNotFound)
	}
	if err := op(sq); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sq); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.SquadViewFrom(sq), nil
}
