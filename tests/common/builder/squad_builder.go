//go:build unit

package builder

import (
	domsquad "turfbook/internal/domain/squad"
	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
)

type SquadBuilder struct {
	EventID     string
	EventName   string
	Sport       string
	TeamName    string
	TargetSize  int
	CaptainName string
}

func NewSquadBuilder() *SquadBuilder {
	return &SquadBuilder{
		EventID:     "evt-2026-001",
		EventName:   "Sunday Night League",
		Sport:       "football",
		TeamName:    "Juhu Strikers",
		TargetSize:  5,
		CaptainName: "Arjun",
	}
}

func (b *SquadBuilder) With(mutate func(*SquadBuilder)) *SquadBuilder {
	mutate(b)
	return b
}

func (b *SquadBuilder) BuildDomain() (*domsquad.Squad, error) {
	sq, err := domsquad.NewSquad(b.EventID, b.EventName, b.Sport, b.TeamName, b.TargetSize)
	if err != nil {
		return nil, err
	}
	if b.CaptainName != "" {
		if err := sq.RenamePlayer(sq.Captain().ID, b.CaptainName); err != nil {
			return nil, err
		}
	}
	return sq, nil
}

func (b *SquadBuilder) BuildCreateRequestDTO() reqdto.CreateSquadRequest {
	return reqdto.CreateSquadRequest{
		EventID:    b.EventID,
		EventName:  b.EventName,
		Sport:      b.Sport,
		TeamName:   b.TeamName,
		TargetSize: b.TargetSize,
	}
}

func (b *SquadBuilder) BuildCreateParams() commands.CreateSquadParams {
	return b.BuildCreateRequestDTO().ToParams()
}

func (b *SquadBuilder) BuildView() (*queries.SquadView, error) {
	sq, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	return queries.SquadViewFrom(sq), nil
}
