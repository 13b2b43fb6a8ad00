package response

import (
	"turfbook/internal/domain/squad"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlayerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type SquadResponse struct {
	ID            uuid.UUID        `json:"id"`
	EventID       string           `json:"eventId"`
	EventName     string           `json:"eventName"`
	Sport         string           `json:"sport"`
	TeamName      string           `json:"teamName"`
	TargetSize    int              `json:"targetSize"`
	PlayersNeeded int              `json:"playersNeeded"`
	IsComplete    bool             `json:"isComplete"`
	Players       []PlayerResponse `json:"players"`
}

type MatchmakingResponse struct {
	EventID        string `json:"eventId"`
	EventName      string `json:"eventName"`
	TeamName       string `json:"teamName"`
	CurrentPlayers int    `json:"currentPlayers"`
	TotalPlayers   int    `json:"totalPlayers"`
	Sport          string `json:"sport"`
}

func FromSquadView(v *queries.SquadView) SquadResponse {
	players := make([]PlayerResponse, len(v.Players))
	for i, p := range v.Players {
		players[i] = PlayerResponse{
			ID:   p.ID,
			Name: p.Name,
			Role: p.Role,
		}
	}
	return SquadResponse{
		ID:            v.ID,
		EventID:       v.EventID,
		EventName:     v.EventName,
		Sport:         v.Sport,
		TeamName:      v.TeamName,
		TargetSize:    v.TargetSize,
		PlayersNeeded: v.PlayersNeeded,
		IsComplete:    v.IsComplete,
		Players:       players,
	}
}

func FromMatchmakingRequest(req *squad.MatchmakingRequest) MatchmakingResponse {
	return MatchmakingResponse{
		EventID:        req.EventID,
		EventName:      req.EventName,
		TeamName:       req.TeamName,
		CurrentPlayers: req.CurrentPlayers,
		TotalPlayers:   req.TotalPlayers,
		Sport:          req.Sport,
	}
}
