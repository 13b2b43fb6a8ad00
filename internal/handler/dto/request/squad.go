package request

import "turfbook/internal/usecase/commands"

type CreateSquadRequest struct {
	EventID    string `json:"event_id" binding:"required"`
	EventName  string `json:"event_name" binding:"required"`
	Sport      string `json:"sport" binding:"required"`
	TeamName   string `json:"team_name" binding:"required"`
	TargetSize int    `json:"target_size" binding:"required,min=1,max=11"`
}

func (r CreateSquadRequest) ToParams() commands.CreateSquadParams {
	return commands.CreateSquadParams{
		EventID:    r.EventID,
		EventName:  r.EventName,
		Sport:      r.Sport,
		TeamName:   r.TeamName,
		TargetSize: r.TargetSize,
	}
}

type RenamePlayerRequest struct {
	// Renames are a total replace; an empty name clears the slot.
	Name *string `json:"name" binding:"required"`
}

type ResizeSquadRequest struct {
	TargetSize int `json:"target_size" binding:"required,min=1,max=11"`
}
