package matchmaking

import (
	"context"
	"log/slog"

	"turfbook/internal/domain/squad"
)

// LogNotifier records the handoff for the external matchmaking service.
// Delivery to that service is out of scope here; the record is the
// contract.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) RequestPlayers(_ context.Context, req squad.MatchmakingRequest) error {
	slog.Info("matchmaking request",
		"event_id", req.EventID,
		"event_name", req.EventName,
		"team_name", req.TeamName,
		"current_players", req.CurrentPlayers,
		"total_players", req.TotalPlayers,
		"sport", req.Sport,
	)
	return nil
}
