package squad

type Role string

const (
	RoleCaptain Role = "captain"
	RolePlayer  Role = "player"
)

func (r Role) String() string {
	return string(r)
}

// MatchmakingRequest is the handoff record for the external matchmaking
// service when a roster still has open spots. The squad core only builds
// it; sending is a boundary concern.
type MatchmakingRequest struct {
	EventID        string
	EventName      string
	TeamName       string
	CurrentPlayers int
	TotalPlayers   int
	Sport          string
}
