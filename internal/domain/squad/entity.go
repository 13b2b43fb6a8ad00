package squad

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTeamName       = errors.New("team name cannot be empty")
	ErrInvalidTargetSize   = errors.New("target size must be between 1 and 11")
	ErrRosterFull          = errors.New("roster is full")
	ErrCannotRemoveCaptain = errors.New("captain cannot be removed")
	ErrPlayerNotFound      = errors.New("player not found in roster")
)

const (
	MinTargetSize = 1
	MaxTargetSize = 11
)

type Player struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// Squad is the roster being assembled for an event. The captain occupies
// slot 0 from creation and is never removable. The player list is
// authoritative: resizing below the current roster is accepted and never
// truncates.
type Squad struct {
	id         uuid.UUID
	eventID    string
	eventName  string
	sport      string
	teamName   string
	targetSize int
	players    []Player
}

func NewSquad(eventID, eventName, sport, teamName string, targetSize int) (*Squad, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, ErrEmptyTeamName
	}
	if targetSize < MinTargetSize || targetSize > MaxTargetSize {
		return nil, ErrInvalidTargetSize
	}

	return &Squad{
		id:         uuid.New(),
		eventID:    eventID,
		eventName:  eventName,
		sport:      sport,
		teamName:   teamName,
		targetSize: targetSize,
		players: []Player{
			{ID: uuid.New(), Name: "", Role: RoleCaptain},
		},
	}, nil
}

func Reconstruct(id uuid.UUID, eventID, eventName, sport, teamName string, targetSize int, players []Player) *Squad {
	return &Squad{
		id:         id,
		eventID:    eventID,
		eventName:  eventName,
		sport:      sport,
		teamName:   teamName,
		targetSize: targetSize,
		players:    players,
	}
}

// AddPlayer appends an unnamed roster slot. No-op at target size.
func (s *Squad) AddPlayer() (Player, error) {
	if len(s.players) >= s.targetSize {
		return Player{}, ErrRosterFull
	}
	p := Player{ID: uuid.New(), Name: "", Role: RolePlayer}
	s.players = append(s.players, p)
	return p, nil
}

// RemovePlayer drops a roster member. The captain, and therefore a
// single-member roster, is not removable.
func (s *Squad) RemovePlayer(playerID uuid.UUID) error {
	idx := s.indexOf(playerID)
	if idx < 0 {
		return ErrPlayerNotFound
	}
	if s.players[idx].Role == RoleCaptain || len(s.players) == 1 {
		return ErrCannotRemoveCaptain
	}
	s.players = append(s.players[:idx], s.players[idx+1:]...)
	return nil
}

// RenamePlayer replaces the name outright; any string is accepted.
func (s *Squad) RenamePlayer(playerID uuid.UUID, name string) error {
	idx := s.indexOf(playerID)
	if idx < 0 {
		return ErrPlayerNotFound
	}
	s.players[idx].Name = name
	return nil
}

// Resize changes the target size without touching the player list, even
// when the roster already exceeds the new target.
func (s *Squad) Resize(targetSize int) error {
	if targetSize < MinTargetSize || targetSize > MaxTargetSize {
		return ErrInvalidTargetSize
	}
	s.targetSize = targetSize
	return nil
}

// PlayersNeeded reports open spots, clamped at zero for display.
func (s *Squad) PlayersNeeded() int {
	needed := s.targetSize - len(s.players)
	if needed < 0 {
		return 0
	}
	return needed
}

// IsComplete is true when the roster is at target size and every member,
// captain included, has a non-empty name.
func (s *Squad) IsComplete() bool {
	if len(s.players) != s.targetSize {
		return false
	}
	for _, p := range s.players {
		if strings.TrimSpace(p.Name) == "" {
			return false
		}
	}
	return true
}

// MatchmakingHandoff builds the request-players record. ok is false when
// the roster has no open spots.
func (s *Squad) MatchmakingHandoff() (MatchmakingRequest, bool) {
	if s.PlayersNeeded() == 0 {
		return MatchmakingRequest{}, false
	}
	return MatchmakingRequest{
		EventID:        s.eventID,
		EventName:      s.eventName,
		TeamName:       s.teamName,
		CurrentPlayers: len(s.players),
		TotalPlayers:   s.targetSize,
		Sport:          s.sport,
	}, true
}

func (s *Squad) indexOf(playerID uuid.UUID) int {
	for i, p := range s.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (s *Squad) ID() uuid.UUID {
	return s.id
}

func (s *Squad) EventID() string {
	return s.eventID
}

func (s *Squad) EventName() string {
	return s.eventName
}

func (s *Squad) Sport() string {
	return s.sport
}

func (s *Squad) TeamName() string {
	return s.teamName
}

func (s *Squad) TargetSize() int {
	return s.targetSize
}

// Players returns a copy; the roster is only mutable through squad methods.
func (s *Squad) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

func (s *Squad) Captain() Player {
	return s.players[0]
}
