package battleship

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type PlayerRole uint8

const (
	RoleHost PlayerRole = iota
	RoleJoin
)

func (r PlayerRole) String() string {
	if r == RoleHost {
		return "host"
	}
	return "join"
}

func (r PlayerRole) Other() PlayerRole {
	if r == RoleHost {
		return RoleJoin
	}
	return RoleHost
}

func ParsePlayerRole(role string) (PlayerRole, error) {
	switch strings.ToLower(role) {
	case "host":
		return RoleHost, nil
	case "join":
		return RoleJoin, nil
	default:
		return 0, cerr.ErrInvalidPlayerRole(role)
	}
}

// PlacementEvent describes one placement attempt. Err is nil when the
// ship was written to the board.
type PlacementEvent struct {
	GameUuid    string
	PlayerUuid  string
	Role        PlayerRole
	Position    string
	ShipType    ShipType
	Direction   Direction
	Err         error
	BecameReady bool
}

// PlacementObserver is notified after every placement attempt, once the
// player's board is unlocked again so observers may render it.
type PlacementObserver interface {
	OnPlacement(game *Game, event PlacementEvent)
}

// A seat pairs a player with the lock that serializes placement against
// reads of the same board.
type seat struct {
	mu     sync.RWMutex
	player *Player
}

type Game struct {
	uuid      string
	seats     [2]*seat
	observers []PlacementObserver
	mu        sync.RWMutex
}

// newGame creates both players and hands each one an identity, which is
// the only place identities are assigned.
func newGame(gameUuid string) *Game {
	game := &Game{uuid: gameUuid}
	for i := range game.seats {
		player := NewPlayer()
		player.SetUuid(uuid.NewString()[:10])
		game.seats[i] = &seat{player: player}
	}
	return game
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) AddObserver(observer PlacementObserver) {
	g.mu.Lock()
	g.observers = append(g.observers, observer)
	g.mu.Unlock()
}

func (g *Game) PlayerUuid(role PlayerRole) string {
	s := g.seats[role]
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, _ := s.player.Uuid()
	return id
}

// FindRole maps a player uuid back to its seat.
func (g *Game) FindRole(playerUuid string) (PlayerRole, error) {
	for _, role := range []PlayerRole{RoleHost, RoleJoin} {
		if g.PlayerUuid(role) == playerUuid {
			return role, nil
		}
	}
	return 0, cerr.ErrPlayerNotExist(playerUuid)
}

func (g *Game) PlaceShip(role PlayerRole, startPos string, shipType ShipType, direction Direction) error {
	s := g.seats[role]

	s.mu.Lock()
	wasReady := s.player.IsReady()
	err := s.player.PlaceShip(startPos, shipType, direction)
	becameReady := !wasReady && s.player.IsReady()
	playerUuid, _ := s.player.Uuid()
	s.mu.Unlock()

	g.notify(PlacementEvent{
		GameUuid:    g.uuid,
		PlayerUuid:  playerUuid,
		Role:        role,
		Position:    startPos,
		ShipType:    shipType,
		Direction:   direction,
		Err:         err,
		BecameReady: becameReady,
	})
	return err
}

func (g *Game) notify(event PlacementEvent) {
	g.mu.RLock()
	observers := make([]PlacementObserver, len(g.observers))
	copy(observers, g.observers)
	g.mu.RUnlock()

	for _, observer := range observers {
		observer.OnPlacement(g, event)
	}
}

func (g *Game) OwnerView(role PlayerRole) BoardView {
	s := g.seats[role]
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.OwnerView()
}

func (g *Game) OpponentView(role PlayerRole) BoardView {
	s := g.seats[role]
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.OpponentView()
}

func (g *Game) IsReady(role PlayerRole) bool {
	s := g.seats[role]
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.IsReady()
}

func (g *Game) RemainingShips(role PlayerRole) []ShipType {
	s := g.seats[role]
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.RemainingShips()
}

// IsReadyToStart reports whether both fleets are fully placed.
func (g *Game) IsReadyToStart() bool {
	return g.IsReady(RoleHost) && g.IsReady(RoleJoin)
}

// EncodePlayer returns the JSON encoding of one player's state.
func (g *Game) EncodePlayer(role PlayerRole) ([]byte, error) {
	s := g.seats[role]
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.player)
}
