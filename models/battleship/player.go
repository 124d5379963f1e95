package battleship

import (
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

// Player owns one board and the set of ship kinds placed on it. A Player
// is not safe for concurrent use; Game serializes access per player.
type Player struct {
	uuid        string
	hasUuid     bool
	grid        Grid
	placedShips map[ShipType]struct{}
	isReady     bool
}

func NewPlayer() *Player {
	return &Player{
		placedShips: make(map[ShipType]struct{}, FleetSize),
	}
}

// Uuid returns the identity attached by the session layer, if any.
func (p *Player) Uuid() (string, bool) {
	return p.uuid, p.hasUuid
}

func (p *Player) SetUuid(uuid string) {
	p.uuid = uuid
	p.hasUuid = true
}

func (p *Player) IsReady() bool {
	return p.isReady
}

// Grid returns a copy of the board.
func (p *Player) Grid() Grid {
	return p.grid
}

func (p *Player) CellAt(c Coordinates) CellState {
	if !c.InBounds() {
		return CellEmpty
	}
	return p.grid.Cell(c)
}

func (p *Player) HasPlaced(shipType ShipType) bool {
	_, prs := p.placedShips[shipType]
	return prs
}

// PlacedShips lists the placed kinds in catalog order.
func (p *Player) PlacedShips() []ShipType {
	placed := make([]ShipType, 0, len(p.placedShips))
	for _, st := range AllShipTypes() {
		if p.HasPlaced(st) {
			placed = append(placed, st)
		}
	}
	return placed
}

// RemainingShips lists the kinds still to be placed in catalog order.
func (p *Player) RemainingShips() []ShipType {
	remaining := make([]ShipType, 0, FleetSize-len(p.placedShips))
	for _, st := range AllShipTypes() {
		if !p.HasPlaced(st) {
			remaining = append(remaining, st)
		}
	}
	return remaining
}

// ShipCells validates a placement request against the current board and
// returns the cells the ship would occupy, from the start cell onwards.
// The board is never modified.
func (p *Player) ShipCells(startPos string, shipType ShipType, direction Direction) ([]Coordinates, error) {
	if p.isReady {
		return nil, cerr.ErrAlreadyReady()
	}

	if !shipType.IsValid() {
		return nil, cerr.ErrInvalidShipType(shipType.String())
	}

	if p.HasPlaced(shipType) {
		return nil, cerr.ErrDuplicateShip(shipType.String())
	}

	start, err := ParsePosition(startPos)
	if err != nil {
		return nil, err
	}

	dx, dy, ok := direction.Step()
	if !ok {
		return nil, cerr.ErrInvalidDirection(direction.String())
	}

	length := shipType.Size()
	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		cell := NewCoordinates(start.X+i*dx, start.Y+i*dy)
		if !cell.InBounds() {
			return nil, cerr.ErrShipOutOfBounds(cell.X, cell.Y)
		}
		cells = append(cells, cell)
	}

	// A ship that both leaves the board and crosses another one reports
	// OutOfBounds. Only empty cells take a ship, shot cells included.
	for _, cell := range cells {
		if p.grid.Cell(cell) != CellEmpty {
			return nil, cerr.ErrShipOverlap(cell.X, cell.Y)
		}
	}

	return cells, nil
}

// PlaceShip writes a ship onto the board. The request is validated in
// full before any cell is touched, so a rejected placement leaves the
// board unchanged. Placing the last missing kind makes the player ready.
func (p *Player) PlaceShip(startPos string, shipType ShipType, direction Direction) error {
	cells, err := p.ShipCells(startPos, shipType, direction)
	if err != nil {
		return err
	}

	for _, cell := range cells {
		p.grid.set(cell, CellShipIntact)
	}
	p.placedShips[shipType] = struct{}{}

	if len(p.placedShips) == FleetSize {
		p.isReady = true
	}
	return nil
}
