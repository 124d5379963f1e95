package battleship

import (
	"encoding/json"
	"fmt"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

// playerJSON is the wire shape of a Player. Grid rows are indexed the
// same way as Grid, [row][column].
type playerJSON struct {
	Uuid        *string    `json:"uuid"`
	Board       [][]int    `json:"board"`
	PlacedShips []ShipType `json:"placed_ships"`
	IsReady     bool       `json:"is_ready"`
}

// MarshalJSON has a value receiver so that Player values and embedded
// players encode the same as pointers.
func (p Player) MarshalJSON() ([]byte, error) {
	pj := playerJSON{
		Board:       make([][]int, GridSize),
		PlacedShips: p.PlacedShips(),
		IsReady:     p.isReady,
	}
	if uuid, ok := p.Uuid(); ok {
		pj.Uuid = &uuid
	}

	for row := 0; row < GridSize; row++ {
		pj.Board[row] = make([]int, GridSize)
		for col := 0; col < GridSize; col++ {
			pj.Board[row][col] = int(p.grid[row][col])
		}
	}
	return json.Marshal(pj)
}

// UnmarshalJSON rejects any state placement could not have produced,
// apart from shot cells which are kept as they are.
func (p *Player) UnmarshalJSON(data []byte) error {
	var pj playerJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}

	decoded := NewPlayer()
	if pj.Uuid != nil {
		decoded.SetUuid(*pj.Uuid)
	}

	if len(pj.Board) != GridSize {
		return cerr.ErrCorruptGridDimensions(len(pj.Board), 0)
	}
	for row, cells := range pj.Board {
		if len(cells) != GridSize {
			return cerr.ErrCorruptGridDimensions(len(pj.Board), len(cells))
		}
		for col, value := range cells {
			if value < int(CellEmpty) || value > int(CellShotHit) {
				return cerr.ErrUnknownCellState(col, row, value)
			}
			decoded.grid[row][col] = CellState(value)
		}
	}

	shipCells := 0
	for _, st := range pj.PlacedShips {
		if decoded.HasPlaced(st) {
			return cerr.ErrCorruptPlayerState(fmt.Sprintf("%s is listed twice", st))
		}
		decoded.placedShips[st] = struct{}{}
		shipCells += st.Size()
	}

	if pj.IsReady != (len(decoded.placedShips) == FleetSize) {
		return cerr.ErrCorruptPlayerState(fmt.Sprintf("is_ready is %t with %d ships placed", pj.IsReady, len(decoded.placedShips)))
	}
	decoded.isReady = pj.IsReady

	if onBoard := decoded.grid.count(CellState.HasShip); onBoard != shipCells {
		return cerr.ErrCorruptPlayerState(fmt.Sprintf("board holds %d ship cells, placed ships need %d", onBoard, shipCells))
	}

	*p = *decoded
	return nil
}
