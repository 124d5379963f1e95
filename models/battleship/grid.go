package battleship

import (
	"strconv"
	"unicode/utf8"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

// Side length of every board.
const GridSize = 10

// Bit 0 marks a ship, bit 1 marks a resolved shot.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShipIntact
	CellShotMiss
	CellShotHit
)

func (c CellState) IsValid() bool {
	return c <= CellShotHit
}

func (c CellState) HasShip() bool {
	return c == CellShipIntact || c == CellShotHit
}

// Grid is indexed [row][column].
type Grid [GridSize][GridSize]CellState

// Cell returns the state at c. The caller guarantees c is in bounds.
func (g *Grid) Cell(c Coordinates) CellState {
	return g[c.Y][c.X]
}

func (g *Grid) set(c Coordinates, state CellState) {
	g[c.Y][c.X] = state
}

func (g *Grid) count(pred func(CellState) bool) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if pred(cell) {
				n++
			}
		}
	}
	return n
}

// X is the zero-based column, Y the zero-based row.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// String renders the coordinates the way players type them, e.g. "B4".
// Out of bounds coordinates fall back to "(x,y)".
func (c Coordinates) String() string {
	if !c.InBounds() {
		return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
	}
	return columnLabel(c.X) + strconv.Itoa(c.Y+1)
}

func columnLabel(col int) string {
	return string(rune('A' + col))
}

// ParsePosition converts "A6" style text into zero-based coordinates.
// The column letter is case-insensitive and the row is 1-based.
func ParsePosition(pos string) (Coordinates, error) {
	if utf8.RuneCountInString(pos) < 2 {
		return Coordinates{}, cerr.ErrInvalidFormat(pos)
	}

	letter, size := utf8.DecodeRuneInString(pos)
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}

	// The row is validated before the column so that "Z?" reports the
	// bad number rather than the bad letter.
	row, err := strconv.ParseUint(pos[size:], 10, 64)
	if err != nil {
		return Coordinates{}, cerr.ErrInvalidNumber(pos)
	}

	col := int(letter) - 'A'
	if col < 0 || col >= GridSize || row == 0 || row > GridSize {
		return Coordinates{}, cerr.ErrPositionOutOfBounds(pos)
	}

	return NewCoordinates(col, int(row)-1), nil
}

type Direction rune

const (
	DirectionNorth Direction = 'N'
	DirectionEast  Direction = 'E'
	DirectionSouth Direction = 'S'
	DirectionWest  Direction = 'W'
)

// Step returns the unit vector for d. ok is false for anything that is
// not one of the four upper-case compass letters.
func (d Direction) Step() (dx, dy int, ok bool) {
	switch d {
	case DirectionNorth:
		return 0, -1, true
	case DirectionEast:
		return 1, 0, true
	case DirectionSouth:
		return 0, 1, true
	case DirectionWest:
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

// String is empty for the zero Direction.
func (d Direction) String() string {
	if d == 0 {
		return ""
	}
	return string(rune(d))
}

// ParseDirection takes a single-rune text as is, without changing its
// case. Anything else yields the zero Direction which placement rejects.
func ParseDirection(text string) Direction {
	if utf8.RuneCountInString(text) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(text)
	return Direction(r)
}
