package battleship

import (
	"fmt"
	"strconv"
	"strings"
)

type Symbol uint8

const (
	SymbolBlank Symbol = iota
	SymbolShip
	SymbolMiss
	SymbolHit
)

var symbolNames = [...]string{
	SymbolBlank: "blank",
	SymbolShip:  "ship",
	SymbolMiss:  "miss",
	SymbolHit:   "hit",
}

var symbolGlyphs = [...]rune{
	SymbolBlank: ' ',
	SymbolShip:  '□',
	SymbolMiss:  '○',
	SymbolHit:   '▣',
}

func (s Symbol) String() string {
	if int(s) >= len(symbolNames) {
		return "unknown"
	}
	return symbolNames[s]
}

func (s Symbol) Glyph() rune {
	if int(s) >= len(symbolGlyphs) {
		return '?'
	}
	return symbolGlyphs[s]
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	for i, name := range symbolNames {
		if name == string(text) {
			*s = Symbol(i)
			return nil
		}
	}
	return fmt.Errorf("unknown board symbol: %q", text)
}

type ViewRow struct {
	Label string   `json:"label"`
	Cells []Symbol `json:"cells"`
}

// BoardView is a rendered projection of a grid, row-major, with column
// letters and 1-based row labels.
type BoardView struct {
	Columns []string  `json:"columns"`
	Rows    []ViewRow `json:"rows"`
}

func ownerSymbol(c CellState) Symbol {
	switch c {
	case CellShipIntact:
		return SymbolShip
	case CellShotMiss:
		return SymbolMiss
	case CellShotHit:
		return SymbolHit
	default:
		return SymbolBlank
	}
}

// Unshot ships stay hidden from the opponent.
func opponentSymbol(c CellState) Symbol {
	switch c {
	case CellShotMiss:
		return SymbolMiss
	case CellShotHit:
		return SymbolHit
	default:
		return SymbolBlank
	}
}

func newBoardView(grid *Grid, symbolOf func(CellState) Symbol) BoardView {
	view := BoardView{
		Columns: make([]string, GridSize),
		Rows:    make([]ViewRow, GridSize),
	}
	for col := 0; col < GridSize; col++ {
		view.Columns[col] = columnLabel(col)
	}

	for row := 0; row < GridSize; row++ {
		cells := make([]Symbol, GridSize)
		for col := 0; col < GridSize; col++ {
			cells[col] = symbolOf(grid[row][col])
		}
		view.Rows[row] = ViewRow{Label: strconv.Itoa(row + 1), Cells: cells}
	}
	return view
}

// OwnerView reveals the player's ships as well as the shots taken.
func (p *Player) OwnerView() BoardView {
	return newBoardView(&p.grid, ownerSymbol)
}

// OpponentView only shows resolved shots.
func (p *Player) OpponentView() BoardView {
	return newBoardView(&p.grid, opponentSymbol)
}

// At returns the symbol at c, or SymbolBlank when out of range.
func (v BoardView) At(c Coordinates) Symbol {
	if c.Y < 0 || c.Y >= len(v.Rows) || c.X < 0 || c.X >= len(v.Rows[c.Y].Cells) {
		return SymbolBlank
	}
	return v.Rows[c.Y].Cells[c.X]
}

// String draws the view as a boxed grid:
//
//	      A   B   C
//	    +---+---+---+
//	 1  | □ |   | ○ |
//	    +---+---+---+
func (v BoardView) String() string {
	var sb strings.Builder
	separator := "    " + strings.Repeat("+---", len(v.Columns)) + "+\n"

	sb.WriteString("    ")
	for _, col := range v.Columns {
		sb.WriteString("  " + col + " ")
	}
	sb.WriteString("\n")

	for _, row := range v.Rows {
		sb.WriteString(separator)

		label := row.Label
		if len(label) < 2 {
			label = " " + label
		}
		sb.WriteString(label + "  ")

		for _, cell := range row.Cells {
			sb.WriteString("| ")
			sb.WriteRune(cell.Glyph())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator)

	return sb.String()
}
