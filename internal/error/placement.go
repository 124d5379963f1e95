package error

import (
	"errors"
	"fmt"
)

type PlacementCode uint8

const (
	PlacementInvalidFormat PlacementCode = iota + 1
	PlacementInvalidNumber
	PlacementOutOfBounds
	PlacementInvalidDirection
	PlacementAlreadyReady
	PlacementDuplicateShip
	PlacementOverlap
	PlacementInvalidShipType
)

const KeyShipOutOfBounds = "OutOfBounds.Ship"

var placementCodeNames = map[PlacementCode]string{
	PlacementInvalidFormat:    "InvalidFormat",
	PlacementInvalidNumber:    "InvalidNumber",
	PlacementOutOfBounds:      "OutOfBounds",
	PlacementInvalidDirection: "InvalidDirection",
	PlacementAlreadyReady:     "AlreadyReady",
	PlacementDuplicateShip:    "DuplicateShip",
	PlacementOverlap:          "Overlap",
	PlacementInvalidShipType:  "InvalidShipType",
}

func (c PlacementCode) String() string {
	name, prs := placementCodeNames[c]
	if !prs {
		return fmt.Sprintf("PlacementCode(%d)", uint8(c))
	}
	return name
}

// PlacementErr is returned by every rejected position parse or ship
// placement. Args carries the values the localized message is built from.
type PlacementErr struct {
	code PlacementCode
	key  string
	desc string
	args []interface{}
}

func NewPlacementErr(code PlacementCode) PlacementErr {
	return PlacementErr{code: code}
}

func (p PlacementErr) AddDesc(desc string) PlacementErr {
	p.desc = desc
	return p
}

func (p PlacementErr) AddArgs(args ...interface{}) PlacementErr {
	p.args = args
	return p
}

func (p PlacementErr) Error() string {
	if p.desc == "" {
		return fmt.Sprintf("placement error - %s", p.code)
	}
	return fmt.Sprintf("placement error - %s: %s", p.code, p.desc)
}

func (p PlacementErr) Code() PlacementCode {
	return p.code
}

// Key names the message catalog entry for this failure. It defaults to
// the code name; variants of one code get a dotted suffix.
func (p PlacementErr) Key() string {
	if p.key != "" {
		return p.key
	}
	return p.code.String()
}

func (p PlacementErr) withKey(key string) PlacementErr {
	p.key = key
	return p
}

func (p PlacementErr) Args() []interface{} {
	return p.args
}

// Is matches any PlacementErr carrying the same code, so callers can write
// errors.Is(err, cerr.NewPlacementErr(cerr.PlacementOverlap)).
func (p PlacementErr) Is(target error) bool {
	t, ok := target.(PlacementErr)
	return ok && t.code == p.code
}

// CodeOf extracts the placement code from err. The second value is false
// if err is not a placement failure.
func CodeOf(err error) (PlacementCode, bool) {
	var p PlacementErr
	if errors.As(err, &p) {
		return p.code, true
	}
	return 0, false
}

func IsPlacementCode(err error, code PlacementCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

func ErrInvalidFormat(pos string) error {
	return NewPlacementErr(PlacementInvalidFormat).
		AddDesc(fmt.Sprintf("use a letter followed by a number (e.g. A6), got: %q", pos)).
		AddArgs(pos)
}

func ErrInvalidNumber(pos string) error {
	return NewPlacementErr(PlacementInvalidNumber).
		AddDesc(fmt.Sprintf("row is not a number: %q", pos)).
		AddArgs(pos)
}

func ErrPositionOutOfBounds(pos string) error {
	return NewPlacementErr(PlacementOutOfBounds).
		AddDesc(fmt.Sprintf("position is off the board: %q", pos)).
		AddArgs(pos)
}

func ErrShipOutOfBounds(x, y int) error {
	return NewPlacementErr(PlacementOutOfBounds).
		withKey(KeyShipOutOfBounds).
		AddDesc(fmt.Sprintf("ship would leave the board\tx: %d\ty: %d", x, y))
}

func ErrInvalidDirection(direction string) error {
	return NewPlacementErr(PlacementInvalidDirection).
		AddDesc(fmt.Sprintf("use 'N', 'E', 'S' or 'W', got: %q", direction)).
		AddArgs(direction)
}

func ErrAlreadyReady() error {
	return NewPlacementErr(PlacementAlreadyReady).
		AddDesc("all ships are already placed, player is ready")
}

func ErrDuplicateShip(shipName string) error {
	return NewPlacementErr(PlacementDuplicateShip).
		AddDesc(fmt.Sprintf("%s is already placed", shipName)).
		AddArgs(shipName)
}

func ErrShipOverlap(x, y int) error {
	return NewPlacementErr(PlacementOverlap).
		AddDesc(fmt.Sprintf("overlaps another ship\tx: %d\ty: %d", x, y))
}

func ErrInvalidShipType(shipName string) error {
	return NewPlacementErr(PlacementInvalidShipType).
		AddDesc(fmt.Sprintf("unknown ship type: %q", shipName)).
		AddArgs(shipName)
}
