package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type ShipType uint8

const (
	ShipTypeCarrier ShipType = iota
	ShipTypeBattleship
	ShipTypeCruiser
	ShipTypeSubmarine
	ShipTypeDestroyer
)

// Number of distinct ship kinds a player has to place before being ready.
const FleetSize = 5

var shipSizes = [FleetSize]int{
	ShipTypeCarrier:    5,
	ShipTypeBattleship: 4,
	ShipTypeCruiser:    3,
	ShipTypeSubmarine:  3,
	ShipTypeDestroyer:  2,
}

var shipNames = [FleetSize]string{
	ShipTypeCarrier:    "Carrier",
	ShipTypeBattleship: "Battleship",
	ShipTypeCruiser:    "Cruiser",
	ShipTypeSubmarine:  "Submarine",
	ShipTypeDestroyer:  "Destroyer",
}

// AllShipTypes returns the catalog in its canonical order.
func AllShipTypes() []ShipType {
	return []ShipType{
		ShipTypeCarrier,
		ShipTypeBattleship,
		ShipTypeCruiser,
		ShipTypeSubmarine,
		ShipTypeDestroyer,
	}
}

func (st ShipType) IsValid() bool {
	return st < FleetSize
}

// Number of consecutive cells the ship occupies. Zero for a value
// outside the catalog.
func (st ShipType) Size() int {
	if !st.IsValid() {
		return 0
	}
	return shipSizes[st]
}

func (st ShipType) String() string {
	if !st.IsValid() {
		return "Unknown"
	}
	return shipNames[st]
}

// ParseShipType accepts the catalog name in any letter case.
func ParseShipType(name string) (ShipType, error) {
	for _, st := range AllShipTypes() {
		if strings.EqualFold(name, shipNames[st]) {
			return st, nil
		}
	}
	return 0, cerr.ErrInvalidShipType(name)
}

func (st ShipType) MarshalText() ([]byte, error) {
	if !st.IsValid() {
		return nil, cerr.ErrInvalidShipType(st.String())
	}
	return []byte(shipNames[st]), nil
}

func (st *ShipType) UnmarshalText(text []byte) error {
	parsed, err := ParseShipType(string(text))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}
