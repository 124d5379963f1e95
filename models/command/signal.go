package command

const (
	CodePlaceShip uint8 = iota
	CodeSelectPlayer
	CodeOwnerView
	CodeOpponentView
	CodeStatus

	// Sent once a player's fifth ship is placed
	CodePlayerReady

	// Sent when both fleets are complete
	CodeReadyToStart

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code *uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: &code}
}
