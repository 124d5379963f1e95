package command

import (
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

type RespPlaceShip struct {
	GameUuid   string       `json:"game_uuid"`
	PlayerUuid string       `json:"player_uuid"`
	Player     string       `json:"player"`
	Position   string       `json:"position"`
	ShipType   mb.ShipType  `json:"ship_type"`
	Direction  string       `json:"direction"`
	IsReady    bool         `json:"is_ready"`
	Board      mb.BoardView `json:"board"`
}

type RespSelectPlayer struct {
	Player     string `json:"player"`
	PlayerUuid string `json:"player_uuid"`
}

type RespView struct {
	Player string       `json:"player"`
	Board  mb.BoardView `json:"board"`
}

type RespPlayerStatus struct {
	Player         string        `json:"player"`
	PlayerUuid     string        `json:"player_uuid"`
	IsReady        bool          `json:"is_ready"`
	RemainingShips []mb.ShipType `json:"remaining_ships"`
}

type RespStatus struct {
	GameUuid     string             `json:"game_uuid"`
	Players      []RespPlayerStatus `json:"players"`
	ReadyToStart bool               `json:"ready_to_start"`
}

type RespPlayerReady struct {
	Player     string `json:"player"`
	PlayerUuid string `json:"player_uuid"`
	Message    string `json:"message"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`

	// Name of the placement failure, e.g. "Overlap", when there is one
	Reason string `json:"reason,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

func (r *RespErr) AddReason(reason string) *RespErr {
	r.Reason = reason
	return r
}
