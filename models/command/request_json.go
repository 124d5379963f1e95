package command

// An empty Player targets the active player of the run.
type ReqPlaceShip struct {
	Player    string `json:"player,omitempty"`
	Position  string `json:"position"`
	ShipType  string `json:"ship_type"`
	Direction string `json:"direction"`
}

type ReqSelectPlayer struct {
	Player string `json:"player"`
}

type ReqView struct {
	Player string `json:"player,omitempty"`
}
