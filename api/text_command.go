package api

import (
	"encoding/json"
	"strings"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mc "github.com/saeidalz13/battleship-setup/models/command"
)

func encodeMessage[T any](code uint8, payload T) ([]byte, error) {
	msg := mc.NewMessage[T](code)
	msg.AddPayload(payload)
	return json.Marshal(msg)
}

// ParseTextCommand translates one line of the text grammar into the JSON
// message the handlers expect:
//
//	B4 Carrier E
//	player join
//	board [host|join]
//	opponent [host|join]
//	status
func ParseTextCommand(line string) ([]byte, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, cerr.ErrInvalidCommand(line)
	}

	switch strings.ToLower(fields[0]) {
	case "player":
		if len(fields) != 2 {
			return nil, cerr.ErrInvalidCommand(line)
		}
		return encodeMessage(mc.CodeSelectPlayer, mc.ReqSelectPlayer{Player: fields[1]})

	case "board", "opponent":
		if len(fields) > 2 {
			return nil, cerr.ErrInvalidCommand(line)
		}
		var req mc.ReqView
		if len(fields) == 2 {
			req.Player = fields[1]
		}
		code := mc.CodeOwnerView
		if strings.EqualFold(fields[0], "opponent") {
			code = mc.CodeOpponentView
		}
		return encodeMessage(code, req)

	case "status":
		if len(fields) != 1 {
			return nil, cerr.ErrInvalidCommand(line)
		}
		return encodeMessage(mc.CodeStatus, mc.NoPayload(false))
	}

	if len(fields) != 3 {
		return nil, cerr.ErrInvalidCommand(line)
	}
	return encodeMessage(mc.CodePlaceShip, mc.ReqPlaceShip{
		Position:  fields[0],
		ShipType:  fields[1],
		Direction: fields[2],
	})
}
