package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	"github.com/saeidalz13/battleship-setup/internal/error/i18n"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/command"
)

// Every incoming line is turned into a Request carrying a JSON encoded
// mc.Message. The handlers decode the payload they expect.
type Request struct {
	payload []byte
	locale  string
}

func NewRequest(locale string, payload ...[]byte) Request {
	req := Request{locale: locale}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) respErr(err error) *mc.RespErr {
	respErr := mc.NewRespErr(err.Error(), i18n.Localize(err, r.locale))
	if code, ok := cerr.CodeOf(err); ok {
		respErr.AddReason(code.String())
	}
	return respErr
}

// resolveRole picks the player named in the request, or the active one.
func resolveRole(player string, active mb.PlayerRole) (mb.PlayerRole, error) {
	if player == "" {
		return active, nil
	}
	return mb.ParsePlayerRole(player)
}

// HandlePlaceShip places one ship for the requested player. Ship names
// that cannot be decoded are rejected here and never reach the game.
func (r Request) HandlePlaceShip(game *mb.Game, active mb.PlayerRole) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	role, err := resolveRole(req.Payload.Player, active)
	if err != nil {
		resp.Error = r.respErr(err)
		return resp
	}

	shipType, err := mb.ParseShipType(req.Payload.ShipType)
	if err != nil {
		resp.Error = r.respErr(err)
		return resp
	}

	// an undecodable direction is left for the game to reject, after the
	// readiness, duplicate and position checks
	direction := mb.ParseDirection(req.Payload.Direction)
	if err := game.PlaceShip(role, req.Payload.Position, shipType, direction); err != nil {
		if direction == 0 && cerr.IsPlacementCode(err, cerr.PlacementInvalidDirection) {
			err = cerr.ErrInvalidDirection(req.Payload.Direction)
		}
		resp.Error = r.respErr(err)
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{
		GameUuid:   game.Uuid(),
		PlayerUuid: game.PlayerUuid(role),
		Player:     role.String(),
		Position:   req.Payload.Position,
		ShipType:   shipType,
		Direction:  direction.String(),
		IsReady:    game.IsReady(role),
		Board:      game.OwnerView(role),
	})
	return resp
}

func (r Request) HandleSelectPlayer(game *mb.Game) (mb.PlayerRole, mc.Message[mc.RespSelectPlayer]) {
	resp := mc.NewMessage[mc.RespSelectPlayer](mc.CodeSelectPlayer)

	var req mc.Message[mc.ReqSelectPlayer]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "")
		return 0, resp
	}

	role, err := mb.ParsePlayerRole(req.Payload.Player)
	if err != nil {
		resp.Error = r.respErr(err)
		return 0, resp
	}

	resp.AddPayload(mc.RespSelectPlayer{Player: role.String(), PlayerUuid: game.PlayerUuid(role)})
	return role, resp
}

// HandleView renders the owner or opponent view depending on the code
// of the request. A request without payload shows the active player.
func (r Request) HandleView(game *mb.Game, active mb.PlayerRole, code uint8) mc.Message[mc.RespView] {
	resp := mc.NewMessage[mc.RespView](code)

	var req mc.Message[mc.ReqView]
	if r.payload != nil {
		if err := json.Unmarshal(r.payload, &req); err != nil {
			resp.AddError(err.Error(), "")
			return resp
		}
	}

	role, err := resolveRole(req.Payload.Player, active)
	if err != nil {
		resp.Error = r.respErr(err)
		return resp
	}

	board := game.OwnerView(role)
	if code == mc.CodeOpponentView {
		board = game.OpponentView(role)
	}
	resp.AddPayload(mc.RespView{Player: role.String(), Board: board})
	return resp
}

func (r Request) HandleStatus(game *mb.Game) mc.Message[mc.RespStatus] {
	resp := mc.NewMessage[mc.RespStatus](mc.CodeStatus)

	status := mc.RespStatus{
		GameUuid:     game.Uuid(),
		ReadyToStart: game.IsReadyToStart(),
	}
	for _, role := range []mb.PlayerRole{mb.RoleHost, mb.RoleJoin} {
		status.Players = append(status.Players, mc.RespPlayerStatus{
			Player:         role.String(),
			PlayerUuid:     game.PlayerUuid(role),
			IsReady:        game.IsReady(role),
			RemainingShips: game.RemainingShips(role),
		})
	}

	resp.AddPayload(status)
	return resp
}
