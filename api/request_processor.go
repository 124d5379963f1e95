package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/saeidalz13/battleship-setup/db/sqlc"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	"github.com/saeidalz13/battleship-setup/internal/error/i18n"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/command"
)

// Outcome recorded for an accepted placement. Rejections record the
// placement code name.
const OutcomeAccepted = "ok"

// RequestProcessor runs one fleet setup game from a stream of commands.
// It is not safe for concurrent use.
type RequestProcessor struct {
	gameManager mb.GameManager
	analytics   *sqlc.AnalyticsManager
	locale      string
	jsonMode    bool

	w             io.Writer
	ctx           context.Context
	announcedGame bool
}

var _ mb.PlacementObserver = (*RequestProcessor)(nil)

type Option func(*RequestProcessor)

// WithAnalytics records placement attempts. Without it analytics is off.
func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(rp *RequestProcessor) {
		rp.analytics = analytics
	}
}

func WithLocale(locale string) Option {
	return func(rp *RequestProcessor) {
		rp.locale = locale
	}
}

// WithJSON switches input and output to one mc.Message per line.
func WithJSON(enabled bool) Option {
	return func(rp *RequestProcessor) {
		rp.jsonMode = enabled
	}
}

func NewRequestProcessor(gameManager mb.GameManager, optFuncs ...Option) *RequestProcessor {
	rp := &RequestProcessor{
		gameManager: gameManager,
		locale:      i18n.DefaultLocale,
	}
	for _, opt := range optFuncs {
		opt(rp)
	}
	return rp
}

// Run creates a game, applies every command read from r to it and writes
// the responses to w. Failed commands are reported and never stop the
// run. At the end of input both fleets are printed.
func (rp *RequestProcessor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	rp.w = w
	rp.ctx = ctx
	rp.announcedGame = false

	game := rp.gameManager.CreateGame()
	defer rp.gameManager.TerminateGame(game.Uuid())
	game.AddObserver(rp)
	rp.recordGameCreated()

	log.Printf("game created\tuuid: %s\thost: %s\tjoin: %s\n", game.Uuid(), game.PlayerUuid(mb.RoleHost), game.PlayerUuid(mb.RoleJoin))

	active := mb.RoleHost
	scanner := bufio.NewScanner(r)

sessionLoop:
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue sessionLoop
		}

		payload := []byte(line)
		if !rp.jsonMode {
			var err error
			if payload, err = ParseTextCommand(line); err != nil {
				if err := rp.writeText("error: " + i18n.Localize(err, rp.locale)); err != nil {
					return err
				}
				continue sessionLoop
			}
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := rp.writeMessage(msg, msg.Error.ErrorDetails); err != nil {
				return err
			}
			continue sessionLoop
		}

		req := NewRequest(rp.locale, payload)
		switch *signal.Code {
		case mc.CodePlaceShip:
			respMsg := req.HandlePlaceShip(game, active)

			// On success the text rendering comes from OnPlacement
			text := ""
			if respMsg.Error != nil {
				text = "error: " + respMsg.Error.Message
			}
			if err := rp.writeMessage(respMsg, text); err != nil {
				return err
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			// Placing while ready is rejected, so a ready player here has
			// just placed the last ship
			if respMsg.Payload.IsReady {
				readyMsg := mc.NewMessage[mc.RespPlayerReady](mc.CodePlayerReady)
				readyMsg.AddPayload(mc.RespPlayerReady{
					Player:     respMsg.Payload.Player,
					PlayerUuid: respMsg.Payload.PlayerUuid,
					Message:    i18n.Message(rp.locale, i18n.KeyPlayerReady),
				})
				if err := rp.writeMessage(readyMsg, readyMsg.Payload.Message); err != nil {
					return err
				}
			}

			if game.IsReadyToStart() && !rp.announcedGame {
				rp.announcedGame = true
				readyMsg := mc.NewMessage[mc.NoPayload](mc.CodeReadyToStart)
				if err := rp.writeMessage(readyMsg, i18n.Message(rp.locale, i18n.KeyReadyToStart)); err != nil {
					return err
				}
			}

		case mc.CodeSelectPlayer:
			role, respMsg := req.HandleSelectPlayer(game)
			text := fmt.Sprintf("active player: %s (%s)", respMsg.Payload.Player, respMsg.Payload.PlayerUuid)
			if respMsg.Error != nil {
				text = "error: " + respMsg.Error.Message
			} else {
				active = role
			}
			if err := rp.writeMessage(respMsg, text); err != nil {
				return err
			}

		case mc.CodeOwnerView, mc.CodeOpponentView:
			respMsg := req.HandleView(game, active, *signal.Code)
			if err := rp.writeMessage(respMsg, renderView(respMsg)); err != nil {
				return err
			}

		case mc.CodeStatus:
			respMsg := req.HandleStatus(game)
			if err := rp.writeMessage(respMsg, renderStatus(respMsg.Payload)); err != nil {
				return err
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.writeMessage(respInvalidSignal, "error: "+respInvalidSignal.Error.Message); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	rp.logPlacementOutcomes(game)
	return rp.writeFinalBoards(game)
}

// OnPlacement records every attempt and, in text mode, renders the
// board of an accepted placement.
func (rp *RequestProcessor) OnPlacement(game *mb.Game, event mb.PlacementEvent) {
	rp.recordPlacement(event)

	if event.Err != nil {
		return
	}
	if event.BecameReady {
		log.Printf("player ready\tgame: %s\tplayer: %s\n", event.GameUuid, event.PlayerUuid)
	}

	if rp.jsonMode {
		return
	}
	placed := i18n.Message(rp.locale, i18n.KeyShipPlaced, event.ShipType.String(), strings.ToUpper(event.Position), event.Direction.String())
	if err := rp.writeText(placed + "\n" + game.OwnerView(event.Role).String()); err != nil {
		log.Println(err)
	}
}

func (rp *RequestProcessor) writeFinalBoards(game *mb.Game) error {
	finalViews := []struct {
		role mb.PlayerRole
		code uint8
	}{
		{role: mb.RoleHost, code: mc.CodeOwnerView},
		{role: mb.RoleJoin, code: mc.CodeOwnerView},
		{role: mb.RoleHost, code: mc.CodeOpponentView},
	}

	for _, fv := range finalViews {
		respMsg := NewRequest(rp.locale).HandleView(game, fv.role, fv.code)
		if err := rp.writeMessage(respMsg, renderView(respMsg)); err != nil {
			return err
		}
	}
	return nil
}

func (rp *RequestProcessor) writeText(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(rp.w, text)
	return err
}

// writeMessage writes msg as a JSON line in JSON mode and text otherwise.
// Empty text writes nothing.
func (rp *RequestProcessor) writeMessage(msg interface{}, text string) error {
	if rp.jsonMode {
		return json.NewEncoder(rp.w).Encode(msg)
	}
	if text == "" {
		return nil
	}
	return rp.writeText(text)
}

func renderView(respMsg mc.Message[mc.RespView]) string {
	if respMsg.Error != nil {
		return "error: " + respMsg.Error.Message
	}

	title := respMsg.Payload.Player + " board"
	if respMsg.Code == mc.CodeOpponentView {
		title = respMsg.Payload.Player + " board as seen by the opponent"
	}
	return title + ":\n" + respMsg.Payload.Board.String()
}

func renderStatus(status mc.RespStatus) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "game %s\n", status.GameUuid)
	for _, player := range status.Players {
		remaining := make([]string, len(player.RemainingShips))
		for i, st := range player.RemainingShips {
			remaining[i] = st.String()
		}
		fmt.Fprintf(&sb, "%s (%s) ready: %t remaining: [%s]\n", player.Player, player.PlayerUuid, player.IsReady, strings.Join(remaining, ", "))
	}
	fmt.Fprintf(&sb, "ready to start: %t", status.ReadyToStart)
	return sb.String()
}

func (rp *RequestProcessor) recordGameCreated() {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(rp.ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := rp.analytics.IncrementGamesCreatedCount(ctx); err != nil {
		// for now not stopping the game for it
		log.Println(err)
	}
}

func (rp *RequestProcessor) recordPlacement(event mb.PlacementEvent) {
	if rp.analytics == nil {
		return
	}

	outcome := OutcomeAccepted
	if event.Err != nil {
		code, ok := cerr.CodeOf(event.Err)
		if !ok {
			log.Println("unexpected placement failure:", event.Err)
			return
		}
		outcome = code.String()
	}

	request, err := json.Marshal(mc.ReqPlaceShip{
		Player:    event.Role.String(),
		Position:  event.Position,
		ShipType:  event.ShipType.String(),
		Direction: event.Direction.String(),
	})
	if err != nil {
		log.Println(err)
		request = nil
	}

	ctx, cancel := context.WithTimeout(rp.ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	if _, err := rp.analytics.RecordPlacement(ctx, sqlc.PlacementRecord{
		GameUuid:   event.GameUuid,
		PlayerUuid: event.PlayerUuid,
		ShipType:   event.ShipType.String(),
		Outcome:    outcome,
		Request:    request,
	}); err != nil {
		log.Println(err)
	}
}

func (rp *RequestProcessor) logPlacementOutcomes(game *mb.Game) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(rp.ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	outcomes, err := rp.analytics.PlacementOutcomes(ctx, game.Uuid())
	if err != nil {
		log.Println(err)
		return
	}
	log.Printf("placement outcomes\tgame: %s\t%v\n", game.Uuid(), outcomes)
}
