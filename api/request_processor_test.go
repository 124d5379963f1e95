package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/command"
)

const demoHostFleet = `# fleet from the demo game
B4 Carrier E
C8 Battleship E
E1 Cruiser S
G3 Submarine E
J5 Destroyer S
`

func runProcessor(t *testing.T, input string, optFuncs ...Option) (string, *mb.BattleshipGameManager) {
	t.Helper()
	bgm := mb.NewBattleshipGameManager()
	rp := NewRequestProcessor(bgm, optFuncs...)

	var out bytes.Buffer
	if err := rp.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}
	return out.String(), bgm
}

// assertInOrder checks that every fragment appears in output after the
// previous one.
func assertInOrder(t *testing.T, output string, fragments ...string) {
	t.Helper()
	rest := output
	for _, fragment := range fragments {
		i := strings.Index(rest, fragment)
		if i < 0 {
			t.Fatalf("expected %q in output after previous fragments\noutput:\n%s", fragment, output)
		}
		rest = rest[i+len(fragment):]
	}
}

func TestRunDemoFleet(t *testing.T) {
	input := demoHostFleet + "status\nplayer join\n" + strings.ReplaceAll(demoHostFleet, "#", "# join:")
	output, bgm := runProcessor(t, input)

	assertInOrder(t, output,
		"Carrier placed at B4 heading E",
		" 4  |   | □ | □ | □ | □ | □ |",
		"Destroyer placed at J5 heading S",
		"All ships have been placed! The player is ready!",
		"ready: true remaining: []",
		"ready: false remaining: [Carrier, Battleship, Cruiser, Submarine, Destroyer]",
		"ready to start: false",
		"active player: join",
		"Carrier placed at B4 heading E",
		"All ships have been placed! The player is ready!",
		"Both fleets are in position, the game can start!",
		"host board:",
		"join board:",
		"host board as seen by the opponent:",
	)

	opponent := output[strings.Index(output, "host board as seen by the opponent:"):]
	if strings.ContainsRune(opponent, '□') {
		t.Fatalf("opponent view reveals ships:\n%s", opponent)
	}

	if bgm.GamesCount() != 0 {
		t.Fatalf("expected the game to be terminated\t got %d games", bgm.GamesCount())
	}
}

func TestRunReportsFailures(t *testing.T) {
	input := strings.Join([]string{
		"K1 Carrier E",
		"B4 Frigate E",
		"B4 Carrier e",
		"B4 Carrier EAST",
		"hello",
		"player guest",
		"B4 Carrier E",
		"B5 Battleship N",
		"B4 Carrier S",
		"H1 Battleship E",
	}, "\n")

	output, _ := runProcessor(t, input)

	assertInOrder(t, output,
		`error: Position "K1" is off the board`,
		`error: Unknown ship type "Frigate"`,
		`error: Invalid direction "e". Use 'N', 'E', 'S' or 'W'.`,
		`error: Invalid direction "EAST". Use 'N', 'E', 'S' or 'W'.`,
		"error: invalid command",
		`error: player role must be either host or join, got: "guest"`,
		"Carrier placed at B4 heading E",
		"error: Overlaps another ship!",
		"error: The Carrier has already been placed!",
		"error: Placement out of bounds!",
		"host board:",
	)

	if strings.Count(output, "placed at") != 1 {
		t.Fatalf("expected exactly one accepted placement\noutput:\n%s", output)
	}
}

func TestRunLocalized(t *testing.T) {
	output, _ := runProcessor(t, "K1 Carrier E\nB4 Carrier E\nB4 Carrier E\n", WithLocale("fr-FR"))

	assertInOrder(t, output,
		`error: Position "K1" hors du plateau`,
		"Carrier placé en B4 direction E",
		"error: Le Carrier a déjà été placé !",
	)
}

type testResp struct {
	Code    uint8           `json:"code"`
	Payload json.RawMessage `json:"payload"`
	Error   *mc.RespErr     `json:"error"`
}

func TestRunJSON(t *testing.T) {
	input := strings.Join([]string{
		`{"code":0,"payload":{"position":"B4","ship_type":"Carrier","direction":"E"}}`,
		`{"code":0,"payload":{"position":"B4","ship_type":"Carrier","direction":"E"}}`,
		`{"payload":{}}`,
		`not json`,
		`{"code":42}`,
		`{"code":1,"payload":{"player":"join"}}`,
		`{"code":3}`,
		`{"code":4}`,
		`{"code":0,"payload":{"player":"host","position":"A1","ship_type":"Destroyer","direction":"S"}}`,
	}, "\n")

	output, _ := runProcessor(t, input, WithJSON(true))

	var resps []testResp
	dec := json.NewDecoder(strings.NewReader(output))
	for dec.More() {
		var resp testResp
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decoding output: %v\noutput:\n%s", err, output)
		}
		resps = append(resps, resp)
	}

	expectedCodes := []uint8{
		mc.CodePlaceShip,
		mc.CodePlaceShip,
		mc.CodeSignalAbsent,
		mc.CodeSignalAbsent,
		mc.CodeInvalidSignal,
		mc.CodeSelectPlayer,
		mc.CodeOpponentView,
		mc.CodeStatus,
		mc.CodePlaceShip,
		mc.CodeOwnerView,
		mc.CodeOwnerView,
		mc.CodeOpponentView,
	}
	if len(resps) != len(expectedCodes) {
		t.Fatalf("expected %d responses\t got: %d\noutput:\n%s", len(expectedCodes), len(resps), output)
	}
	for i, resp := range resps {
		if resp.Code != expectedCodes[i] {
			t.Fatalf("response %d: expected code %d\t got: %d", i, expectedCodes[i], resp.Code)
		}
	}

	var placed mc.RespPlaceShip
	if err := json.Unmarshal(resps[0].Payload, &placed); err != nil {
		t.Fatal(err)
	}
	if resps[0].Error != nil || placed.Player != "host" || placed.ShipType != mb.ShipTypeCarrier || placed.IsReady {
		t.Fatalf("unexpected placement response: %+v %+v", placed, resps[0].Error)
	}
	if placed.Board.At(mb.NewCoordinates(1, 3)) != mb.SymbolShip {
		t.Fatal("placement response board is missing the carrier")
	}

	if resps[1].Error == nil || resps[1].Error.Reason != "DuplicateShip" {
		t.Fatalf("expected DuplicateShip\t got: %+v", resps[1].Error)
	}
	for _, i := range []int{2, 3, 4} {
		if resps[i].Error == nil {
			t.Fatalf("response %d: expected an error", i)
		}
	}

	var view mc.RespView
	if err := json.Unmarshal(resps[6].Payload, &view); err != nil {
		t.Fatal(err)
	}
	if view.Player != "join" {
		t.Fatalf("expected the active player's view\t got: %s", view.Player)
	}

	var status mc.RespStatus
	if err := json.Unmarshal(resps[7].Payload, &status); err != nil {
		t.Fatal(err)
	}
	if len(status.Players) != 2 || len(status.Players[0].RemainingShips) != mb.FleetSize-1 || status.ReadyToStart {
		t.Fatalf("unexpected status: %+v", status)
	}

	// an explicit player overrides the active one
	if err := json.Unmarshal(resps[8].Payload, &placed); err != nil {
		t.Fatal(err)
	}
	if resps[8].Error != nil || placed.Player != "host" {
		t.Fatalf("expected host placement\t got: %+v %+v", placed, resps[8].Error)
	}
}

func TestRunPlacementErrorOrder(t *testing.T) {
	lines := []string{
		"B4 Carrier E",
		"B4 Carrier North",
		"Z99 Battleship North",
		"A Battleship NE",
		"A1 Battleship North",
		"A1 Battleship e",
	}

	var input strings.Builder
	for _, line := range lines {
		payload, err := ParseTextCommand(line)
		if err != nil {
			t.Fatalf("%s: %v", line, err)
		}
		input.Write(payload)
		input.WriteByte('\n')
	}

	output, _ := runProcessor(t, input.String(), WithJSON(true))

	tests := []struct {
		line           string
		expectedReason string
		expectedMsg    string
	}{
		{line: lines[1], expectedReason: "DuplicateShip"},
		{line: lines[2], expectedReason: "OutOfBounds"},
		{line: lines[3], expectedReason: "InvalidFormat"},
		{line: lines[4], expectedReason: "InvalidDirection", expectedMsg: `Invalid direction "North". Use 'N', 'E', 'S' or 'W'.`},
		{line: lines[5], expectedReason: "InvalidDirection", expectedMsg: `Invalid direction "e". Use 'N', 'E', 'S' or 'W'.`},
	}

	dec := json.NewDecoder(strings.NewReader(output))
	var first testResp
	if err := dec.Decode(&first); err != nil {
		t.Fatal(err)
	}
	if first.Error != nil {
		t.Fatalf("expected the carrier to be placed\t got: %+v", first.Error)
	}

	for _, test := range tests {
		var resp testResp
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("%s: decoding output: %v", test.line, err)
		}
		if resp.Error == nil || resp.Error.Reason != test.expectedReason {
			t.Fatalf("%s: expected %s\t got: %+v", test.line, test.expectedReason, resp.Error)
		}
		if test.expectedMsg != "" && resp.Error.Message != test.expectedMsg {
			t.Fatalf("%s: expected message %q\t got: %q", test.line, test.expectedMsg, resp.Error.Message)
		}
	}
}

func TestRunRejectsAfterReadyBeforeDirection(t *testing.T) {
	output, _ := runProcessor(t, demoHostFleet+"Z99 Carrier North\n")

	assertInOrder(t, output,
		"All ships have been placed! The player is ready!",
		"error: All ships have already been placed, the player is ready!",
		"host board:",
	)
}

func TestRunRecordsAnalytics(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ipnet := net.IPNet{IP: net.IPv4(10, 0, 0, 7), Mask: net.CIDRMask(32, 32)}
	analytics := sqlc.NewDbManager(sqlc.New(db), ipnet).Analytics

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_server_analytics")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO placement_events")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Carrier", "OutOfBounds", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO placement_events")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Carrier", OutcomeAccepted, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO placement_events")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "Destroyer", "InvalidDirection", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT outcome, COUNT(*) AS count FROM placement_events")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"outcome", "count"}).
			AddRow("OutOfBounds", 1).
			AddRow(OutcomeAccepted, 1).
			AddRow("InvalidDirection", 1))

	// unknown ship names never reach the game, so they are not recorded
	output, _ := runProcessor(t, "K1 Carrier E\nB4 Frigate E\nB4 Carrier E\nA1 Destroyer North\n", WithAnalytics(analytics))

	if !strings.Contains(output, "Carrier placed at B4 heading E") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

var errDbDown = errors.New("connection refused")

func TestRunKeepsGoingWhenAnalyticsFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ipnet := net.IPNet{IP: net.IPv4(10, 0, 0, 7), Mask: net.CIDRMask(32, 32)}
	analytics := sqlc.NewAnalyticsManager(sqlc.New(db), ipnet)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_server_analytics")).
		WillReturnError(errDbDown)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO placement_events")).
		WillReturnError(errDbDown)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT outcome")).
		WillReturnError(errDbDown)

	output, _ := runProcessor(t, "B4 Carrier E\n", WithAnalytics(analytics))

	if !strings.Contains(output, "Carrier placed at B4 heading E") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rp := NewRequestProcessor(mb.NewBattleshipGameManager())
	if err := rp.Run(ctx, strings.NewReader("B4 Carrier E\n"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
