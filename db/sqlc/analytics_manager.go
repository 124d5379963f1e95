package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager records setup telemetry for the server it runs on.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

type PlacementRecord struct {
	GameUuid   string
	PlayerUuid string
	ShipType   string
	Outcome    string

	// JSON encoding of the request, nil if there is none
	Request []byte
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context) error {
	return a.queries.IncrementGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) RecordPlacement(ctx context.Context, record PlacementRecord) (int64, error) {
	return a.queries.InsertPlacementEvent(ctx, InsertPlacementEventParams{
		ServerIp:   a.serverIp,
		GameUuid:   record.GameUuid,
		PlayerUuid: record.PlayerUuid,
		ShipType:   record.ShipType,
		Outcome:    record.Outcome,
		Request: pqtype.NullRawMessage{
			RawMessage: record.Request,
			Valid:      record.Request != nil,
		},
	})
}

// PlacementOutcomes counts the placement attempts of one game per outcome.
func (a *AnalyticsManager) PlacementOutcomes(ctx context.Context, gameUuid string) (map[string]int64, error) {
	rows, err := a.queries.CountPlacementEventsByOutcome(ctx, gameUuid)
	if err != nil {
		return nil, err
	}

	outcomes := make(map[string]int64, len(rows))
	for _, row := range rows {
		outcomes[row.Outcome] = row.Count
	}
	return outcomes, nil
}
