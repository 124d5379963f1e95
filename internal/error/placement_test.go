package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestPlacementErr(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode PlacementCode
		expectedKey  string
		expectedArgs int
	}{
		{name: "format", err: ErrInvalidFormat("A"), expectedCode: PlacementInvalidFormat, expectedKey: "InvalidFormat", expectedArgs: 1},
		{name: "number", err: ErrInvalidNumber("AB"), expectedCode: PlacementInvalidNumber, expectedKey: "InvalidNumber", expectedArgs: 1},
		{name: "position bounds", err: ErrPositionOutOfBounds("K1"), expectedCode: PlacementOutOfBounds, expectedKey: "OutOfBounds", expectedArgs: 1},
		{name: "ship bounds", err: ErrShipOutOfBounds(10, 0), expectedCode: PlacementOutOfBounds, expectedKey: KeyShipOutOfBounds},
		{name: "direction", err: ErrInvalidDirection("x"), expectedCode: PlacementInvalidDirection, expectedKey: "InvalidDirection", expectedArgs: 1},
		{name: "ready", err: ErrAlreadyReady(), expectedCode: PlacementAlreadyReady, expectedKey: "AlreadyReady"},
		{name: "duplicate", err: ErrDuplicateShip("Carrier"), expectedCode: PlacementDuplicateShip, expectedKey: "DuplicateShip", expectedArgs: 1},
		{name: "overlap", err: ErrShipOverlap(3, 3), expectedCode: PlacementOverlap, expectedKey: "Overlap"},
		{name: "ship type", err: ErrInvalidShipType("Frigate"), expectedCode: PlacementInvalidShipType, expectedKey: "InvalidShipType", expectedArgs: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var p PlacementErr
			if !errors.As(test.err, &p) {
				t.Fatalf("expected PlacementErr\t got: %T", test.err)
			}
			if p.Code() != test.expectedCode {
				t.Fatalf("expected code: %s\t got: %s", test.expectedCode, p.Code())
			}
			if p.Key() != test.expectedKey {
				t.Fatalf("expected key: %s\t got: %s", test.expectedKey, p.Key())
			}
			if len(p.Args()) != test.expectedArgs {
				t.Fatalf("expected %d args\t got: %v", test.expectedArgs, p.Args())
			}
		})
	}
}

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("placing carrier: %w", ErrShipOverlap(1, 1))

	code, ok := CodeOf(err)
	if !ok || code != PlacementOverlap {
		t.Fatalf("expected Overlap through wrapping\t got: %s, %t", code, ok)
	}
	if !errors.Is(err, NewPlacementErr(PlacementOverlap)) {
		t.Fatal("errors.Is must match on code")
	}
	if errors.Is(err, NewPlacementErr(PlacementOutOfBounds)) {
		t.Fatal("errors.Is must not match a different code")
	}

	if _, ok := CodeOf(ErrGameNotExists("abc123")); ok {
		t.Fatal("a non placement error has no code")
	}
	if _, ok := CodeOf(nil); ok {
		t.Fatal("nil has no code")
	}
}

func TestPlacementErrMessage(t *testing.T) {
	if got := NewPlacementErr(PlacementAlreadyReady).Error(); got != "placement error - AlreadyReady" {
		t.Fatalf("unexpected message: %s", got)
	}
	if got := ErrDuplicateShip("Cruiser").Error(); got != "placement error - DuplicateShip: Cruiser is already placed" {
		t.Fatalf("unexpected message: %s", got)
	}
	if got := PlacementCode(99).String(); got != "PlacementCode(99)" {
		t.Fatalf("unexpected code name: %s", got)
	}
}
