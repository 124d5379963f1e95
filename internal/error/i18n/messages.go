package i18n

import cerr "github.com/saeidalz13/battleship-setup/internal/error"

// Every message either uses an explicit argument index or takes no
// arguments at all; the constructors in internal/error follow the same rule.
var enMessages = map[string]string{
	cerr.PlacementInvalidFormat.String():    "Invalid format %[1]q, use a letter followed by a number (e.g. A6)",
	cerr.PlacementInvalidNumber.String():    "Invalid row number in %[1]q",
	cerr.PlacementOutOfBounds.String():      "Position %[1]q is off the board",
	cerr.KeyShipOutOfBounds:                 "Placement out of bounds!",
	cerr.PlacementInvalidDirection.String(): "Invalid direction %[1]q. Use 'N', 'E', 'S' or 'W'.",
	cerr.PlacementAlreadyReady.String():     "All ships have already been placed, the player is ready!",
	cerr.PlacementDuplicateShip.String():    "The %[1]s has already been placed!",
	cerr.PlacementOverlap.String():          "Overlaps another ship!",
	cerr.PlacementInvalidShipType.String():  "Unknown ship type %[1]q",

	KeyPlayerReady:  "All ships have been placed! The player is ready!",
	KeyShipPlaced:   "%[1]s placed at %[2]s heading %[3]s",
	KeyReadyToStart: "Both fleets are in position, the game can start!",
}

var frMessages = map[string]string{
	cerr.PlacementInvalidFormat.String():    "Format invalide %[1]q, utilisez une lettre suivie d'un chiffre (ex: A6)",
	cerr.PlacementInvalidNumber.String():    "Numéro invalide dans %[1]q",
	cerr.PlacementOutOfBounds.String():      "Position %[1]q hors du plateau",
	cerr.KeyShipOutOfBounds:                 "Placement hors limites !",
	cerr.PlacementInvalidDirection.String(): "Direction invalide %[1]q. Utilisez 'N', 'E', 'S' ou 'W'.",
	cerr.PlacementAlreadyReady.String():     "Tous les navires ont déjà été placés, le joueur est prêt !",
	cerr.PlacementDuplicateShip.String():    "Le %[1]s a déjà été placé !",
	cerr.PlacementOverlap.String():          "Chevauchement avec un autre navire !",
	cerr.PlacementInvalidShipType.String():  "Type de navire inconnu %[1]q",

	KeyPlayerReady:  "Tous les navires ont été placés ! Le joueur est prêt !",
	KeyShipPlaced:   "%[1]s placé en %[2]s direction %[3]s",
	KeyReadyToStart: "Les deux flottes sont en position, la partie peut commencer !",
}
