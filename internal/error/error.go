package error

import "fmt"

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrPlayerNotExist(playerUuid string) error {
	return fmt.Errorf("player with this uuid does not exist, uuid: %s", playerUuid)
}

func ErrInvalidPlayerRole(role string) error {
	return fmt.Errorf("player role must be either host or join, got: %q", role)
}

func ErrInvalidCommand(line string) error {
	return fmt.Errorf("invalid command, expected '<position> <ship> <direction>', 'player', 'board', 'opponent' or 'status':\t%q", line)
}

func ErrCorruptPlayerState(reason string) error {
	return fmt.Errorf("encoded player state is corrupt: %s", reason)
}

func ErrCorruptGridDimensions(rows, cols int) error {
	return fmt.Errorf("encoded grid must be 10x10\trows: %d\tcols: %d", rows, cols)
}

func ErrUnknownCellState(x, y, state int) error {
	return fmt.Errorf("unknown cell state in encoded grid\tx: %d\ty: %d\tstate: %d", x, y, state)
}
