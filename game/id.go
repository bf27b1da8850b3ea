package game

import "github.com/google/uuid"

// newGameID returns a random (version 4) UUID string. It is assigned once,
// when a game is first created, and persisted with the game.
func newGameID() string {
	return uuid.NewString()
}
