package app

import "github.com/google/uuid"

// newSessionID returns a random UUIDv4 used as the game key and cookie value.
func newSessionID() string {
	return uuid.NewString()
}

// validSessionID rejects ids that could not have come from newSessionID, so
// arbitrary path segments never reach the session map.
func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
