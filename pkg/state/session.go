package state

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidSessionID indicates a session identifier that does not
// match the required 32-character alphanumeric shape. Malformed
// identifiers are rejected before any state lookup, so they can never
// create a session or collide with a stored key.
var ErrInvalidSessionID = errors.New("invalid session id")

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{32}$`)

// ValidateSessionID checks the token against the required shape.
func ValidateSessionID(sessionID string) error {
	if !sessionIDPattern.MatchString(sessionID) {
		return ErrInvalidSessionID
	}
	return nil
}

// NewSessionID generates a fresh session identifier. A UUID with the
// hyphens stripped is exactly 32 hex characters, which satisfies the
// alphanumeric shape.
func NewSessionID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
