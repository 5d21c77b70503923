package session

import (
	"sync"
	"time"

	"github.com/tibino/marta/reservation"
)

// Session holds the conversational state of a single guest.
// At most one pending reservation exists per session; staging a new one while
// another is pending simply overwrites it.
type Session struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time

	// Language is set once, from the first message.
	Language string

	// Pending is staged but not yet acknowledged by staff.
	Pending *reservation.Reservation
	// Confirmed is the session's reservation history.
	Confirmed *reservation.Reservation

	mu sync.Mutex
}

// Lock serializes message processing for this session. Messages for the same
// session must be handled one at a time.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session for the next message.
func (s *Session) Unlock() { s.mu.Unlock() }
