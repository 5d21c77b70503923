package reservation

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tibino/marta/log"
)

// capacityWindow is how far apart two reservations must be before they stop
// competing for the same tables.
const capacityWindow = 2 * time.Hour

// Ledger is the in-memory store of confirmed reservations, keyed by session id.
// Entries are only ever added, through Confirm; memory is authoritative and an
// optional Redis mirror is kept on a best-effort basis.
type Ledger struct {
	mu        sync.RWMutex
	bySession map[string]Reservation
	redis     *redis.Client
	logger    zerolog.Logger
}

// NewLedger creates an empty ledger. The Redis client may be nil.
func NewLedger(rdb *redis.Client) *Ledger {
	return &Ledger{
		bySession: make(map[string]Reservation),
		redis:     rdb,
		logger:    log.WithComponent("ledger"),
	}
}

// Confirm records a reservation for the given session, replacing any earlier
// one for the same session.
func (l *Ledger) Confirm(ctx context.Context, sessionID string, res Reservation) {
	l.mu.Lock()
	l.bySession[sessionID] = res
	l.mu.Unlock()

	l.logger.Info().
		Str("session_id", sessionID).
		Time("reservation_time", res.When).
		Int("party_size", res.PartySize).
		Msg("reservation confirmed")

	if l.redis != nil {
		l.redis.HSet(ctx, "reservation:"+sessionID, map[string]interface{}{
			"name":             res.Name,
			"phone":            res.Phone,
			"reservation_time": res.When.Format(time.RFC3339),
			"party_size":       res.PartySize,
		})
		l.redis.SAdd(ctx, "confirmed_reservations", sessionID)
	}
}

// Get returns the confirmed reservation for a session, if any.
func (l *Ledger) Get(sessionID string) (Reservation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res, ok := l.bySession[sessionID]
	return res, ok
}

// PeopleAround sums the party sizes of every confirmed reservation within the
// capacity window of t.
func (l *Ledger) PeopleAround(t time.Time) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0
	for _, res := range l.bySession {
		diff := res.When.Sub(t)
		if diff < 0 {
			diff = -diff
		}
		if diff < capacityWindow {
			total += res.PartySize
		}
	}
	return total
}

// Len returns the number of confirmed reservations.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bySession)
}
