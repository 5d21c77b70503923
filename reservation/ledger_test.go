package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_ConfirmAndGet(t *testing.T) {
	ledger := NewLedger(nil)
	ctx := context.Background()

	when := time.Date(2026, time.March, 5, 20, 0, 0, 0, time.Local)
	res := Reservation{Name: "Maria Silva", Phone: "912345678", When: when, PartySize: 4}

	_, ok := ledger.Get("sess-1")
	assert.False(t, ok)

	ledger.Confirm(ctx, "sess-1", res)

	got, ok := ledger.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, res, got)
	assert.Equal(t, 1, ledger.Len())
}

func TestLedger_ConfirmReplacesSameSession(t *testing.T) {
	ledger := NewLedger(nil)
	ctx := context.Background()

	when := time.Date(2026, time.March, 5, 20, 0, 0, 0, time.Local)
	ledger.Confirm(ctx, "sess-1", Reservation{Name: "A", Phone: "911111111", When: when, PartySize: 2})
	ledger.Confirm(ctx, "sess-1", Reservation{Name: "B", Phone: "922222222", When: when, PartySize: 6})

	got, ok := ledger.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, 1, ledger.Len())
}

func TestLedger_PeopleAroundWindow(t *testing.T) {
	ledger := NewLedger(nil)
	ctx := context.Background()

	base := time.Date(2026, time.March, 5, 20, 0, 0, 0, time.Local)
	ledger.Confirm(ctx, "s1", Reservation{Name: "A", Phone: "911111111", When: base, PartySize: 4})
	ledger.Confirm(ctx, "s2", Reservation{Name: "B", Phone: "922222222", When: base.Add(119 * time.Minute), PartySize: 3})
	ledger.Confirm(ctx, "s3", Reservation{Name: "C", Phone: "933333333", When: base.Add(2 * time.Hour), PartySize: 8})
	ledger.Confirm(ctx, "s4", Reservation{Name: "D", Phone: "944444444", When: base.Add(-119 * time.Minute), PartySize: 2})

	// Exactly two hours apart no longer competes for tables.
	assert.Equal(t, 9, ledger.PeopleAround(base))
}
