package reservation

import "time"

// Reason classifies why a reservation request was turned down.
type Reason int

const (
	// ReasonNone means the request was accepted.
	ReasonNone Reason = iota
	// ReasonClosed covers the closed weekday, times outside every opening
	// window, and lunch requests past the lunch cutoff. The lunch cutoff
	// deliberately reports as closed rather than as a distinct cutoff.
	ReasonClosed
	// ReasonCutoff means a dinner request past the last acceptable dinner time.
	ReasonCutoff
	// ReasonFull means seating capacity around the requested time is exhausted.
	ReasonFull
)

// Verdict is the outcome of an availability check.
type Verdict struct {
	OK     bool
	Reason Reason
	// Alternative is a suggested time, set only with ReasonFull.
	Alternative time.Time
}

// CapacityCounter reports how many guests are already booked around a time.
// Satisfied by the Ledger.
type CapacityCounter interface {
	PeopleAround(t time.Time) int
}

// Validator decides whether a reservation request can be taken.
type Validator struct {
	hours        OpeningHours
	lunchCutoff  Cutoff
	dinnerCutoff Cutoff
	maxCapacity  int
	ledger       CapacityCounter
}

// NewValidator creates a validator over the given schedule and ledger.
func NewValidator(hours OpeningHours, lunchCutoff, dinnerCutoff Cutoff, maxCapacity int, ledger CapacityCounter) *Validator {
	return &Validator{
		hours:        hours,
		lunchCutoff:  lunchCutoff,
		dinnerCutoff: dinnerCutoff,
		maxCapacity:  maxCapacity,
		ledger:       ledger,
	}
}

// IsOpen reports whether the restaurant serves guests at the given moment.
func (v *Validator) IsOpen(when time.Time) bool {
	if when.Weekday() == v.hours.ClosedDay {
		return false
	}

	day := v.hours.Weekday
	if when.Weekday() == time.Saturday || when.Weekday() == time.Sunday {
		day = v.hours.Weekend
	}
	return day.Lunch.Contains(when) || day.Dinner.Contains(when)
}

// Check validates a request. Reasons are evaluated in a fixed order and the
// first failure wins: closed, then cutoff, then capacity.
func (v *Validator) Check(when time.Time, partySize int) Verdict {
	if !v.IsOpen(when) {
		return Verdict{Reason: ReasonClosed}
	}

	// Requests at or after 19:00 count as dinner, everything earlier as lunch.
	if when.Hour() >= 19 {
		if v.dinnerCutoff.Before(when) {
			return Verdict{Reason: ReasonCutoff}
		}
	} else {
		if v.lunchCutoff.Before(when) {
			return Verdict{Reason: ReasonClosed}
		}
	}

	if v.ledger.PeopleAround(when)+partySize > v.maxCapacity {
		return Verdict{Reason: ReasonFull, Alternative: when.Add(time.Hour)}
	}

	return Verdict{OK: true, Reason: ReasonNone}
}
