// Package reservation holds the reservation domain: best-effort extraction of
// reservation details from free text, availability validation against opening
// hours and capacity, and the in-memory ledger of confirmed reservations.
package reservation

import "time"

// Request is the best-effort result of parsing a guest message. Fields that
// could not be extracted are left at their zero value, except PartySize which
// defaults to 2.
type Request struct {
	When      *time.Time
	Name      string
	Phone     string
	PartySize int
}

// Complete reports whether every field required for staging is present.
// PartySize always carries a default, so only date, name and phone can be missing.
func (r Request) Complete() bool {
	return r.When != nil && r.Name != "" && r.Phone != ""
}

// Reservation is a confirmed or pending booking. Immutable once created.
type Reservation struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	When      time.Time `json:"reservation_time"`
	PartySize int       `json:"party_size"`
}

// Window is an opening window in whole hours, compared inclusively on both ends.
type Window struct {
	StartHour int
	EndHour   int
}

// Contains reports whether the time of day t falls within the window.
func (w Window) Contains(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	return w.StartHour*60 <= minute && minute <= w.EndHour*60
}

// DayHours holds the lunch and dinner windows for a weekday category.
type DayHours struct {
	Lunch  Window
	Dinner Window
}

// OpeningHours describes when the restaurant accepts guests.
type OpeningHours struct {
	Weekday   DayHours
	Weekend   DayHours
	ClosedDay time.Weekday
}

// Cutoff is the last acceptable time of day a reservation may start.
type Cutoff struct {
	Hour   int
	Minute int
}

// Before reports whether the cutoff falls strictly before the time of day of t.
func (c Cutoff) Before(t time.Time) bool {
	return t.Hour()*60+t.Minute() > c.Hour*60+c.Minute
}

// DefaultOpeningHours returns the restaurant's standing schedule: lunch 12-15,
// dinner 19-23, closed on Tuesdays.
func DefaultOpeningHours() OpeningHours {
	hours := DayHours{
		Lunch:  Window{StartHour: 12, EndHour: 15},
		Dinner: Window{StartHour: 19, EndHour: 23},
	}
	return OpeningHours{
		Weekday:   hours,
		Weekend:   hours,
		ClosedDay: time.Tuesday,
	}
}
