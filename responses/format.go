package responses

import (
	"fmt"
	"time"
)

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDate renders a date for guest-facing messages, e.g. "dia 2 de maio".
// The year is appended only when the date falls outside the current year.
func FormatDate(t time.Time) string {
	month := monthNames[int(t.Month())-1]
	if t.Year() != time.Now().Year() {
		return fmt.Sprintf("dia %d de %s de %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("dia %d de %s", t.Day(), month)
}

// FormatClock renders a time of day as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
