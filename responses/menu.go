package responses

import "time"

// dailySpecials holds the specials that change every day. The fixed menu and
// the wine list live elsewhere.
var dailySpecials = map[time.Weekday][]string{
	time.Saturday:  {"marisco", "choco frito", "arroz de tamboril"},
	time.Sunday:    {"arroz de tamboril", "bacalhau à brás"},
	time.Monday:    {"salmão grelhado", "arroz de tamboril"},
	time.Tuesday:   {}, // closed
	time.Wednesday: {"enguias à caldeirada", "cabrito assado"},
	time.Thursday:  {"leitão à bairrada", "rojões"},
	time.Friday:    {"bacalhau à brás", "choco frito"},
}

// SpecialsFor returns the daily specials for a weekday. The slice may be empty.
func SpecialsFor(day time.Weekday) []string {
	return dailySpecials[day]
}
