package responses

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("pt"))
	assert.True(t, Supported("en"))
	assert.True(t, Supported("fr"))
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
}

func TestGet_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Get("en", KeyGreeting), Get("de", KeyGreeting))
	assert.Equal(t, Get("en", KeyFallback), Get("", KeyFallback))
}

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	got := Render("pt", KeyReservationFull, map[string]string{
		"available_time": "21:00",
	})
	assert.Contains(t, got, "21:00")
	assert.NotContains(t, got, "{available_time}")
}

func TestRender_AllStaffPlaceholders(t *testing.T) {
	got := Render("pt", KeyStaffWhatsApp, map[string]string{
		"date_short": "dia 5 de março",
		"time":       "20:00",
		"party_size": "4",
		"name":       "Maria Silva",
		"phone":      "912345678",
	})
	assert.NotContains(t, got, "{")
	assert.Contains(t, got, "Maria Silva")
	assert.Contains(t, got, "912345678")
}

func TestRender_NoVars(t *testing.T) {
	assert.Equal(t, Get("pt", KeyGreeting), Render("pt", KeyGreeting, nil))
}

func TestFormatDate(t *testing.T) {
	year := time.Now().Year()

	current := time.Date(year, time.May, 2, 20, 0, 0, 0, time.Local)
	assert.Equal(t, "dia 2 de maio", FormatDate(current))

	next := time.Date(year+1, time.January, 15, 13, 0, 0, 0, time.Local)
	assert.Equal(t, fmt.Sprintf("dia 15 de janeiro de %d", year+1), FormatDate(next))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "20:00", FormatClock(time.Date(2026, time.March, 5, 20, 0, 0, 0, time.Local)))
	assert.Equal(t, "08:30", FormatClock(time.Date(2026, time.March, 5, 8, 30, 0, 0, time.Local)))
}

func TestSpecialsFor(t *testing.T) {
	assert.Empty(t, SpecialsFor(time.Tuesday))
	assert.Contains(t, SpecialsFor(time.Thursday), "leitão à bairrada")
	assert.Contains(t, SpecialsFor(time.Saturday), "marisco")
}

func TestSpecialsFor_EveryDayNonNil(t *testing.T) {
	// An empty day must still encode as [] in the menu endpoint, never null.
	for day := time.Sunday; day <= time.Saturday; day++ {
		assert.NotNil(t, SpecialsFor(day), day.String())
	}
}
