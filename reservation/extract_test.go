package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 4 March 2026, 10:00 local time.
var wednesday = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.Local)

func testExtractor(now time.Time) *Extractor {
	return NewExtractorAt(func() time.Time { return now })
}

func TestParseDateTime_Days(t *testing.T) {
	e := testExtractor(wednesday)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"tomorrow", "reserva amanhã", time.Date(2026, time.March, 5, 20, 0, 0, 0, time.Local)},
		{"today", "reserva hoje", time.Date(2026, time.March, 4, 20, 0, 0, 0, time.Local)},
		{"next tuesday", "reserva terça", time.Date(2026, time.March, 10, 20, 0, 0, 0, time.Local)},
		{"accented weekday", "reserva sábado", time.Date(2026, time.March, 7, 20, 0, 0, 0, time.Local)},
		{"same weekday rolls a week", "reserva quarta", time.Date(2026, time.March, 11, 20, 0, 0, 0, time.Local)},
		{"day of month ahead", "reserva dia 20", time.Date(2026, time.March, 20, 20, 0, 0, 0, time.Local)},
		{"day of month passed rolls a month", "reserva dia 2", time.Date(2026, time.April, 2, 20, 0, 0, 0, time.Local)},
		{"no date defaults to today", "uma reserva", time.Date(2026, time.March, 4, 20, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.ParseDateTime(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateTime_InvalidDayOfMonth(t *testing.T) {
	// April only has 30 days.
	e := testExtractor(time.Date(2026, time.April, 10, 10, 0, 0, 0, time.Local))

	_, ok := e.ParseDateTime("reserva dia 31")
	assert.False(t, ok)
}

func TestParseDateTime_InvalidDayNextMonth(t *testing.T) {
	// "dia 30" has passed in January, and February has no 30th.
	e := testExtractor(time.Date(2026, time.January, 31, 10, 0, 0, 0, time.Local))

	_, ok := e.ParseDateTime("reserva dia 30")
	assert.False(t, ok)
}

func TestParseDateTime_Times(t *testing.T) {
	e := testExtractor(wednesday)

	tests := []struct {
		name       string
		text       string
		hour, min  int
	}{
		{"lunch keyword", "reserva hoje para o almoço", 13, 0},
		{"dinner keyword", "reserva hoje para jantar", 20, 0},
		{"no time defaults to dinner", "reserva hoje", 20, 0},
		{"spelled hour", "mesa hoje as oito", 8, 0},
		{"spelled hour and half", "mesa hoje às oito e meia", 8, 30},
		{"spelled hour and quarter", "mesa hoje às sete e quarto", 7, 15},
		{"spelled twenty", "mesa hoje pelas vinte", 20, 0},
		{"unknown minute word falls to zero", "mesa hoje às oito e tal", 8, 0},
		{"digits with h", "mesa hoje às 19h", 19, 0},
		{"digits with h and minutes", "mesa hoje às 20h30", 20, 30},
		{"digits with colon", "mesa hoje 12:15", 12, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.ParseDateTime(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.hour, got.Hour())
			assert.Equal(t, tt.min, got.Minute())
			assert.Zero(t, got.Second())
		})
	}
}

func TestExtractName(t *testing.T) {
	e := testExtractor(wednesday)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"after preposition", "reserva para Maria Silva amanhã", "Maria Silva"},
		{"three words", "mesa para Ana Maria Costa às oito", "Ana Maria Costa"},
		{"fallback anywhere", "Rui Santos quer uma mesa", "Rui Santos"},
		{"single capitalized word rejected", "reserva para 4 pessoas", ""},
		{"nothing name-like", "quero uma mesa amanha", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractName(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	e := testExtractor(wednesday)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"nine digits", "o contacto é 912345678", "912345678"},
		{"space groups", "ligar para 912 345 678", "912345678"},
		{"hyphen groups", "912-345-678 é o número", "912345678"},
		{"absent", "sem contacto", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractPhone(tt.text))
		})
	}
}

func TestExtractPartySize(t *testing.T) {
	e := testExtractor(wednesday)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"digit", "reserva para 4 pessoas", 4},
		{"number word", "mesa para quatro pessoas", 4},
		{"gendered word", "mesa para duas", 2},
		{"absent defaults to two", "uma reserva amanhã", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractPartySize(tt.text))
		})
	}
}

func TestParse_FullRequest(t *testing.T) {
	e := testExtractor(wednesday)

	req := e.Parse("reserva para 4 pessoas amanhã às 20h para Maria Silva, 912345678")

	require.True(t, req.Complete())
	assert.Equal(t, "Maria Silva", req.Name)
	assert.Equal(t, "912345678", req.Phone)
	assert.Equal(t, 4, req.PartySize)
	assert.Equal(t, time.Date(2026, time.March, 5, 20, 0, 0, 0, time.Local), *req.When)
}

func TestParse_IncompleteRequest(t *testing.T) {
	e := testExtractor(wednesday)

	req := e.Parse("queria uma reserva para amanhã")

	assert.False(t, req.Complete())
	assert.NotNil(t, req.When)
	assert.Empty(t, req.Name)
	assert.Empty(t, req.Phone)
	assert.Equal(t, 2, req.PartySize)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "amanha as tres da tarde", Normalize("Amanhã às Três da tarde"))
	assert.Equal(t, "terca", Normalize("TERÇA"))
}
