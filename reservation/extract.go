package reservation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// hourWords maps spelled-out Portuguese numbers (accent-folded) to 1-20.
// Used for both hours and minutes.
var hourWords = map[string]int{
	"uma": 1, "duas": 2, "tres": 3, "quatro": 4, "cinco": 5, "seis": 6,
	"sete": 7, "oito": 8, "nove": 9, "dez": 10, "onze": 11, "doze": 12,
	"treze": 13, "catorze": 14, "quinze": 15, "dezasseis": 16, "dezassete": 17,
	"dezoito": 18, "dezanove": 19, "vinte": 20,
}

// partyWords maps spelled-out party sizes, including gendered forms, to 1-10.
var partyWords = map[string]int{
	"um": 1, "uma": 1, "dois": 2, "duas": 2, "tres": 3, "quatro": 4,
	"cinco": 5, "seis": 6, "sete": 7, "oito": 8, "nove": 9, "dez": 10,
}

// weekdayNames lists Portuguese weekday names (accent-folded) in lookup order.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"segunda", time.Monday},
	{"terca", time.Tuesday},
	{"quarta", time.Wednesday},
	{"quinta", time.Thursday},
	{"sexta", time.Friday},
	{"sabado", time.Saturday},
	{"domingo", time.Sunday},
}

// Normalize lower-cases text and strips diacritics so patterns and keyword
// tables only need unaccented forms.
func Normalize(text string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(text),
	)
	if err != nil {
		return strings.ToLower(text)
	}
	return folded
}

// Extractor parses reservation details out of free-form guest messages.
// Every sub-extractor is best-effort: a field that cannot be recognized is
// simply left empty rather than failing the whole parse.
type Extractor struct {
	dayOfMonth  *regexp.Regexp
	spelledTime *regexp.Regexp
	digitTime   *regexp.Regexp
	name        *regexp.Regexp
	anyName     *regexp.Regexp
	phone       *regexp.Regexp
	party       *regexp.Regexp

	now func() time.Time
}

// NewExtractor creates an extractor with its patterns compiled.
func NewExtractor() *Extractor {
	return NewExtractorAt(time.Now)
}

// NewExtractorAt creates an extractor that resolves relative dates ("tomorrow",
// weekday names) against the given clock.
func NewExtractorAt(clock func() time.Time) *Extractor {
	return &Extractor{
		dayOfMonth:  regexp.MustCompile(`dia (\d+)`),
		spelledTime: regexp.MustCompile(`\b(?:as|pelas|pela)\s+([a-z]+)(?:\s+e\s+([a-z]+))?`),
		digitTime:   regexp.MustCompile(`(\d{1,2})[h:](\d{2})?`),
		name:        regexp.MustCompile(`(?:para|a|o)?\s+([A-Z][a-z]+(?: [A-Z][a-z]+){0,2})`),
		anyName:     regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)+)`),
		phone:       regexp.MustCompile(`(\d{9}|\d{3}[ -]\d{3}[ -]\d{3})`),
		party:       regexp.MustCompile(`para (\d+|um|uma|dois|duas|tres|quatro|cinco|seis|sete|oito|nove|dez)`),
		now:         clock,
	}
}

// Parse runs every sub-extractor over the message and assembles a Request.
func (e *Extractor) Parse(text string) Request {
	req := Request{
		Name:      e.ExtractName(text),
		Phone:     e.ExtractPhone(text),
		PartySize: e.ExtractPartySize(text),
	}
	if when, ok := e.ParseDateTime(text); ok {
		req.When = &when
	}
	return req
}

// ParseDateTime extracts a wall-clock date and time from the message.
// The date defaults to today and the time to dinner at 20:00 when no pattern
// matches. It only fails when an explicit "dia N" names an invalid day of month.
func (e *Extractor) ParseDateTime(text string) (time.Time, bool) {
	now := e.now()
	folded := Normalize(text)

	day, ok := e.parseDay(folded, now)
	if !ok {
		return time.Time{}, false
	}
	hour, minute := e.parseClock(folded)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

func (e *Extractor) parseDay(folded string, now time.Time) (time.Time, bool) {
	if strings.Contains(folded, "amanha") {
		return now.AddDate(0, 0, 1), true
	}
	if strings.Contains(folded, "hoje") {
		return now, true
	}

	for _, wd := range weekdayNames {
		if !strings.Contains(folded, wd.name) {
			continue
		}
		// A named weekday always means the next occurrence strictly in the
		// future: today's own weekday rolls a full week ahead.
		ahead := int(wd.day - now.Weekday())
		if ahead <= 0 {
			ahead += 7
		}
		return now.AddDate(0, 0, ahead), true
	}

	if m := e.dayOfMonth.FindStringSubmatch(folded); m != nil {
		dayNum, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		candidate := time.Date(now.Year(), now.Month(), dayNum, 0, 0, 0, 0, now.Location())
		if candidate.Day() != dayNum {
			// Normalization moved the date: day N does not exist this month.
			return time.Time{}, false
		}
		if dayNum < now.Day() {
			// Already passed this month, roll into the next one.
			next := time.Date(now.Year(), now.Month()+1, dayNum, 0, 0, 0, 0, now.Location())
			if next.Day() != dayNum {
				return time.Time{}, false
			}
			return next, true
		}
		return candidate, true
	}

	return now, true
}

func (e *Extractor) parseClock(folded string) (hour, minute int) {
	hour, minute = 20, 0 // dinner is the global default

	if strings.Contains(folded, "almoco") {
		return 13, 0
	}
	if strings.Contains(folded, "jantar") {
		return 20, 0
	}

	if m := e.spelledTime.FindStringSubmatch(folded); m != nil {
		if h, ok := hourWords[m[1]]; ok {
			hour = h
		}
		if m[2] != "" {
			switch {
			case strings.Contains(m[2], "meia"):
				minute = 30
			case strings.Contains(m[2], "quarto"):
				minute = 15
			default:
				minute = hourWords[m[2]]
			}
		}
		return hour, minute
	}

	if m := e.digitTime.FindStringSubmatch(folded); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
	}
	return hour, minute
}

// ExtractName looks for a run of two or three capitalized words, preferring
// one right after a preposition. Returns "" when nothing name-like is found.
func (e *Extractor) ExtractName(text string) string {
	if m := e.name.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if len(strings.Fields(candidate)) > 1 {
			return candidate
		}
	}
	if m := e.anyName.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "")

// ExtractPhone finds the first phone number, either nine consecutive digits or
// three space/hyphen separated groups of three, and returns it digits-only.
func (e *Extractor) ExtractPhone(text string) string {
	if m := e.phone.FindStringSubmatch(text); m != nil {
		return phoneSeparators.Replace(m[1])
	}
	return ""
}

// ExtractPartySize finds "para N" with N a digit or number word. Defaults to 2.
func (e *Extractor) ExtractPartySize(text string) int {
	m := e.party.FindStringSubmatch(Normalize(text))
	if m == nil {
		return 2
	}
	if n, ok := partyWords[m[1]]; ok {
		return n
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		return n
	}
	return 2
}
