// Package conversation drives the guest dialogue: it matches intents, runs the
// extractor and the availability validator, and moves reservations through the
// staging and staff-confirmation steps.
package conversation

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tibino/marta/language"
	"github.com/tibino/marta/log"
	"github.com/tibino/marta/reservation"
	"github.com/tibino/marta/responses"
	"github.com/tibino/marta/session"
)

// StaffNotifier is the sink for staff-facing notification messages. Delivery
// is best-effort; only the construction of the message is guaranteed.
type StaffNotifier interface {
	Notify(sessionID, message string)
}

// greetingWindow is how long after session creation a message is answered with
// the greeting regardless of its content.
const greetingWindow = 5 * time.Second

// intent pairs a set of trigger keywords with a handler. Intents are matched
// in order against the normalized message and the first match wins.
type intent struct {
	name     string
	keywords []string
	handle   func(ctx context.Context, s *session.Session, text string) string
}

// Orchestrator processes guest messages against session and ledger state.
type Orchestrator struct {
	extractor       *reservation.Extractor
	validator       *reservation.Validator
	ledger          *reservation.Ledger
	detector        language.Detector
	notifier        StaffNotifier
	defaultLanguage string

	staffConfirm     *regexp.Regexp
	negativeKeywords []string
	intents          []intent

	logger zerolog.Logger
	now    func() time.Time
}

// New wires an orchestrator. The notifier may be nil, in which case staff
// messages are constructed but discarded.
func New(
	extractor *reservation.Extractor,
	validator *reservation.Validator,
	ledger *reservation.Ledger,
	detector language.Detector,
	notifier StaffNotifier,
	defaultLanguage string,
) *Orchestrator {
	o := &Orchestrator{
		extractor:        extractor,
		validator:        validator,
		ledger:           ledger,
		detector:         detector,
		notifier:         notifier,
		defaultLanguage:  defaultLanguage,
		staffConfirm:     regexp.MustCompile(`(?:ok|okey|sim) mesa (\w+)`),
		negativeKeywords: []string{"desculpa", "nao"},
		logger:           log.WithComponent("conversation"),
		now:              time.Now,
	}
	o.intents = []intent{
		{name: "reservation", keywords: []string{"reserva", "booking"}, handle: o.handleReservation},
		{name: "cancel", keywords: []string{"cancel", "annuler"}, handle: o.handleCancel},
		{name: "hours", keywords: []string{"horario", "hours", "heures"}, handle: o.handleHours},
		{name: "menu", keywords: []string{"menu", "carta", "vinhos", "wine list", "cardapio"}, handle: o.handleMenu},
	}
	return o
}

// Process handles one guest message and returns the reply. It mutates session
// and ledger state; the caller must hold the session's lock.
func (o *Orchestrator) Process(ctx context.Context, s *session.Session, text string) string {
	if s.Language == "" {
		lang, ok := o.detector.Detect(text)
		if !ok || !responses.Supported(lang) {
			lang = o.defaultLanguage
		}
		s.Language = lang
		o.logger.Debug().Str("session_id", s.ID).Str("language", lang).Msg("language set")
	}
	lang := s.Language
	folded := reservation.Normalize(text)

	// A brand-new session gets the greeting no matter what was said.
	if o.now().Sub(s.CreatedAt) < greetingWindow {
		return responses.Get(lang, responses.KeyGreeting)
	}

	if s.Pending != nil {
		if m := o.staffConfirm.FindStringSubmatch(folded); m != nil {
			return o.confirm(ctx, s, m[1])
		}
		for _, kw := range o.negativeKeywords {
			if strings.Contains(folded, kw) {
				s.Pending = nil
				return responses.Get(lang, responses.KeyStaffTimeout)
			}
		}
		// Anything else falls through to ordinary intent handling without
		// advancing the confirmation.
	}

	for _, in := range o.intents {
		for _, kw := range in.keywords {
			if strings.Contains(folded, kw) {
				o.logger.Debug().Str("session_id", s.ID).Str("intent", in.name).Msg("intent matched")
				return in.handle(ctx, s, text)
			}
		}
	}

	return responses.Get(lang, responses.KeyFallback)
}

func (o *Orchestrator) handleReservation(ctx context.Context, s *session.Session, text string) string {
	req := o.extractor.Parse(text)
	clientMsg, staffMsg := o.stage(s, req)
	if staffMsg != "" && o.notifier != nil {
		o.notifier.Notify(s.ID, staffMsg)
	}
	return clientMsg
}

// stage validates a parsed request and records it as the session's pending
// reservation. It returns the guest reply and, on success, the staff message.
func (o *Orchestrator) stage(s *session.Session, req reservation.Request) (clientMsg, staffMsg string) {
	lang := s.Language

	if !req.Complete() {
		return responses.Get(lang, responses.KeyFallback), ""
	}

	verdict := o.validator.Check(*req.When, req.PartySize)
	if !verdict.OK {
		switch verdict.Reason {
		case reservation.ReasonCutoff:
			return responses.Get(lang, responses.KeyDinnerCutoff), ""
		case reservation.ReasonFull:
			return responses.Render(lang, responses.KeyReservationFull, map[string]string{
				"available_time": responses.FormatClock(verdict.Alternative),
			}), ""
		default:
			// Closed days, out-of-window times and the lunch cutoff all
			// answer with the opening hours.
			return responses.Get(lang, responses.KeyHoursInfo), ""
		}
	}

	res := reservation.Reservation{
		Name:      req.Name,
		Phone:     req.Phone,
		When:      *req.When,
		PartySize: req.PartySize,
	}
	s.Pending = &res

	staffMsg = responses.Render(lang, responses.KeyStaffWhatsApp, map[string]string{
		"date_short": responses.FormatDate(res.When),
		"time":       responses.FormatClock(res.When),
		"name":       res.Name,
		"phone":      res.Phone,
		"party_size": strconv.Itoa(res.PartySize),
	})
	return responses.Get(lang, responses.KeyReservationStaging), staffMsg
}

// confirm moves the pending reservation into the ledger and answers with the
// table number and the day's specials.
func (o *Orchestrator) confirm(ctx context.Context, s *session.Session, table string) string {
	lang := s.Language

	pending := s.Pending
	if pending == nil {
		return responses.Get(lang, responses.KeyFallback)
	}

	o.ledger.Confirm(ctx, s.ID, *pending)
	s.Confirmed = pending
	s.Pending = nil

	menu := strings.Join(responses.SpecialsFor(pending.When.Weekday()), ", ")
	return responses.Render(lang, responses.KeyConfirmedStaff, map[string]string{
		"table_number": table,
		"date_short":   responses.FormatDate(pending.When),
		"time":         responses.FormatClock(pending.When),
		"menu":         menu,
	})
}

func (o *Orchestrator) handleCancel(_ context.Context, s *session.Session, _ string) string {
	return responses.Get(s.Language, responses.KeyCancelPrompt)
}

func (o *Orchestrator) handleHours(_ context.Context, s *session.Session, _ string) string {
	return responses.Get(s.Language, responses.KeyHoursInfo)
}

func (o *Orchestrator) handleMenu(_ context.Context, s *session.Session, _ string) string {
	return responses.Get(s.Language, responses.KeyFullMenuInfo)
}
