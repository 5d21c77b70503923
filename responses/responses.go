// Package responses holds the localized message templates, the daily-specials
// table and the date formatting used in guest-facing replies.
package responses

import "strings"

// Template keys.
const (
	KeyGreeting           = "greeting"
	KeyFallback           = "fallback"
	KeyHoursInfo          = "hours_info"
	KeyReservationFull    = "reservation_full"
	KeyReservationStaging = "reservation_staging"
	KeyStaffWhatsApp      = "staff_whatsapp_template"
	KeyConfirmedStaff     = "reservation_confirmed_staff"
	KeyStaffTimeout       = "staff_confirmation_timeout"
	KeyCancelPrompt       = "cancel_prompt"
	KeyFullMenuInfo       = "full_menu_info"
	KeyDinnerCutoff       = "last_reservation_time_exceeded"
)

const fallbackLanguage = "en"

var tables = map[string]map[string]string{
	"pt": {
		KeyGreeting:           "Olá! Sou a Marta, a assistente do Tibino em Foz do Arelho. Posso ajudar com reservas, horários ou o menu do dia.",
		KeyFallback:           "Desculpe, não percebi. Para reservar, indique por favor a data, a hora, o nome e um contacto telefónico.",
		KeyHoursInfo:          "O Tibino está aberto para almoço das 12h às 15h e para jantar das 19h às 23h. Encerramos à terça-feira.",
		KeyReservationFull:    "Lamentamos, mas estamos lotados a essa hora. Temos disponibilidade às {available_time}. Quer reservar?",
		KeyReservationStaging: "Perfeito! Vou confirmar a disponibilidade com a equipa e já lhe digo algo.",
		KeyStaffWhatsApp:      "Nova reserva: {date_short} às {time}, {party_size} pessoas, em nome de {name} ({phone}). Responder 'ok mesa N' para confirmar.",
		KeyConfirmedStaff:     "Reserva confirmada! Mesa {table_number}, {date_short} às {time}. Pratos do dia: {menu}. Até já!",
		KeyStaffTimeout:       "Não conseguimos confirmar a reserva neste momento. Por favor tente outra hora ou contacte-nos diretamente.",
		KeyCancelPrompt:       "Para cancelar uma reserva, indique por favor o nome e a data da reserva.",
		KeyFullMenuInfo:       "A carta completa e a lista de vinhos estão disponíveis no restaurante. Os pratos do dia mudam todos os dias — pergunte-me pelo menu de hoje!",
		KeyDinnerCutoff:       "A cozinha aceita reservas de jantar até às 21h30. Quer reservar para outra hora?",
	},
	"en": {
		KeyGreeting:           "Hello! I'm Marta, the assistant for Tibino in Foz do Arelho. I can help with reservations, opening hours or today's menu.",
		KeyFallback:           "Sorry, I didn't catch that. To book a table, please tell me the date, the time, your name and a phone number.",
		KeyHoursInfo:          "Tibino is open for lunch from 12:00 to 15:00 and for dinner from 19:00 to 23:00. We are closed on Tuesdays.",
		KeyReservationFull:    "I'm sorry, we are fully booked at that time. We do have availability at {available_time}. Would you like that instead?",
		KeyReservationStaging: "Perfect! Let me check availability with the team and I'll get right back to you.",
		KeyStaffWhatsApp:      "New reservation: {date_short} at {time}, party of {party_size}, under {name} ({phone}). Reply 'ok mesa N' to confirm.",
		KeyConfirmedStaff:     "Reservation confirmed! Table {table_number}, {date_short} at {time}. Today's specials: {menu}. See you soon!",
		KeyStaffTimeout:       "We couldn't confirm your reservation right now. Please try another time or contact us directly.",
		KeyCancelPrompt:       "To cancel a reservation, please tell me the name and the date it was booked for.",
		KeyFullMenuInfo:       "The full menu and wine list are available at the restaurant. The daily specials change every day — ask me for today's menu!",
		KeyDinnerCutoff:       "The kitchen takes dinner reservations until 21:30. Would you like to book an earlier time?",
	},
	"fr": {
		KeyGreeting:           "Bonjour ! Je suis Marta, l'assistante du Tibino à Foz do Arelho. Je peux vous aider avec les réservations, les horaires ou le menu du jour.",
		KeyFallback:           "Désolée, je n'ai pas compris. Pour réserver, indiquez la date, l'heure, votre nom et un numéro de téléphone.",
		KeyHoursInfo:          "Le Tibino est ouvert pour le déjeuner de 12h à 15h et pour le dîner de 19h à 23h. Nous sommes fermés le mardi.",
		KeyReservationFull:    "Désolée, nous sommes complets à cette heure. Nous avons de la place à {available_time}. Cela vous convient-il ?",
		KeyReservationStaging: "Parfait ! Je vérifie la disponibilité avec l'équipe et je reviens vers vous tout de suite.",
		KeyStaffWhatsApp:      "Nouvelle réservation : {date_short} à {time}, {party_size} personnes, au nom de {name} ({phone}). Répondre 'ok mesa N' pour confirmer.",
		KeyConfirmedStaff:     "Réservation confirmée ! Table {table_number}, {date_short} à {time}. Plats du jour : {menu}. À bientôt !",
		KeyStaffTimeout:       "Nous n'avons pas pu confirmer votre réservation pour le moment. Essayez un autre horaire ou contactez-nous directement.",
		KeyCancelPrompt:       "Pour annuler une réservation, indiquez le nom et la date de la réservation.",
		KeyFullMenuInfo:       "La carte complète et la carte des vins sont disponibles au restaurant. Les plats du jour changent chaque jour — demandez-moi le menu d'aujourd'hui !",
		KeyDinnerCutoff:       "La cuisine accepte les réservations pour le dîner jusqu'à 21h30. Souhaitez-vous réserver plus tôt ?",
	},
}

// Supported reports whether a response table exists for the language code.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Get returns the raw template for a language and key, falling back to English
// for unknown languages.
func Get(lang, key string) string {
	table, ok := tables[lang]
	if !ok {
		table = tables[fallbackLanguage]
	}
	return table[key]
}

// Render returns the template with every {name} placeholder substituted.
func Render(lang, key string, vars map[string]string) string {
	msg := Get(lang, key)
	if len(vars) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
