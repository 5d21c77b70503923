// Package language wraps language detection for incoming guest messages.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector identifies the language of a text. The boolean is false when the
// text is too ambiguous to classify; callers are expected to substitute a
// default language in that case.
type Detector interface {
	Detect(text string) (string, bool)
}

// LinguaDetector detects languages with the lingua statistical models,
// restricted to the languages the response tables cover.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector for the supported guest languages.
func NewDetector() *LinguaDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.Portuguese,
			lingua.English,
			lingua.French,
			lingua.Spanish,
		).
		Build()
	return &LinguaDetector{detector: detector}
}

// Detect returns the ISO 639-1 code of the detected language, lower-cased.
func (d *LinguaDetector) Detect(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
