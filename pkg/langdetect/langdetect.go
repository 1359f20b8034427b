// Package langdetect identifies the language of incoming user text and
// normalizes it against the set of supported Indian languages.
package langdetect

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// IndianLanguages is the ISO-639-1 whitelist of languages the bot translates
// to and from. Anything outside this set is handled as English.
var IndianLanguages = []string{
	"hi", "te", "ta", "kn", "bn", "mr", "gu", "ml", "ur", "pa", "or", "ks",
}

// ErrUndetected is returned when no language could be identified.
var ErrUndetected = errors.New("langdetect: language not detected")

// Detector wraps a lingua detector restricted to English plus the supported
// Indian languages. Restricting the candidate set keeps detection accurate
// on short, single-word inputs like disease names.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a Detector.
func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Hindi,
		lingua.Telugu,
		lingua.Tamil,
		lingua.Kannada,
		lingua.Bengali,
		lingua.Marathi,
		lingua.Gujarati,
		lingua.Malayalam,
		lingua.Urdu,
		lingua.Punjabi,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO-639-1 code of the given text.
func (d *Detector) Detect(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrUndetected
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetected
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}

// Normalize maps a detected code onto the supported set: whitelist members
// pass through, everything else becomes "en".
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, lang := range IndianLanguages {
		if code == lang {
			return code
		}
	}
	return "en"
}

// IsIndianLanguage reports whether code is in the whitelist.
func IsIndianLanguage(code string) bool {
	return code != "en" && Normalize(code) == code
}
