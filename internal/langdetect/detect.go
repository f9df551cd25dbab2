package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector assigns a best-effort ISO 639-1 language tag to post bodies.
// Detection failure (text too short or ambiguous) yields an empty tag by
// policy; callers never see an error.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over the given languages. With no languages given it
// considers all supported ones.
func New(languages ...lingua.Language) *Detector {
	var builder lingua.LanguageDetectorBuilder
	if len(languages) > 0 {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	}
	return &Detector{detector: builder.Build()}
}

// Detect returns a lowercase two-letter tag like "en", or "" when the text
// cannot be classified.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
