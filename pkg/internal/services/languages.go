package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage stamps posts with an ISO 639-1 language code.
// The detector is expensive to build, so it is shared and lazy.
func DetectLanguage(content string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Russian,
				lingua.German,
				lingua.French,
				lingua.Spanish,
				lingua.Chinese,
				lingua.Japanese,
			).
			Build()
	})

	if language, exists := languageDetector.DetectLanguageOf(content); exists {
		return language.IsoCode639_1().String()
	}
	return "unknown"
}
