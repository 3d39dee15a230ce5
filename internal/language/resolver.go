package language

import (
	"strings"
)

const (
	English = "en"
	Hindi   = "hi"
)

// indianLanguages maps classifier codes that resolve to a Hindi response.
// Hindi serves as the umbrella response language for all Indian-language input.
var indianLanguages = map[string]bool{
	"hi": true, // Hindi
	"bn": true, // Bengali
	"te": true, // Telugu
	"mr": true, // Marathi
	"ta": true, // Tamil
	"gu": true, // Gujarati
	"kn": true, // Kannada
	"ml": true, // Malayalam
	"pa": true, // Punjabi
	"or": true, // Odia
	"as": true, // Assamese
	"ur": true, // Urdu
}

// hindiKeywords are common Hindi function words checked when the classifier
// fails. Substring membership is intentional, matching the topic matcher.
var hindiKeywords = []string{
	"में", "का", "की", "को", "से", "है", "हैं", "करें", "लिए", "साथ",
	"बताइए", "क्या", "कैसे", "यह", "वह",
}

// Detector classifies raw text into an ISO 639-1 language code. It returns an
// error when the text is empty or the classification is unreliable.
type Detector interface {
	DetectCode(text string) (string, error)
}

// Resolver turns free text into a two-valued response language tag
type Resolver struct {
	detector Detector
}

// NewResolver creates a resolver backed by the given detector
func NewResolver(detector Detector) *Resolver {
	return &Resolver{detector: detector}
}

// Resolve determines the response language for a message. An explicit "en" or
// "hi" preference short-circuits detection. Every failure path terminates in a
// deterministic tag; Resolve never fails.
func (r *Resolver) Resolve(text, preferred string) string {
	if preferred == English || preferred == Hindi {
		return preferred
	}

	code, err := r.detector.DetectCode(text)
	if err == nil {
		if indianLanguages[code] {
			return Hindi
		}
		return English
	}

	// Classifier failed; check for common Hindi words as backup
	lower := strings.ToLower(text)
	for _, keyword := range hindiKeywords {
		if strings.Contains(lower, keyword) {
			return Hindi
		}
	}
	return English
}
