package language

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// ErrUndetermined is returned when the classifier cannot produce a reliable tag
var ErrUndetermined = errors.New("language could not be determined")

// WhatLangDetector adapts the whatlanggo trigram classifier to the Detector
// interface
type WhatLangDetector struct{}

// NewWhatLangDetector creates the default text classifier
func NewWhatLangDetector() *WhatLangDetector {
	return &WhatLangDetector{}
}

// DetectCode classifies text into an ISO 639-1 code. Empty input, unreliable
// classifications, and classifier panics all surface as errors so the caller
// can fall back to its own heuristic.
func (d *WhatLangDetector) DetectCode(text string) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			code = ""
			err = fmt.Errorf("classifier panicked: %v", r)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return "", ErrUndetermined
	}

	info := whatlanggo.Detect(text)
	if info.Lang == -1 || !info.IsReliable() {
		return "", ErrUndetermined
	}

	return info.Lang.Iso6391(), nil
}
