package language

import (
	"errors"
	"testing"
)

type stubDetector struct {
	code string
	err  error
}

func (d *stubDetector) DetectCode(text string) (string, error) {
	return d.code, d.err
}

func TestResolver_PreferredOverride(t *testing.T) {
	// An explicit preference wins regardless of text content, even when the
	// detector would say otherwise
	resolver := NewResolver(&stubDetector{code: "fr"})

	tests := []struct {
		name      string
		text      string
		preferred string
		want      string
	}{
		{name: "preferred en with hindi text", text: "टीकाकरण के बारे में बताइए", preferred: "en", want: "en"},
		{name: "preferred hi with english text", text: "tell me about vaccines", preferred: "hi", want: "hi"},
		{name: "preferred en with empty text", text: "", preferred: "en", want: "en"},
		{name: "preferred hi with empty text", text: "", preferred: "hi", want: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.text, tt.preferred)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolver_DetectorMapping(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "hindi", code: "hi", want: "hi"},
		{name: "bengali", code: "bn", want: "hi"},
		{name: "telugu", code: "te", want: "hi"},
		{name: "marathi", code: "mr", want: "hi"},
		{name: "tamil", code: "ta", want: "hi"},
		{name: "gujarati", code: "gu", want: "hi"},
		{name: "kannada", code: "kn", want: "hi"},
		{name: "malayalam", code: "ml", want: "hi"},
		{name: "punjabi", code: "pa", want: "hi"},
		{name: "odia", code: "or", want: "hi"},
		{name: "assamese", code: "as", want: "hi"},
		{name: "urdu", code: "ur", want: "hi"},
		{name: "english", code: "en", want: "en"},
		{name: "french", code: "fr", want: "en"},
		{name: "spanish", code: "es", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&stubDetector{code: tt.code})
			got := resolver.Resolve("some text", "")
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolver_HeuristicFallback(t *testing.T) {
	// When the detector errors, the keyword heuristic decides
	resolver := NewResolver(&stubDetector{err: errors.New("classifier failed")})

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "hindi particle में", text: "दिल्ली में डेंगू", want: "hi"},
		{name: "hindi particle क्या", text: "क्या लक्षण", want: "hi"},
		{name: "hindi particle बताइए", text: "बताइए", want: "hi"},
		{name: "plain english", text: "tell me about fever", want: "en"},
		{name: "empty text", text: "", want: "en"},
		{name: "digits only", text: "12345", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.text, "")
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolver_IgnoresUnknownPreference(t *testing.T) {
	resolver := NewResolver(&stubDetector{code: "hi"})

	// Anything other than exactly "en"/"hi" falls through to detection
	for _, preferred := range []string{"", "fr", "EN", "hindi", "auto"} {
		if got := resolver.Resolve("text", preferred); got != "hi" {
			t.Errorf("Resolve(preferred=%q) = %q, want %q", preferred, got, "hi")
		}
	}
}

func TestWhatLangDetector_EmptyInput(t *testing.T) {
	detector := NewWhatLangDetector()

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := detector.DetectCode(text); err == nil {
			t.Errorf("DetectCode(%q) expected error, got nil", text)
		}
	}
}
