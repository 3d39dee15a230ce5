package prompt

import (
	"strings"
	"testing"
)

func TestBuildPrompt_SystemPromptLanguage(t *testing.T) {
	builder := NewBuilder()

	tests := []struct {
		name     string
		language string
		contains string
	}{
		{name: "english persona", language: "en", contains: "health education chatbot"},
		{name: "hindi persona", language: "hi", contains: "स्वास्थ्य शिक्षा चैटबॉट"},
		{name: "unknown defaults to english", language: "fr", contains: "health education chatbot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := builder.BuildPrompt(Request{UserMessage: "hello", Language: tt.language})

			if len(messages) != 2 {
				t.Fatalf("expected 2 messages, got %d", len(messages))
			}
			if messages[0].Role != "system" {
				t.Errorf("first message role = %q, want system", messages[0].Role)
			}
			if !strings.Contains(messages[0].Content, tt.contains) {
				t.Errorf("system prompt missing %q", tt.contains)
			}
			if messages[1].Role != "user" {
				t.Errorf("second message role = %q, want user", messages[1].Role)
			}
		})
	}
}

func TestBuildPrompt_RawMessagePassthrough(t *testing.T) {
	builder := NewBuilder()

	messages := builder.BuildPrompt(Request{UserMessage: "what causes fever?", Language: "en"})
	if messages[1].Content != "what causes fever?" {
		t.Errorf("user prompt = %q, want raw message", messages[1].Content)
	}
}

func TestBuildPrompt_VaccinationFraming(t *testing.T) {
	builder := NewBuilder()

	messages := builder.BuildPrompt(Request{
		UserMessage:     "when should my baby get the polio vaccine?",
		Language:        "en",
		VaccinationInfo: "Vaccination Schedule:\n\n• Polio: Protection against Polio - Birth, 6, 10, 14 weeks\n",
	})

	user := messages[1].Content
	if !strings.Contains(user, "asking about vaccinations") {
		t.Error("framing missing vaccination instruction")
	}
	if !strings.Contains(user, "• Polio") {
		t.Error("framing missing injected schedule data")
	}
	if !strings.Contains(user, "User question: when should my baby get the polio vaccine?") {
		t.Error("framing missing user question")
	}
}

func TestBuildPrompt_OutbreakFraming(t *testing.T) {
	builder := NewBuilder()

	messages := builder.BuildPrompt(Request{
		UserMessage:  "any dengue alerts?",
		Language:     "en",
		OutbreakInfo: "Current Health Alerts:\n\n⚠️ Dengue in Delhi - Medium level\n",
	})

	user := messages[1].Content
	if !strings.Contains(user, "asking about health alerts/outbreaks") {
		t.Error("framing missing outbreak instruction")
	}
	if !strings.Contains(user, "⚠️ Dengue in Delhi") {
		t.Error("framing missing injected alert data")
	}
}

func TestBuildPrompt_VaccinationWinsOverOutbreak(t *testing.T) {
	builder := NewBuilder()

	messages := builder.BuildPrompt(Request{
		UserMessage:     "vaccine outbreak",
		Language:        "en",
		VaccinationInfo: "schedule data",
		OutbreakInfo:    "alert data",
	})

	if !strings.Contains(messages[1].Content, "asking about vaccinations") {
		t.Error("vaccination framing should take precedence")
	}
}
