package prompt

import (
	"strings"

	"github.com/healthmitra/healthmitra-be/pkg/llm"
)

// Request contains everything needed to build the messages for one generation
// call. VaccinationInfo and OutbreakInfo are optional reference-data blocks;
// when set, the user message is wrapped in a framing that points the model at
// the data.
type Request struct {
	UserMessage     string
	Language        string
	VaccinationInfo string
	OutbreakInfo    string
}

// Builder constructs prompts for the generation API
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildPrompt returns the system and user messages for a chat request
func (b *Builder) BuildPrompt(req Request) []llm.ChatMessage {
	return []llm.ChatMessage{
		{Role: "system", Content: systemPrompt(req.Language)},
		{Role: "user", Content: b.buildUserPrompt(req)},
	}
}

// buildUserPrompt wraps the message with reference data when a summary was
// injected, otherwise passes the raw message through
func (b *Builder) buildUserPrompt(req Request) string {
	switch {
	case req.VaccinationInfo != "":
		return frameWithData("User is asking about vaccinations. Here's the vaccination schedule data:", req.VaccinationInfo, req.UserMessage)
	case req.OutbreakInfo != "":
		return frameWithData("User is asking about health alerts/outbreaks. Here's the current alert data:", req.OutbreakInfo, req.UserMessage)
	default:
		return req.UserMessage
	}
}

func frameWithData(framing, data, question string) string {
	var sb strings.Builder
	sb.Grow(len(framing) + len(data) + len(question) + 128)

	sb.WriteString(framing)
	sb.WriteString("\n")
	sb.WriteString(data)
	sb.WriteString("\n\nUser question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nPlease provide a helpful response using this information.")

	return sb.String()
}

// systemPrompt returns the health-education persona for a response language
func systemPrompt(language string) string {
	if language == "hi" {
		return `आप एक विशेषज्ञ स्वास्थ्य शिक्षा चैटबॉट हैं जो ग्रामीण और अर्ध-शहरी आबादी की सेवा करते हैं। आपका लक्ष्य है:

1. सरल, स्पष्ट भाषा का उपयोग करना (कोई चिकित्सा शब्दजाल नहीं)
2. बीमारी के लक्षण, रोकथाम और टीकाकरण के बारे में सटीक जानकारी देना
3. तत्काल चिकित्सा सहायता की आवश्यकता होने पर "निकटतम स्वास्थ्य केंद्र जाएं" जैसी कार्रवाई योग्य सलाह देना
4. दोस्ताना और सहायक टोन बनाए रखना

हमेशा व्यावहारिक, समझने योग्य सलाह दें। यदि गंभीर लक्षण हों तो तुरंत डॉक्टर के पास जाने को कहें।`
	}

	return `You are an expert health education chatbot serving rural and semi-urban populations. Your goals are:

1. Use simple, clear language (no medical jargon)
2. Provide accurate information about disease symptoms, prevention, and vaccination
3. Give actionable advice like "Visit the nearest health center if..." when immediate medical attention is needed
4. Maintain a friendly and supportive tone

Always provide practical, understandable advice. For serious symptoms, always recommend immediate medical consultation.`
}
