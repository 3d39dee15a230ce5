package fallback

import "strings"

// Topic identifies a matched topic rule
type Topic string

const (
	TopicVaccination    Topic = "vaccination"
	TopicOutbreak       Topic = "outbreak"
	TopicCovid          Topic = "covid"
	TopicFever          Topic = "fever"
	TopicDiabetes       Topic = "diabetes"
	TopicPregnancy      Topic = "pregnancy"
	TopicBloodPressure  Topic = "blood_pressure"
	TopicMentalHealth   Topic = "mental_health"
	TopicFirstAid       Topic = "first_aid"
	TopicChildHealth    Topic = "child_health"
	TopicCommonSymptoms Topic = "common_symptoms"
	TopicNutrition      Topic = "nutrition"
	TopicElderlyCare    Topic = "elderly_care"
	TopicMenu           Topic = "menu"
)

// rule pairs a keyword set with its templates. Store-backed topics
// (vaccination, outbreak) leave templates nil and are rendered by the
// composer.
type rule struct {
	topic     Topic
	keywords  []string
	templates map[string]string
}

// topicRules is evaluated strictly in order; the first rule with any keyword
// appearing as a substring of the lower-cased input wins. Keyword sets mix
// English and Hindi terms since matching is language-agnostic.
var topicRules = []rule{
	{
		topic:    TopicVaccination,
		keywords: []string{"vaccination", "vaccine", "टीका", "टीकाकरण", "immunization", "प्रतिरक्षण"},
	},
	{
		topic:    TopicOutbreak,
		keywords: []string{"outbreak", "alert", "epidemic", "प्रकोप", "अलर्ट", "pandemic", "महामारी", "current", "latest", "news", "समाचार"},
	},
	{
		topic:     TopicCovid,
		keywords:  []string{"covid", "coronavirus", "corona", "कोरोना", "कोविड"},
		templates: covidTemplates,
	},
	{
		topic:     TopicFever,
		keywords:  []string{"fever", "बुखार", "temperature", "तापमान", "hot", "गर्म"},
		templates: feverTemplates,
	},
	{
		topic:     TopicDiabetes,
		keywords:  []string{"diabetes", "डायबिटीज", "मधुमेह", "sugar", "blood sugar", "insulin", "इंसुलिन"},
		templates: diabetesTemplates,
	},
	{
		topic:     TopicPregnancy,
		keywords:  []string{"pregnancy", "pregnant", "गर्भावस्था", "गर्भवती", "prenatal", "maternal", "baby", "बच्चा"},
		templates: pregnancyTemplates,
	},
	{
		topic:     TopicBloodPressure,
		keywords:  []string{"pressure", "hypertension", "bp", "blood pressure", "हाई ब्लड प्रेशर", "उच्च रक्तचाप"},
		templates: bloodPressureTemplates,
	},
	{
		topic:     TopicMentalHealth,
		keywords:  []string{"depression", "anxiety", "stress", "mental health", "अवसाद", "चिंता", "तनाव", "मानसिक स्वास्थ्य"},
		templates: mentalHealthTemplates,
	},
	{
		topic:     TopicFirstAid,
		keywords:  []string{"first aid", "emergency", "accident", "injury", "प्राथमिक चिकित्सा", "आपातकाल", "दुर्घटना", "चोट"},
		templates: firstAidTemplates,
	},
	{
		topic:     TopicChildHealth,
		keywords:  []string{"child", "baby", "infant", "बच्चा", "शिशु", "pediatric", "children"},
		templates: childHealthTemplates,
	},
	{
		topic:     TopicCommonSymptoms,
		keywords:  []string{"headache", "cough", "cold", "stomach pain", "सिरदर्द", "खांसी", "सर्दी", "पेट दर्द"},
		templates: commonSymptomsTemplates,
	},
	{
		topic:     TopicNutrition,
		keywords:  []string{"nutrition", "diet", "food", "healthy eating", "पोषण", "आहार", "भोजन", "खाना"},
		templates: nutritionTemplates,
	},
	{
		topic:     TopicElderlyCare,
		keywords:  []string{"elderly", "old age", "senior", "बुजुर्ग", "बूढ़े", "वृद्ध"},
		templates: elderlyCareTemplates,
	},
}

// Keyword sets that gate reference-data injection into the AI prompt. These
// are narrower than the topic rules above on purpose: only a direct mention
// pulls database content into the prompt.
var (
	vaccinationPromptKeywords = []string{"vaccination", "vaccine", "टीका", "टीकाकरण"}
	outbreakPromptKeywords    = []string{"outbreak", "alert", "epidemic", "प्रकोप", "अलर्ट"}
)

// IsVaccinationQuery reports whether the message asks about vaccinations
func IsVaccinationQuery(message string) bool {
	return matchesAny(strings.ToLower(message), vaccinationPromptKeywords)
}

// IsOutbreakQuery reports whether the message asks about outbreaks or alerts
func IsOutbreakQuery(message string) bool {
	return matchesAny(strings.ToLower(message), outbreakPromptKeywords)
}

// matchesAny does a plain substring scan. A keyword may match inside a larger
// word; word-boundary matching is deliberately not used.
func matchesAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
