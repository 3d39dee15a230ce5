package chat

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/healthmitra/healthmitra-be/internal/fallback"
	"github.com/healthmitra/healthmitra-be/internal/prompt"
	"github.com/healthmitra/healthmitra-be/pkg/llm"
)

// Interfaces for dependencies
type ComposerInterface interface {
	Compose(ctx context.Context, message, language string) string
}

type PromptInterface interface {
	BuildPrompt(req prompt.Request) []llm.ChatMessage
}

type ReferenceInterface interface {
	VaccinationSummary(ctx context.Context, language string) (string, error)
	OutbreakSummary(ctx context.Context, language string) (string, error)
}

// Engine orchestrates response generation: reference-data injection, the AI
// call, and degradation to the deterministic fallback composer.
type Engine struct {
	promptBuilder PromptInterface
	llmClient     llm.Client
	composer      ComposerInterface
	reference     ReferenceInterface
	aiTimeout     time.Duration
	maxTokens     int
	temperature   float64
}

// NewEngine creates a new chat engine
func NewEngine(
	pb PromptInterface,
	client llm.Client,
	composer ComposerInterface,
	ref ReferenceInterface,
) *Engine {
	return &Engine{
		promptBuilder: pb,
		llmClient:     client,
		composer:      composer,
		reference:     ref,
		aiTimeout:     30 * time.Second,
		maxTokens:     500,
		temperature:   0.7,
	}
}

// Respond generates an answer for a message in the resolved language. It
// never fails: any generation error degrades to the fallback composer. A
// single failed attempt is not retried.
func (e *Engine) Respond(ctx context.Context, message, language string) string {
	promptReq := prompt.Request{
		UserMessage: message,
		Language:    language,
	}

	// Inject reference data when the message directly asks for it
	if fallback.IsVaccinationQuery(message) {
		info, err := e.reference.VaccinationSummary(ctx, language)
		if err != nil {
			log.Printf("Failed to load vaccination data for prompt: %v", err)
		} else {
			promptReq.VaccinationInfo = info
		}
	} else if fallback.IsOutbreakQuery(message) {
		info, err := e.reference.OutbreakSummary(ctx, language)
		if err != nil {
			log.Printf("Failed to load outbreak data for prompt: %v", err)
		} else {
			promptReq.OutbreakInfo = info
		}
	}

	messages := e.promptBuilder.BuildPrompt(promptReq)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	response, err := e.llmClient.ChatCompletion(ctxWithTimeout, llm.ChatRequest{
		Messages:    messages,
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err == nil && len(response.Choices) == 0 {
		err = fmt.Errorf("no choices in response")
	}
	if err != nil {
		log.Printf("AI call failed, using fallback: %v", err)
		return e.composer.Compose(ctx, message, language)
	}

	return response.Choices[0].Message.Content
}
