package domain

import (
	"errors"
	"fmt"
)

const (
	AssistantFallbackMessage = "I'm sorry, I'm having trouble connecting right now. Please try again later."
	AssistantGreeting        = "Hi there! I'm your EcoBot assistant. Ask me about recipes for leftovers, food storage tips, or ways to reduce waste."

	PromptTemplateRecipe  = "recipe"
	PromptTemplateGeneral = "general"
)

var (
	MessageSuccessChat        = "assistant replied"
	MessageSuccessGetGreeting = "assistant greeting retrieved successfully"
	MessageFailedChat         = "failed to chat with assistant"

	ErrAssistantBusy          = errors.New("assistant is still answering the previous message")
	ErrEmptyChatMessage       = fmt.Errorf("%w: message is required", ErrValidation)
	ErrGeminiProcessingFailed = fmt.Errorf("gemini processing failed: %w", ErrExternalService)
	ErrGeminiNotConfigured    = fmt.Errorf("gemini API key not configured: %w", ErrExternalService)
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply    string `json:"reply"`
		Template string `json:"template"`
		Fallback bool   `json:"fallback"`
	}

	GreetingResponse struct {
		Message string `json:"message"`
	}
)
