package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"ecotrack/domain"
	"ecotrack/entities"
	"ecotrack/internal/utils"
	"ecotrack/pkg/gemini"
	"ecotrack/pkg/inventory"

	"github.com/gofiber/fiber/v2/log"
)

const DefaultTimeout = 30 * time.Second

type (
	AssistantService interface {
		// Ask never fails: any error from the model yields the fallback text
		// and fallback=true.
		Ask(ctx context.Context, prompt string) (reply string, fallback bool)
		// Chat rejects a message while a previous one is still being answered.
		Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
		Greeting() domain.GreetingResponse
	}

	assistantService struct {
		inventoryService inventory.InventoryService
		geminiService    gemini.GeminiService
		timeout          time.Duration
		clock            utils.Clock
		pending          sync.Mutex
	}
)

func NewAssistantService(
	inventoryService inventory.InventoryService,
	geminiService gemini.GeminiService,
	timeout time.Duration,
	clock utils.Clock,
) AssistantService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &assistantService{
		inventoryService: inventoryService,
		geminiService:    geminiService,
		timeout:          timeout,
		clock:            clock,
	}
}

func (s *assistantService) Ask(ctx context.Context, prompt string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.geminiService.GenerateContent(ctx, prompt)
	if err != nil {
		log.Warnw("assistant falling back", "error", err)
		return domain.AssistantFallbackMessage, true
	}
	return reply, false
}

func (s *assistantService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return domain.ChatResponse{}, domain.ErrEmptyChatMessage
	}

	if !s.pending.TryLock() {
		return domain.ChatResponse{}, domain.ErrAssistantBusy
	}
	defer s.pending.Unlock()

	active, err := s.inventoryService.ActiveItems(ctx)
	if err != nil {
		// answer without inventory context
		log.Warnw("assistant could not read inventory", "error", err)
		active = []entities.InventoryItem{}
	}

	prompt, template := BuildPrompt(message, active, s.clock())
	reply, fallback := s.Ask(ctx, prompt)

	return domain.ChatResponse{
		Reply:    reply,
		Template: template,
		Fallback: fallback,
	}, nil
}

func (s *assistantService) Greeting() domain.GreetingResponse {
	return domain.GreetingResponse{Message: domain.AssistantGreeting}
}
