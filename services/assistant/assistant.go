package assistant

import (
	"context"
	"fmt"
	"strings"

	serviceRepo "flawless/database/repository/service"
	"flawless/models"
	"flawless/utils"

	"go.uber.org/zap"
)

// AssistantService answers customer questions about the salon.
type AssistantService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
}

// DefaultAssistantService grounds the model in the live service menu and
// keeps a short conversation history per session.
type DefaultAssistantService struct {
	gemini   *GeminiClient
	ctxStore *RedisContextStore
	services serviceRepo.ServiceRepository
}

func NewAssistantService(gemini *GeminiClient, ctxStore *RedisContextStore, services serviceRepo.ServiceRepository) *DefaultAssistantService {
	return &DefaultAssistantService{
		gemini:   gemini,
		ctxStore: ctxStore,
		services: services,
	}
}

const assistantPersona = `You are the friendly virtual receptionist of Flawless Salon, a beauty salon.
Answer questions about the salon's services, prices and booking process.
Keep replies short and warm. If a customer wants to book, tell them to pick a
service on the website and choose a date and time; an admin will confirm the
request. If asked something unrelated to the salon, politely steer the
conversation back.`

func (s *DefaultAssistantService) menuSection() string {
	services, err := s.services.GetActive()
	if err != nil || len(services) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Current service menu:\n")
	for _, svc := range services {
		sb.WriteString(fmt.Sprintf("- %s (%d min, %.2f)", svc.Name, svc.Duration, svc.Price))
		if svc.Description != "" {
			sb.WriteString(": " + svc.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Chat sends one customer message through the model and returns the reply.
func (s *DefaultAssistantService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	chatCtx, err := s.ctxStore.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Warn("failed to load chat context, starting fresh",
			zap.String("sessionID", sessionID), zap.Error(err))
		chatCtx = &models.ChatContext{}
	}

	var prompt strings.Builder
	prompt.WriteString(assistantPersona)
	prompt.WriteString("\n\n")
	prompt.WriteString(s.menuSection())
	prompt.WriteString("\nConversation so far:\n")
	for _, turn := range chatCtx.Turns {
		prompt.WriteString(turn.Role + ": " + turn.Text + "\n")
	}
	prompt.WriteString("user: " + message + "\nassistant:")

	reply, err := s.gemini.GenerateContent(ctx, prompt.String())
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)

	chatCtx.Turns = append(chatCtx.Turns,
		models.ChatTurn{Role: "user", Text: message},
		models.ChatTurn{Role: "assistant", Text: reply},
	)
	if err := s.ctxStore.Set(ctx, sessionID, chatCtx); err != nil {
		utils.GetLogger().Warn("failed to save chat context",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return reply, nil
}
