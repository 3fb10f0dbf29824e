package service

import (
	"context"
	"errors"
	"strings"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
)

// ErrEmptyMessage is returned when a chat message has no content
var ErrEmptyMessage = errors.New("message is empty")

// ChatService asks the nutrition assistant questions
type ChatService struct {
	api      ChatAPI
	notifier Notifier
}

// NewChatService creates a chat service
func NewChatService(api ChatAPI, notifier Notifier) *ChatService {
	return &ChatService{api: api, notifier: notifier}
}

// Ask sends one question and returns the assistant's reply
func (s *ChatService) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	reply, err := s.api.Ask(ctx, message)
	if err != nil {
		s.notifier.Error(apiclient.ExtractMessage(err))
		return "", err
	}
	return reply, nil
}
