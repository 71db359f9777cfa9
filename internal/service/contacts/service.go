package contacts

import (
	"context"
	"fmt"

	"github.com/chefdechef/booking-service/internal/service/contacts/models"
)

// Service сервис сообщений обратной связи для панели администратора
type Service struct {
	repo   ContactRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ContactRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает сообщения, новые первыми
func (s *Service) List(ctx context.Context) (*models.ContactMessageListResponse, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListContactMessages: failed to list: %v", err)
		return nil, fmt.Errorf("%w: List - repository: %v", ErrInternal, err)
	}
	return models.FromDomainContactMessages(messages), nil
}
