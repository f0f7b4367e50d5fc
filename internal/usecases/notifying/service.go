// Package notifying alimenta o dropdown de notificações do painel
package notifying

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zyra-app/zyra-api/infrastructure/repository"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/pkg/utils"
)

var ErrNotificationNotFound = errors.New("notificação não encontrada")

type NotificationService interface {
	List(limit int) ([]*domain.Notification, error)
	MarkAsRead(notificationID string) error

	// RecordExport registra a notificação de um relatório exportado
	RecordExport(filename string) error
}

type Service struct {
	notificationRepo repository.NotificationRepository
}

func NewService(notificationRepo repository.NotificationRepository) NotificationService {
	return &Service{
		notificationRepo: notificationRepo,
	}
}

func (s *Service) List(limit int) ([]*domain.Notification, error) {
	return s.notificationRepo.List(limit)
}

func (s *Service) MarkAsRead(notificationID string) error {
	err := s.notificationRepo.MarkAsRead(notificationID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotificationNotFound
	}

	return err
}

func (s *Service) RecordExport(filename string) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	return s.notificationRepo.Create(&domain.Notification{
		ID:      id,
		Type:    domain.NotificationTypeExport,
		Title:   "Report exported",
		Message: fmt.Sprintf("The report %s is ready for download.", filename),
	})
}
