package domain

import "time"

type NotificationType string

const (
	NotificationTypeExport  NotificationType = "export"
	NotificationTypePublish NotificationType = "publish"
	NotificationTypeSystem  NotificationType = "system"
)

// Notification alimenta o dropdown de notificações do painel
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
