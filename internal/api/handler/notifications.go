package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zyra-app/zyra-api/internal/usecases/notifying"
	"github.com/zyra-app/zyra-api/pkg/apiErrors"
)

func ListNotifications(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		notifications, err := service.List(limit)
		if err != nil {
			logrus.Error("Erro ao listar notificações:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar notificações no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(notifications); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func MarkNotificationRead(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notificationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if notificationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da notificação não informado", nil)
			return
		}

		if err := service.MarkAsRead(notificationID); err != nil {
			if errors.Is(err, notifying.ErrNotificationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Notificação não encontrada", nil)
				return
			}

			logrus.Error("Erro ao marcar notificação como lida:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar notificação no banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
