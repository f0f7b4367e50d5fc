package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/zyra-app/zyra-api/internal/usecases/analytics"
	"github.com/zyra-app/zyra-api/pkg/apiErrors"
	"github.com/zyra-app/zyra-api/pkg/utils"
)

// GetDashboardMetrics retorna as métricas principais do dashboard.
// Aceita o parâmetro opcional "date" (YYYY-MM-DD) para consultar um snapshot histórico.
func GetDashboardMetrics(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dateParam := r.URL.Query().Get("date")

		var (
			metrics interface{}
			err     error
		)

		if dateParam != "" {
			date, parseErr := utils.ParseDate(dateParam)
			if parseErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Formato esperado: YYYY-MM-DD", nil)
				return
			}
			metrics, err = service.MetricsByDate(*date)
		} else {
			metrics, err = service.DashboardMetrics()
		}

		if err != nil {
			logrus.Error("Erro ao buscar métricas do dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCampaignPerformance(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		performance := service.CampaignPerformance()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(performance); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetSEOPerformance(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		performance, err := service.SEOPerformance()
		if err != nil {
			logrus.Error("Erro ao buscar desempenho de SEO:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produtos otimizados no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(performance); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
