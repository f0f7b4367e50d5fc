package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
	"github.com/zyra-app/zyra-api/pkg/apiErrors"
)

// ExportReport gera o relatório analítico e envia como download.
// O parâmetro "format" aceita csv (default) ou pdf.
func ExportReport(service reporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportReport")

		formatParam := r.URL.Query().Get("format")
		if formatParam == "" {
			formatParam = string(reporting.FormatCSV)
		}

		format, err := reporting.ParseFormat(formatParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato inválido. Valores aceitos: csv, pdf", nil)
			return
		}

		result, err := service.Export(format)
		if err != nil {
			if errors.Is(err, reporting.ErrExportInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrExportInProgress, "Já existe uma exportação em andamento para este formato", nil)
				return
			}

			logrus.Error("Erro ao gerar relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar o relatório", nil)
			return
		}

		if err := reporting.WriteHTTP(w, result); err != nil {
			logrus.Error("Erro ao enviar relatório:", err)
		}
	})
}

// PreviewReport retorna o conjunto de dados agregado do relatório sem renderizá-lo
func PreviewReport(service reporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dataset, err := service.Preview()
		if err != nil {
			logrus.Error("Erro ao montar prévia do relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao montar a prévia do relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(dataset); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
