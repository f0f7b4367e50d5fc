package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-app/zyra-api/internal/api/handler/router"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newReportsRouter(exporter reporting.Exporter) router.Router {
	return router.New(router.WithRoutes(Reports(exporter)...))
}

func TestExportReport(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setup          func(exporter *mocks.MockExporter)
		expectedStatus int
		validate       func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Exportação CSV com download",
			url:  "/v1/reports/export?format=csv",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(reporting.FormatCSV).Return(&reporting.ExportResult{
					Filename:    "Zyra_Report_20260315.csv",
					ContentType: "text/csv; charset=utf-8",
					Content:     []byte("\"KEY METRICS\"\n"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="Zyra_Report_20260315.csv"`, recorder.Header().Get("Content-Disposition"))
				assert.Equal(t, "\"KEY METRICS\"\n", recorder.Body.String())
			},
		},
		{
			name: "Formato omitido usa CSV",
			url:  "/v1/reports/export",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(reporting.FormatCSV).Return(&reporting.ExportResult{
					Filename:    "Zyra_Report_20260315.csv",
					ContentType: "text/csv; charset=utf-8",
					Content:     []byte("\"KEY METRICS\"\n"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Exportação PDF",
			url:  "/v1/reports/export?format=pdf",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(reporting.FormatPDF).Return(&reporting.ExportResult{
					Filename:    "Zyra_Report_20260315.pdf",
					ContentType: "application/pdf",
					Content:     []byte("%PDF-1.3"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
			},
		},
		{
			name:           "Formato desconhecido é rejeitado",
			url:            "/v1/reports/export?format=xlsx",
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Contains(t, recorder.Body.String(), "VAL_001")
			},
		},
		{
			name: "Exportação em andamento responde com conflito",
			url:  "/v1/reports/export?format=csv",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(reporting.FormatCSV).Return(nil, reporting.ErrExportInProgress)
			},
			expectedStatus: http.StatusConflict,
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Contains(t, recorder.Body.String(), "RES_003")
			},
		},
		{
			name: "Falha na geração responde com erro de servidor",
			url:  "/v1/reports/export?format=csv",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().Export(reporting.FormatCSV).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Contains(t, recorder.Body.String(), "SRV_004")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			exporter := mocks.NewMockExporter(ctrl)
			if tt.setup != nil {
				tt.setup(exporter)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, tt.url, nil)

			newReportsRouter(exporter).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.validate != nil {
				tt.validate(t, recorder)
			}
		})
	}
}

func TestPreviewReport(t *testing.T) {
	ctrl := gomock.NewController(t)

	exporter := mocks.NewMockExporter(ctrl)
	exporter.EXPECT().Preview().Return(&domain.ReportDataset{
		KeyMetrics: []domain.KeyMetric{
			{Title: "Page Views", Value: "147,325", Change: "+25.3%", Positive: true},
		},
		Products:       []domain.Product{{ID: "P1", Name: "Organic Cotton T-Shirt", IsOptimized: true}},
		SEOPerformance: reporting.DefaultSEOPerformance(1),
	}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/preview", nil)

	newReportsRouter(exporter).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), "Page Views")
	assert.Contains(t, recorder.Body.String(), "Organic Cotton T-Shirt")
}
