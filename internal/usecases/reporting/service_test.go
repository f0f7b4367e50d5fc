package reporting_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	metrics       *mocks.MockMetricSource
	products      *mocks.MockProductSource
	campaigns     *mocks.MockCampaignSource
	notifications *mocks.MockNotificationRecorder
}

func newServiceWithMocks(t *testing.T) (*reporting.Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		metrics:       mocks.NewMockMetricSource(ctrl),
		products:      mocks.NewMockProductSource(ctrl),
		campaigns:     mocks.NewMockCampaignSource(ctrl),
		notifications: mocks.NewMockNotificationRecorder(ctrl),
	}

	service := reporting.NewService(m.metrics, m.products, m.campaigns, m.notifications)

	return service, m
}

func sampleMetrics() []domain.KeyMetric {
	return []domain.KeyMetric{
		{Title: "Page Views", Value: "147,325", Change: "+25.3%", Positive: true},
	}
}

func sampleProducts() []*domain.Product {
	return []*domain.Product{
		{ID: "P1", Name: "Organic Cotton T-Shirt", IsOptimized: true},
		{ID: "P2", Name: "Recycled Tote Bag", IsOptimized: false},
	}
}

func TestService_ExportCSV(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil)
	m.products.EXPECT().ListProducts().Return(sampleProducts(), nil)
	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance())
	m.notifications.EXPECT().RecordExport(gomock.Any()).DoAndReturn(func(filename string) error {
		assert.Regexp(t, `^Zyra_Report_\d{8}\.csv$`, filename)
		return nil
	})

	result, err := service.Export(reporting.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.Regexp(t, `^Zyra_Report_\d{8}\.csv$`, result.Filename)

	content := string(result.Content)
	assert.True(t, strings.HasPrefix(content, "Zyra Analytics Report - "))
	assert.Contains(t, content, `"KEY METRICS"`)
	assert.Contains(t, content, `"Organic Cotton T-Shirt","Active","Optimized","+32%"`)
	assert.Contains(t, content, `"Optimized Products","1"`)
}

func TestService_ExportPDF(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil)
	m.products.EXPECT().ListProducts().Return(sampleProducts(), nil)
	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance())
	m.notifications.EXPECT().RecordExport(gomock.Any()).Return(nil)

	result, err := service.Export(reporting.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Regexp(t, `^Zyra_Report_\d{8}\.pdf$`, result.Filename)
	assert.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func TestService_ExportRejectsUnknownFormat(t *testing.T) {
	service, _ := newServiceWithMocks(t)

	result, err := service.Export(reporting.Format("xlsx"))

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_ExportInProgressBlocksSameFormatOnly(t *testing.T) {
	service, m := newServiceWithMocks(t)

	started := make(chan struct{})
	release := make(chan struct{})

	// A primeira exportação CSV fica presa na coleta de métricas,
	// segurando o estado "exportando" do formato
	blocked := m.metrics.EXPECT().DashboardMetrics().DoAndReturn(func() ([]domain.KeyMetric, error) {
		close(started)
		<-release
		return sampleMetrics(), nil
	})
	free := m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil)
	gomock.InOrder(blocked, free)

	m.products.EXPECT().ListProducts().Return(sampleProducts(), nil).Times(2)
	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance()).Times(2)
	m.notifications.EXPECT().RecordExport(gomock.Any()).Return(nil).Times(2)

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.Export(reporting.FormatCSV)
		firstDone <- err
	}()

	<-started

	// Mesmo formato: rejeitado imediatamente
	_, err := service.Export(reporting.FormatCSV)
	assert.ErrorIs(t, err, reporting.ErrExportInProgress)

	// Formato diferente: exporta em paralelo normalmente
	result, err := service.Export(reporting.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestService_ExportStateResetsAfterFailure(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil).Times(2)

	failed := m.products.EXPECT().ListProducts().Return(nil, errors.New("conexão recusada"))
	succeeded := m.products.EXPECT().ListProducts().Return(sampleProducts(), nil)
	gomock.InOrder(failed, succeeded)

	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance())
	m.notifications.EXPECT().RecordExport(gomock.Any()).Return(nil)

	_, err := service.Export(reporting.FormatCSV)
	require.Error(t, err)

	// A falha não pode deixar o formato preso em "exportando"
	result, err := service.Export(reporting.FormatCSV)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
}

func TestService_NotificationFailureDoesNotFailExport(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil)
	m.products.EXPECT().ListProducts().Return(sampleProducts(), nil)
	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance())
	m.notifications.EXPECT().RecordExport(gomock.Any()).Return(errors.New("tabela indisponível"))

	result, err := service.Export(reporting.FormatCSV)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
}

func TestService_Preview(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil)
	m.products.EXPECT().ListProducts().Return(sampleProducts(), nil)
	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance())

	dataset, err := service.Preview()
	require.NoError(t, err)

	assert.Len(t, dataset.KeyMetrics, 1)
	assert.Len(t, dataset.Products, 2)
	assert.Equal(t, 1, dataset.SEOPerformance.OptimizedProducts)
}

func TestService_PreviewPropagatesSourceErrors(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(nil, errors.New("conexão recusada"))

	dataset, err := service.Preview()

	assert.Error(t, err)
	assert.Nil(t, dataset)
}

func TestService_ExportLocksAreIndependentAcrossRuns(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.metrics.EXPECT().DashboardMetrics().Return(sampleMetrics(), nil).Times(2)
	m.products.EXPECT().ListProducts().Return(sampleProducts(), nil).Times(2)
	m.campaigns.EXPECT().CampaignPerformance().Return(reporting.DefaultCampaignPerformance()).Times(2)
	m.notifications.EXPECT().RecordExport(gomock.Any()).Return(nil).Times(2)

	// Exportações sequenciais do mesmo formato nunca conflitam
	for i := 0; i < 2; i++ {
		result, err := service.Export(reporting.FormatCSV)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Content)

		time.Sleep(time.Millisecond)
	}
}
