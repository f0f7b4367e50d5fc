// Package reporting implementa o pipeline de exportação de relatórios:
// agregação do conjunto de dados, renderização por formato e entrega.
package reporting

import (
	"github.com/zyra-app/zyra-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// MetricSource fornece a lista de métricas do painel, já formatadas
// para exibição e na ordem de exibição
type MetricSource interface {
	DashboardMetrics() ([]domain.KeyMetric, error)
}

// ProductSource fornece a lista de produtos do catálogo
type ProductSource interface {
	ListProducts() ([]*domain.Product, error)
}

// CampaignSource fornece as métricas de campanhas de e-mail e SMS
type CampaignSource interface {
	CampaignPerformance() domain.CampaignPerformance
}

// NotificationRecorder registra uma notificação de exportação concluída
type NotificationRecorder interface {
	RecordExport(filename string) error
}

// Exporter é a interface completa do pipeline de exportação
type Exporter interface {
	// Export executa o pipeline completo (agregar, renderizar, empacotar)
	// para o formato informado e retorna o arquivo pronto para entrega
	Export(format Format) (*ExportResult, error)

	// Preview retorna o conjunto de dados do relatório sem renderizá-lo
	Preview() (*domain.ReportDataset, error)
}
