// Package analytics fornece os feeds de dados do painel: métricas
// principais, desempenho de campanhas e desempenho de SEO
package analytics

import (
	"sort"
	"time"

	"github.com/zyra-app/zyra-api/infrastructure/repository"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
	"github.com/zyra-app/zyra-api/pkg/log"
	"github.com/zyra-app/zyra-api/pkg/utils"
)

type AnalyticsService interface {
	DashboardMetrics() ([]domain.KeyMetric, error)
	MetricsByDate(date time.Time) ([]domain.KeyMetric, error)
	CampaignPerformance() domain.CampaignPerformance
	SEOPerformance() (domain.SEOPerformance, error)
	RecordSnapshots(metrics []domain.KeyMetric, date time.Time) error
}

type Service struct {
	snapshotRepo repository.MetricSnapshotRepository
	productRepo  repository.ProductRepository
}

func NewService(
	snapshotRepo repository.MetricSnapshotRepository,
	productRepo repository.ProductRepository,
) AnalyticsService {
	return &Service{
		snapshotRepo: snapshotRepo,
		productRepo:  productRepo,
	}
}

// Métricas ilustrativas exibidas enquanto nenhuma fotografia de métrica
// foi registrada para a loja
var placeholderMetrics = []domain.KeyMetric{
	{Title: "Page Views", Value: "147,325", Change: "+25.3%", Positive: true},
	{Title: "Conversion Rate", Value: "3.24%", Change: "+1.2%", Positive: true},
	{Title: "Total Revenue", Value: "$52,847", Change: "+18.7%", Positive: true},
	{Title: "Cart Abandonment", Value: "68.4%", Change: "-2.1%", Positive: false},
}

// DashboardMetrics retorna a lista de métricas do painel na ordem de
// exibição, a partir das fotografias mais recentes de cada métrica
func (s *Service) DashboardMetrics() ([]domain.KeyMetric, error) {
	snapshots, err := s.snapshotRepo.GetLatest()
	if err != nil {
		return nil, err
	}

	if len(snapshots) == 0 {
		log.L.Debug("analytics: nenhuma fotografia de métrica registrada, usando valores ilustrativos")
		return placeholderMetrics, nil
	}

	return toKeyMetrics(snapshots), nil
}

// MetricsByDate retorna as métricas registradas em um dia específico
func (s *Service) MetricsByDate(date time.Time) ([]domain.KeyMetric, error) {
	snapshots, err := s.snapshotRepo.GetByDate(date)
	if err != nil {
		return nil, err
	}

	return toKeyMetrics(snapshots), nil
}

// CampaignPerformance retorna as métricas de campanhas de e-mail e SMS.
// Hoje são os valores ilustrativos do pipeline de relatórios; quando um
// provedor real de campanhas for integrado, ele entra por aqui.
func (s *Service) CampaignPerformance() domain.CampaignPerformance {
	return reporting.DefaultCampaignPerformance()
}

// SEOPerformance retorna o bloco de SEO do painel, com a contagem real
// de produtos otimizados do catálogo
func (s *Service) SEOPerformance() (domain.SEOPerformance, error) {
	optimized, err := s.productRepo.CountOptimized()
	if err != nil {
		return domain.SEOPerformance{}, err
	}

	return reporting.DefaultSEOPerformance(optimized), nil
}

// RecordSnapshots registra as fotografias das métricas informadas para
// a data informada, preservando a ordem recebida como ordem de exibição
func (s *Service) RecordSnapshots(metrics []domain.KeyMetric, date time.Time) error {
	snapshots := make([]*domain.MetricSnapshot, 0, len(metrics))

	for i, metric := range metrics {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		snapshots = append(snapshots, &domain.MetricSnapshot{
			ID:           id,
			Metric:       metric.Title,
			DisplayOrder: i,
			Value:        metric.Value,
			Change:       metric.Change,
			Positive:     metric.Positive,
			SnapshotDate: date,
		})
	}

	return s.snapshotRepo.SaveOrUpdate(snapshots)
}

func toKeyMetrics(snapshots []*domain.MetricSnapshot) []domain.KeyMetric {
	ordered := make([]*domain.MetricSnapshot, len(snapshots))
	copy(ordered, snapshots)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	metrics := make([]domain.KeyMetric, 0, len(ordered))
	for _, snapshot := range ordered {
		metrics = append(metrics, domain.KeyMetric{
			Title:    snapshot.Metric,
			Value:    snapshot.Value,
			Change:   snapshot.Change,
			Positive: snapshot.Positive,
		})
	}

	return metrics
}
