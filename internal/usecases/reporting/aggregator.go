package reporting

import (
	"github.com/zyra-app/zyra-api/internal/domain"
)

// Valores ilustrativos de SEO exibidos pelo painel enquanto não há um
// provedor real de dados de ranqueamento
const (
	seoRankingImprovement = "+18 positions"
	seoOrganicTraffic     = "+42.7%"
	seoKeywordRankings    = "156 tracked"
)

// DefaultCampaignPerformance retorna os valores ilustrativos de campanhas
// exibidos pelo painel. Quando um provedor real de estatísticas de campanha
// for integrado, ele substitui estes valores sem mudar o formato do dataset.
func DefaultCampaignPerformance() domain.CampaignPerformance {
	return domain.CampaignPerformance{
		Email: domain.EmailPerformance{
			Delivered: "12,847",
			Opened:    "8,234 (64.1%)",
			Clicked:   "2,156 (16.8%)",
			Converted: "432 (3.4%)",
		},
		SMS: domain.SMSPerformance{
			Sent:      "5,423",
			Delivered: "5,387 (99.3%)",
			Clicked:   "1,289 (23.9%)",
			Recovered: "187 (3.5%)",
		},
	}
}

// DefaultSEOPerformance monta o bloco de SEO para a contagem de
// produtos otimizados informada, com os demais campos ilustrativos
func DefaultSEOPerformance(optimizedProducts int) domain.SEOPerformance {
	return domain.SEOPerformance{
		OptimizedProducts:  optimizedProducts,
		RankingImprovement: seoRankingImprovement,
		OrganicTraffic:     seoOrganicTraffic,
		KeywordRankings:    seoKeywordRankings,
	}
}

// BuildReportDataset monta o conjunto de dados normalizado de um relatório.
// É uma função total: entradas nulas viram coleções vazias, nunca erro.
// O contador de produtos otimizados do bloco de SEO é derivado aqui, da
// mesma lista de produtos incluída no dataset; os renderizadores nunca o
// recalculam.
func BuildReportDataset(
	metrics []domain.KeyMetric,
	products []*domain.Product,
	campaigns domain.CampaignPerformance,
) domain.ReportDataset {
	keyMetrics := make([]domain.KeyMetric, 0, len(metrics))
	keyMetrics = append(keyMetrics, metrics...)

	copied := make([]domain.Product, 0, len(products))
	optimized := 0

	for _, product := range products {
		if product == nil {
			continue
		}

		copied = append(copied, *product)

		if product.IsOptimized {
			optimized++
		}
	}

	return domain.ReportDataset{
		KeyMetrics:       keyMetrics,
		Products:         copied,
		EmailPerformance: campaigns.Email,
		SMSPerformance:   campaigns.SMS,
		SEOPerformance:   DefaultSEOPerformance(optimized),
	}
}
