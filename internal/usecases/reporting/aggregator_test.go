package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyra-app/zyra-api/internal/domain"
)

func TestBuildReportDataset_OptimizedCount(t *testing.T) {
	tests := []struct {
		name              string
		products          []*domain.Product
		expectedOptimized int
		expectedProducts  int
	}{
		{
			name:              "Catálogo vazio - contador zerado",
			products:          nil,
			expectedOptimized: 0,
			expectedProducts:  0,
		},
		{
			name: "Contador reflete exatamente os produtos otimizados do dataset",
			products: []*domain.Product{
				{ID: "P1", Name: "Organic Cotton T-Shirt", IsOptimized: true},
				{ID: "P2", Name: "Recycled Tote Bag", IsOptimized: false},
				{ID: "P3", Name: "Bamboo Sunglasses", IsOptimized: true},
			},
			expectedOptimized: 2,
			expectedProducts:  3,
		},
		{
			name: "Entradas nulas são descartadas sem afetar o contador",
			products: []*domain.Product{
				{ID: "P1", Name: "Organic Cotton T-Shirt", IsOptimized: true},
				nil,
				{ID: "P2", Name: "Recycled Tote Bag", IsOptimized: false},
			},
			expectedOptimized: 1,
			expectedProducts:  2,
		},
		{
			name: "Nenhum produto otimizado",
			products: []*domain.Product{
				{ID: "P1", Name: "Recycled Tote Bag"},
				{ID: "P2", Name: "Bamboo Sunglasses"},
			},
			expectedOptimized: 0,
			expectedProducts:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := BuildReportDataset(nil, tt.products, DefaultCampaignPerformance())

			assert.Equal(t, tt.expectedOptimized, dataset.SEOPerformance.OptimizedProducts)
			assert.Len(t, dataset.Products, tt.expectedProducts)
		})
	}
}

func TestBuildReportDataset_NilInputsProduceEmptyCollections(t *testing.T) {
	dataset := BuildReportDataset(nil, nil, domain.CampaignPerformance{})

	assert.NotNil(t, dataset.KeyMetrics)
	assert.NotNil(t, dataset.Products)
	assert.Empty(t, dataset.KeyMetrics)
	assert.Empty(t, dataset.Products)
	assert.Equal(t, 0, dataset.SEOPerformance.OptimizedProducts)
}

func TestBuildReportDataset_CopiesInputs(t *testing.T) {
	metrics := []domain.KeyMetric{
		{Title: "Page Views", Value: "147,325", Change: "+25.3%", Positive: true},
	}
	products := []*domain.Product{
		{ID: "P1", Name: "Organic Cotton T-Shirt", IsOptimized: true},
	}

	dataset := BuildReportDataset(metrics, products, DefaultCampaignPerformance())

	// O dataset carrega cópias: mutações posteriores nas entradas não
	// podem vazar para um relatório já montado
	products[0].Name = "mutated"
	metrics[0].Value = "0"

	assert.Equal(t, "Organic Cotton T-Shirt", dataset.Products[0].Name)
	assert.Equal(t, "147,325", dataset.KeyMetrics[0].Value)
}

func TestDefaultSEOPerformance(t *testing.T) {
	seo := DefaultSEOPerformance(7)

	assert.Equal(t, 7, seo.OptimizedProducts)
	assert.Equal(t, "+18 positions", seo.RankingImprovement)
	assert.Equal(t, "+42.7%", seo.OrganicTraffic)
	assert.Equal(t, "156 tracked", seo.KeywordRankings)
}

func TestDefaultCampaignPerformance(t *testing.T) {
	campaigns := DefaultCampaignPerformance()

	assert.Equal(t, "12,847", campaigns.Email.Delivered)
	assert.Equal(t, "432 (3.4%)", campaigns.Email.Converted)
	assert.Equal(t, "5,423", campaigns.SMS.Sent)
	assert.Equal(t, "187 (3.5%)", campaigns.SMS.Recovered)
}
