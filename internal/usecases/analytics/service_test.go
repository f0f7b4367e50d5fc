package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-app/zyra-api/infrastructure/repository/mocks"
	"github.com/zyra-app/zyra-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_DashboardMetrics(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.MockMetricSnapshotRepository)
		wantErr  bool
		validate func(t *testing.T, metrics []domain.KeyMetric)
	}{
		{
			name: "Sem fotografias registradas - usa valores ilustrativos",
			setup: func(repo *mocks.MockMetricSnapshotRepository) {
				repo.EXPECT().GetLatest().Return(nil, nil)
			},
			validate: func(t *testing.T, metrics []domain.KeyMetric) {
				require.Len(t, metrics, 4)
				assert.Equal(t, "Page Views", metrics[0].Title)
				assert.Equal(t, "147,325", metrics[0].Value)
				assert.Equal(t, "Cart Abandonment", metrics[3].Title)
				assert.False(t, metrics[3].Positive)
			},
		},
		{
			name: "Fotografias são ordenadas pela ordem de exibição",
			setup: func(repo *mocks.MockMetricSnapshotRepository) {
				repo.EXPECT().GetLatest().Return([]*domain.MetricSnapshot{
					{Metric: "Total Revenue", DisplayOrder: 2, Value: "$52,847", Change: "+18.7%", Positive: true},
					{Metric: "Page Views", DisplayOrder: 0, Value: "150,002", Change: "+26.0%", Positive: true},
					{Metric: "Conversion Rate", DisplayOrder: 1, Value: "3.31%", Change: "+1.4%", Positive: true},
				}, nil)
			},
			validate: func(t *testing.T, metrics []domain.KeyMetric) {
				require.Len(t, metrics, 3)
				assert.Equal(t, "Page Views", metrics[0].Title)
				assert.Equal(t, "Conversion Rate", metrics[1].Title)
				assert.Equal(t, "Total Revenue", metrics[2].Title)
			},
		},
		{
			name: "Erro do repositório é propagado",
			setup: func(repo *mocks.MockMetricSnapshotRepository) {
				repo.EXPECT().GetLatest().Return(nil, errors.New("conexão recusada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
			tt.setup(snapshotRepo)

			service := &Service{snapshotRepo: snapshotRepo}

			metrics, err := service.DashboardMetrics()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validate(t, metrics)
		})
	}
}

func TestService_SEOPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().CountOptimized().Return(9, nil)

	service := &Service{productRepo: productRepo}

	seo, err := service.SEOPerformance()
	require.NoError(t, err)

	assert.Equal(t, 9, seo.OptimizedProducts)
	assert.Equal(t, "+18 positions", seo.RankingImprovement)
}

func TestService_RecordSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshots []*domain.MetricSnapshot) error {
		require.Len(t, snapshots, 2)

		// A ordem recebida vira a ordem de exibição
		assert.Equal(t, "Page Views", snapshots[0].Metric)
		assert.Equal(t, 0, snapshots[0].DisplayOrder)
		assert.Equal(t, "Conversion Rate", snapshots[1].Metric)
		assert.Equal(t, 1, snapshots[1].DisplayOrder)

		for _, snapshot := range snapshots {
			assert.NotEmpty(t, snapshot.ID)
			assert.Equal(t, date, snapshot.SnapshotDate)
		}

		return nil
	})

	service := &Service{snapshotRepo: snapshotRepo}

	err := service.RecordSnapshots([]domain.KeyMetric{
		{Title: "Page Views", Value: "147,325", Change: "+25.3%", Positive: true},
		{Title: "Conversion Rate", Value: "3.24%", Change: "+1.2%", Positive: true},
	}, date)

	require.NoError(t, err)
}

func TestService_CampaignPerformance(t *testing.T) {
	service := &Service{}

	campaigns := service.CampaignPerformance()

	assert.Equal(t, "12,847", campaigns.Email.Delivered)
	assert.Equal(t, "5,423", campaigns.SMS.Sent)
}
