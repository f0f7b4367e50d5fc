package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/zyra-app/zyra-api/infrastructure/database/postgres"
	"github.com/zyra-app/zyra-api/internal/domain"
)

//go:generate mockgen -source=metric_snapshot.go -destination=mocks/metric_snapshot.go -package=mocks

const (
	metricSnapshotsTable = "metric_snapshots ms"
)

type MetricSnapshotRepository interface {
	// GetLatest retorna a última fotografia de cada métrica, na ordem de exibição
	GetLatest() ([]*domain.MetricSnapshot, error)
	// GetByDate retorna as fotografias de um dia específico, na ordem de exibição
	GetByDate(date time.Time) ([]*domain.MetricSnapshot, error)
	SaveOrUpdate(snapshots []*domain.MetricSnapshot) error
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

func (r *metricSnapshotRepository) GetLatest() ([]*domain.MetricSnapshot, error) {
	// DISTINCT ON mantém apenas a fotografia mais recente de cada métrica
	sqlQuery, args, err := squirrel.
		Select(
			"DISTINCT ON (ms.metric) ms.id",
			"ms.metric",
			"ms.display_order",
			"ms.value",
			"ms.change",
			"ms.positive",
			"ms.snapshot_date",
			"ms.created_at",
		).
		From(metricSnapshotsTable).
		OrderBy("ms.metric", "ms.snapshot_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(sqlQuery, args...)
}

func (r *metricSnapshotRepository) GetByDate(date time.Time) ([]*domain.MetricSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"ms.id",
			"ms.metric",
			"ms.display_order",
			"ms.value",
			"ms.change",
			"ms.positive",
			"ms.snapshot_date",
			"ms.created_at",
		).
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.snapshot_date": date.Format("2006-01-02")}).
		OrderBy("ms.display_order ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(sqlQuery, args...)
}

// SaveOrUpdate grava o lote de fotografias em uma única transação: o
// conjunto de métricas de um dia entra completo ou não entra
func (r *metricSnapshotRepository) SaveOrUpdate(snapshots []*domain.MetricSnapshot) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, snapshot := range snapshots {
			sqlQuery, args, err := squirrel.
				Insert("metric_snapshots").
				Columns("id", "metric", "display_order", "value", "change", "positive", "snapshot_date", "created_at").
				Values(
					snapshot.ID,
					snapshot.Metric,
					snapshot.DisplayOrder,
					snapshot.Value,
					snapshot.Change,
					snapshot.Positive,
					snapshot.SnapshotDate.Format("2006-01-02"),
					time.Now(),
				).
				Suffix(`ON CONFLICT (metric, snapshot_date) DO UPDATE SET
					value = EXCLUDED.value,
					change = EXCLUDED.change,
					positive = EXCLUDED.positive,
					display_order = EXCLUDED.display_order`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao salvar fotografia da métrica %s: %w", snapshot.Metric, err)
			}
		}

		return nil
	})
}

func (r *metricSnapshotRepository) querySnapshots(sqlQuery string, args ...interface{}) ([]*domain.MetricSnapshot, error) {
	rows, err := r.conn.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)

	for rows.Next() {
		snapshot := &domain.MetricSnapshot{}

		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.Metric,
			&snapshot.DisplayOrder,
			&snapshot.Value,
			&snapshot.Change,
			&snapshot.Positive,
			&snapshot.SnapshotDate,
			&snapshot.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fotografia de métrica: %w", err)
		}

		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
