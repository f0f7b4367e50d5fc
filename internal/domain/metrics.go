package domain

import "time"

// KeyMetric é uma métrica do painel já formatada para exibição.
// A ordem da lista é a ordem de exibição e deve ser preservada
// por todos os consumidores (painel e relatórios).
type KeyMetric struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Change   string `json:"change"`
	Positive bool   `json:"positive"`
}

// MetricSnapshot é o registro diário de uma métrica do painel
type MetricSnapshot struct {
	ID           string    `json:"id"`
	Metric       string    `json:"metric"`
	DisplayOrder int       `json:"display_order"`
	Value        string    `json:"value"`
	Change       string    `json:"change"`
	Positive     bool      `json:"positive"`
	SnapshotDate time.Time `json:"snapshot_date"`
	CreatedAt    time.Time `json:"created_at"`
}
