package reporting

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/pkg/log"
)

var (
	// ErrExportInProgress indica que já existe uma exportação em
	// andamento para o mesmo formato. É um bloqueio consultivo por
	// formato: formatos independentes exportam em paralelo.
	ErrExportInProgress = errors.New("já existe uma exportação em andamento para este formato")
)

// ExportResult é o arquivo renderizado, pronto para entrega
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Service struct {
	metrics       MetricSource
	products      ProductSource
	campaigns     CampaignSource
	notifications NotificationRecorder

	now func() time.Time

	mu        sync.Mutex
	exporting map[Format]bool
}

func NewService(
	metrics MetricSource,
	products ProductSource,
	campaigns CampaignSource,
	notifications NotificationRecorder,
) *Service {
	return &Service{
		metrics:       metrics,
		products:      products,
		campaigns:     campaigns,
		notifications: notifications,
		now:           time.Now,
		exporting:     make(map[Format]bool),
	}
}

// Export executa o pipeline completo para o formato informado: monta o
// dataset, renderiza e devolve o arquivo pronto para entrega. Cada
// invocação é independente e constrói um dataset novo.
func (s *Service) Export(format Format) (*ExportResult, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	if !s.begin(format) {
		return nil, ErrExportInProgress
	}
	// O estado de exportação é sempre limpo, mesmo em falha
	defer s.end(format)

	dataset, err := s.buildDataset()
	if err != nil {
		return nil, err
	}

	now := s.now()
	filename := BuildFilename(format, now)

	result := &ExportResult{Filename: filename}

	switch format {
	case FormatCSV:
		result.Content = []byte(RenderDelimited(dataset, now))
		result.ContentType = "text/csv; charset=utf-8"

	case FormatPDF:
		doc := RenderTabular(dataset, now)
		if doc.Truncated {
			log.L.WithFields(log.Fields{
				"filename": filename,
				"notice":   doc.Notice,
			}).Warn("report-export: relatório PDF gerado parcialmente")
		}

		var buf bytes.Buffer
		if err := doc.Output(&buf); err != nil {
			return nil, fmt.Errorf("erro ao gerar o PDF do relatório: %w", err)
		}

		result.Content = buf.Bytes()
		result.ContentType = "application/pdf"
	}

	if s.notifications != nil {
		// A notificação não pode derrubar uma exportação bem-sucedida
		if err := s.notifications.RecordExport(filename); err != nil {
			log.L.WithError(err).WithField("filename", filename).
				Warn("report-export: erro ao registrar notificação de exportação")
		}
	}

	log.L.WithFields(log.Fields{
		"filename": filename,
		"format":   string(format),
		"bytes":    len(result.Content),
		"products": len(dataset.Products),
	}).Info("report-export: relatório exportado com sucesso")

	return result, nil
}

// Preview retorna o dataset do relatório sem renderizá-lo
func (s *Service) Preview() (*domain.ReportDataset, error) {
	dataset, err := s.buildDataset()
	if err != nil {
		return nil, err
	}

	return &dataset, nil
}

func (s *Service) buildDataset() (domain.ReportDataset, error) {
	metrics, err := s.metrics.DashboardMetrics()
	if err != nil {
		return domain.ReportDataset{}, fmt.Errorf("erro ao obter métricas do painel: %w", err)
	}

	products, err := s.products.ListProducts()
	if err != nil {
		return domain.ReportDataset{}, fmt.Errorf("erro ao obter produtos do catálogo: %w", err)
	}

	campaigns := DefaultCampaignPerformance()
	if s.campaigns != nil {
		campaigns = s.campaigns.CampaignPerformance()
	}

	return BuildReportDataset(metrics, products, campaigns), nil
}

func (s *Service) begin(format Format) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exporting[format] {
		return false
	}

	s.exporting[format] = true
	return true
}

func (s *Service) end(format Format) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.exporting, format)
}
