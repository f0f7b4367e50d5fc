package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zyra-app/zyra-api/internal/domain"
)

// ReportName é o nome do relatório usado no título, no rodapé do PDF e
// nas notificações de exportação
const ReportName = "Zyra Analytics Report"

// RenderDelimited renderiza o relatório como texto delimitado (CSV).
// A saída é determinística para um mesmo (dataset, data): sem
// aleatoriedade e sem dependência de locale além do formato da data.
func RenderDelimited(dataset domain.ReportDataset, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s - %s\n", ReportName, now.Format("2006-01-02")))
	b.WriteString("\n")

	writeRow(&b, "KEY METRICS")
	writeRow(&b, "Metric", "Value", "Change", "Trend")
	for _, metric := range dataset.KeyMetrics {
		writeRow(&b, metric.Title, metric.Value, metric.Change, trendLabel(metric.Positive))
	}
	b.WriteString("\n")

	writeRow(&b, "PRODUCT PERFORMANCE")
	writeRow(&b, "Product Name", "Status", "SEO Status", "Performance")
	for _, product := range dataset.Products {
		// O painel exibe todo produto do catálogo como "Active" e um
		// percentual fixo de desempenho para produtos otimizados; os
		// consumidores do CSV atual dependem dessas strings literais.
		writeRow(&b, product.Name, "Active", optimizationLabel(product.IsOptimized), performanceLabel(product.IsOptimized))
	}
	b.WriteString("\n")

	writeRow(&b, "EMAIL CAMPAIGN PERFORMANCE")
	writeRow(&b, "Metric", "Value")
	writeRow(&b, "Delivered", dataset.EmailPerformance.Delivered)
	writeRow(&b, "Opened", dataset.EmailPerformance.Opened)
	writeRow(&b, "Clicked", dataset.EmailPerformance.Clicked)
	writeRow(&b, "Converted", dataset.EmailPerformance.Converted)
	b.WriteString("\n")

	writeRow(&b, "SMS CAMPAIGN PERFORMANCE")
	writeRow(&b, "Metric", "Value")
	writeRow(&b, "Sent", dataset.SMSPerformance.Sent)
	writeRow(&b, "Delivered", dataset.SMSPerformance.Delivered)
	writeRow(&b, "Clicked", dataset.SMSPerformance.Clicked)
	writeRow(&b, "Recovered", dataset.SMSPerformance.Recovered)
	b.WriteString("\n")

	writeRow(&b, "SEO PERFORMANCE")
	writeRow(&b, "Metric", "Value")
	writeRow(&b, "Optimized Products", strconv.Itoa(dataset.SEOPerformance.OptimizedProducts))
	writeRow(&b, "Ranking Improvement", dataset.SEOPerformance.RankingImprovement)
	writeRow(&b, "Organic Traffic", dataset.SEOPerformance.OrganicTraffic)
	writeRow(&b, "Keyword Rankings", dataset.SEOPerformance.KeywordRankings)

	return b.String()
}

// writeRow escreve uma linha com cada campo entre aspas duplas.
// Aspas e vírgulas embutidas nos valores NÃO são escapadas: os
// consumidores do CSV atual esperam os bytes exatamente assim, então a
// troca por um escape correto precisa ser coordenada com eles.
func writeRow(b *strings.Builder, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"`)
		b.WriteString(field)
		b.WriteString(`"`)
	}
	b.WriteString("\n")
}

func trendLabel(positive bool) string {
	if positive {
		return "Positive"
	}
	return "Negative"
}

func optimizationLabel(optimized bool) string {
	if optimized {
		return "Optimized"
	}
	return "Not optimized"
}

func performanceLabel(optimized bool) string {
	if optimized {
		return "+32%"
	}
	return "--"
}
