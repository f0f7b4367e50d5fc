package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/zyra-app/zyra-api/internal/domain"
)

// Constantes de layout do documento tabular. Larguras e margens são
// fixas, nunca calculadas a partir do conteúdo.
const (
	pageLeftMargin     = 14.0
	pageTopMargin      = 16.0
	pageBreakThreshold = 260.0 // A4 tem 297mm; reserva espaço para o rodapé
	headingHeight      = 8.0
	tableRowHeight     = 7.0
	sectionGap         = 6.0
)

type sectionColor struct {
	r, g, b int
}

// Uma cor de cabeçalho distinta por seção, apenas para agrupamento visual
var (
	colorKeyMetrics = sectionColor{79, 70, 229}
	colorProducts   = sectionColor{37, 99, 235}
	colorEmail      = sectionColor{22, 163, 74}
	colorSMS        = sectionColor{234, 88, 12}
	colorSEO        = sectionColor{13, 148, 136}
)

// TabularDocument é o documento paginado produzido pelo renderizador
// tabular. Truncated indica que uma seção falhou e o documento contém
// um aviso visível no ponto da falha em vez das seções restantes.
type TabularDocument struct {
	pdf       *gofpdf.Fpdf
	Truncated bool
	Notice    string
}

// Output grava os bytes do PDF no writer informado
func (d *TabularDocument) Output(w io.Writer) error {
	return d.pdf.Output(w)
}

// PageCount retorna o número de páginas do documento
func (d *TabularDocument) PageCount() int {
	return d.pdf.PageCount()
}

// tabularLayout é o motor de layout do documento: mantém o cursor
// vertical e decide explicitamente as quebras de página. A decisão de
// quebra nunca é delegada a callbacks da biblioteca de PDF.
type tabularLayout struct {
	pdf    *gofpdf.Fpdf
	cursor float64
}

func (l *tabularLayout) ensureRoom(blockHeight float64) {
	if l.cursor+blockHeight > pageBreakThreshold {
		l.pdf.AddPage()
		l.cursor = pageTopMargin
	}
}

// table renderiza um bloco tabular completo: título da seção, linha de
// cabeçalho colorida e uma linha de grade por registro
func (l *tabularLayout) table(
	title string,
	color sectionColor,
	widths []float64,
	header []string,
	rows [][]string,
) error {
	if len(header) != len(widths) {
		return fmt.Errorf("cabeçalho com %d colunas, esperado %d", len(header), len(widths))
	}

	blockHeight := headingHeight + tableRowHeight*float64(len(rows)+1)
	l.ensureRoom(blockHeight)

	l.pdf.SetXY(pageLeftMargin, l.cursor)
	l.pdf.SetFont("Helvetica", "B", 12)
	l.pdf.SetTextColor(33, 37, 41)
	l.pdf.CellFormat(0, headingHeight, title, "", 0, "L", false, 0, "")
	l.cursor += headingHeight + 1

	l.pdf.SetXY(pageLeftMargin, l.cursor)
	l.pdf.SetFont("Helvetica", "B", 9)
	l.pdf.SetFillColor(color.r, color.g, color.b)
	l.pdf.SetTextColor(255, 255, 255)
	for i, cell := range header {
		l.pdf.CellFormat(widths[i], tableRowHeight, cell, "1", 0, "L", true, 0, "")
	}
	l.cursor += tableRowHeight

	l.pdf.SetFont("Helvetica", "", 9)
	l.pdf.SetTextColor(33, 37, 41)

	for _, row := range rows {
		if len(row) != len(widths) {
			return fmt.Errorf("linha com %d colunas, esperado %d", len(row), len(widths))
		}

		// Tabelas maiores que uma página quebram linha a linha
		if l.cursor+tableRowHeight > pageBreakThreshold {
			l.pdf.AddPage()
			l.cursor = pageTopMargin
		}

		l.pdf.SetXY(pageLeftMargin, l.cursor)
		for i, cell := range row {
			l.pdf.CellFormat(widths[i], tableRowHeight, cell, "1", 0, "L", false, 0, "")
		}
		l.cursor += tableRowHeight
	}

	l.cursor += sectionGap

	return nil
}

// notice escreve um aviso visível de erro no ponto atual do documento
func (l *tabularLayout) notice(message string) {
	l.ensureRoom(headingHeight * 2)

	l.pdf.SetXY(pageLeftMargin, l.cursor)
	l.pdf.SetFont("Helvetica", "B", 10)
	l.pdf.SetTextColor(185, 28, 28)
	l.pdf.MultiCell(0, headingHeight, message, "1", "L", false)
	l.cursor = l.pdf.GetY() + sectionGap
}

// RenderTabular renderiza o relatório como documento PDF paginado.
//
// Política de degradação: se a renderização de um bloco falhar, o
// documento não é abortado. O bloco com falha e as seções seguintes são
// descartados, um aviso visível é inserido no ponto da falha e um
// documento válido (parcial) ainda é retornado.
func RenderTabular(dataset domain.ReportDataset, now time.Time) *TabularDocument {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ReportName, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb} | %s", pdf.PageNo(), ReportName), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	layout := &tabularLayout{pdf: pdf, cursor: pageTopMargin}
	doc := &TabularDocument{pdf: pdf}

	renderTitleBlock(layout, now)

	sections := []struct {
		name   string
		render func(*tabularLayout, domain.ReportDataset) error
	}{
		{"Key Metrics", renderKeyMetricsSection},
		{"Product Performance", renderProductSection},
		{"Email Campaign Performance", renderEmailSection},
		{"SMS Campaign Performance", renderSMSSection},
		{"SEO Performance", renderSEOSection},
	}

	for _, section := range sections {
		if err := renderSectionGuarded(layout, dataset, section.render); err != nil {
			doc.Truncated = true
			doc.Notice = fmt.Sprintf(
				"Could not render the %q section (%v). The remaining report sections were omitted.",
				section.name, err,
			)
			layout.notice(doc.Notice)
			break
		}
	}

	return doc
}

// renderSectionGuarded converte qualquer panic da rotina de layout em
// erro, para que um bloco malformado nunca derrube o documento inteiro
func renderSectionGuarded(
	layout *tabularLayout,
	dataset domain.ReportDataset,
	render func(*tabularLayout, domain.ReportDataset) error,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("falha inesperada ao renderizar o bloco: %v", r)
		}
	}()

	return render(layout, dataset)
}

func renderTitleBlock(l *tabularLayout, now time.Time) {
	l.pdf.SetXY(pageLeftMargin, l.cursor)
	l.pdf.SetFont("Helvetica", "B", 18)
	l.pdf.SetTextColor(33, 37, 41)
	l.pdf.CellFormat(0, 10, ReportName, "", 0, "L", false, 0, "")
	l.cursor += 10

	l.pdf.SetXY(pageLeftMargin, l.cursor)
	l.pdf.SetFont("Helvetica", "", 10)
	l.pdf.SetTextColor(107, 114, 128)
	l.pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", now.Format("2006-01-02 15:04")), "", 0, "L", false, 0, "")
	l.cursor += 6 + sectionGap
}

func renderKeyMetricsSection(l *tabularLayout, dataset domain.ReportDataset) error {
	rows := make([][]string, 0, len(dataset.KeyMetrics))
	for _, metric := range dataset.KeyMetrics {
		rows = append(rows, []string{metric.Title, metric.Value, metric.Change, trendLabel(metric.Positive)})
	}

	return l.table(
		"Key Metrics",
		colorKeyMetrics,
		[]float64{62, 40, 40, 40},
		[]string{"Metric", "Value", "Change", "Trend"},
		rows,
	)
}

func renderProductSection(l *tabularLayout, dataset domain.ReportDataset) error {
	rows := make([][]string, 0, len(dataset.Products))
	for _, product := range dataset.Products {
		// Um produto sem nome indica entrada malformada do catálogo;
		// a política de degradação do documento assume a partir daqui
		if product.Name == "" {
			return fmt.Errorf("produto %q sem nome", product.ID)
		}

		rows = append(rows, []string{
			product.Name,
			"Active",
			optimizationLabel(product.IsOptimized),
			performanceLabel(product.IsOptimized),
		})
	}

	return l.table(
		"Product Performance",
		colorProducts,
		[]float64{62, 40, 40, 40},
		[]string{"Product Name", "Status", "SEO Status", "Performance"},
		rows,
	)
}

// As tabelas de e-mail e SMS usam a grade estreita de duas colunas para
// deixar espaço ao lado, espelhando o layout do painel
func renderEmailSection(l *tabularLayout, dataset domain.ReportDataset) error {
	return l.table(
		"Email Campaign Performance",
		colorEmail,
		[]float64{60, 60},
		[]string{"Metric", "Value"},
		[][]string{
			{"Delivered", dataset.EmailPerformance.Delivered},
			{"Opened", dataset.EmailPerformance.Opened},
			{"Clicked", dataset.EmailPerformance.Clicked},
			{"Converted", dataset.EmailPerformance.Converted},
		},
	)
}

func renderSMSSection(l *tabularLayout, dataset domain.ReportDataset) error {
	return l.table(
		"SMS Campaign Performance",
		colorSMS,
		[]float64{60, 60},
		[]string{"Metric", "Value"},
		[][]string{
			{"Sent", dataset.SMSPerformance.Sent},
			{"Delivered", dataset.SMSPerformance.Delivered},
			{"Clicked", dataset.SMSPerformance.Clicked},
			{"Recovered", dataset.SMSPerformance.Recovered},
		},
	)
}

func renderSEOSection(l *tabularLayout, dataset domain.ReportDataset) error {
	return l.table(
		"SEO Performance",
		colorSEO,
		[]float64{60, 60},
		[]string{"Metric", "Value"},
		[][]string{
			{"Optimized Products", fmt.Sprintf("%d", dataset.SEOPerformance.OptimizedProducts)},
			{"Ranking Improvement", dataset.SEOPerformance.RankingImprovement},
			{"Organic Traffic", dataset.SEOPerformance.OrganicTraffic},
			{"Keyword Rankings", dataset.SEOPerformance.KeywordRankings},
		},
	)
}
