package reporting

import (
	"fmt"
	"time"
)

// Format é o formato de saída de uma exportação de relatório
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat valida o formato informado pelo cliente
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("formato de exportação não suportado: %q", s)
}

// BuildFilename monta o nome determinístico do arquivo exportado:
// Zyra_Report_<YYYYMMDD>.<formato>. Não há tratamento de colisão:
// exportações repetidas no mesmo dia sobrescrevem por convenção.
func BuildFilename(format Format, now time.Time) string {
	return fmt.Sprintf("Zyra_Report_%s.%s", now.Format("20060102"), format)
}
