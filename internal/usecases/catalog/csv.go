package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/pkg/log"
)

// Colunas esperadas no CSV de importação de catálogo
var importHeader = []string{"name", "category", "price", "status", "is_optimized"}

// ImportCSV processa um CSV de catálogo linha a linha. Linhas inválidas
// são rejeitadas individualmente com o motivo; as válidas são inseridas.
func (s *Service) ImportCSV(data []byte) (*domain.ImportResult, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("arquivo CSV vazio")
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do CSV: %w", err)
	}

	if err := validateImportHeader(header); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Errors: []domain.ImportRowError{}}
	seenNames := make(map[string]int)

	for rowNumber := 2; ; rowNumber++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.TotalRows++
			result.AppendError(rowNumber, fmt.Sprintf("linha malformada: %v", err))
			continue
		}

		result.TotalRows++

		req, err := parseImportRow(record)
		if err != nil {
			result.AppendError(rowNumber, err.Error())
			continue
		}

		if previousRow, seen := seenNames[strings.ToLower(req.Name)]; seen {
			result.AppendError(rowNumber, fmt.Sprintf("nome duplicado com a linha %d", previousRow))
			continue
		}
		seenNames[strings.ToLower(req.Name)] = rowNumber

		if _, err := s.CreateProduct(req); err != nil {
			result.AppendError(rowNumber, err.Error())
			continue
		}

		result.ImportedCount++
	}

	log.L.WithFields(log.Fields{
		"total_rows": result.TotalRows,
		"imported":   result.ImportedCount,
		"errors":     result.ErrorsCount,
	}).Info("catalog: importação de CSV concluída")

	return result, nil
}

// ExportCSV exporta o catálogo completo como CSV (com escape correto,
// diferente do CSV de relatório que preserva o formato legado)
func (s *Service) ExportCSV() ([]byte, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"id", "name", "category", "price", "status", "is_optimized", "created_at"}); err != nil {
		return nil, err
	}

	for _, product := range products {
		category := ""
		if product.Category != nil {
			category = *product.Category
		}

		price := ""
		if product.Price != nil {
			price = strconv.FormatFloat(*product.Price, 'f', 2, 64)
		}

		record := []string{
			product.ID,
			product.Name,
			category,
			price,
			string(product.Status),
			strconv.FormatBool(product.IsOptimized),
			product.CreatedAt.Format(time.RFC3339),
		}

		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func validateImportHeader(header []string) error {
	if len(header) != len(importHeader) {
		return fmt.Errorf("cabeçalho do CSV inválido: esperado %s", strings.Join(importHeader, ","))
	}

	for i, column := range header {
		if !strings.EqualFold(strings.TrimSpace(column), importHeader[i]) {
			return fmt.Errorf("coluna %d do CSV inválida: esperado %q, recebido %q", i+1, importHeader[i], column)
		}
	}

	return nil
}

func parseImportRow(record []string) (*domain.CreateProductRequest, error) {
	if len(record) != len(importHeader) {
		return nil, fmt.Errorf("esperadas %d colunas, recebidas %d", len(importHeader), len(record))
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, ErrMissingName
	}

	req := &domain.CreateProductRequest{Name: name}

	if category := strings.TrimSpace(record[1]); category != "" {
		req.Category = &category
	}

	if rawPrice := strings.TrimSpace(record[2]); rawPrice != "" {
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("preço inválido: %q", rawPrice)
		}
		if price < 0 {
			return nil, fmt.Errorf("preço negativo: %q", rawPrice)
		}
		req.Price = &price
	}

	if status := strings.TrimSpace(record[3]); status != "" {
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("status inválido: %q", status)
		}
		req.Status = &status
	}

	if rawOptimized := strings.TrimSpace(record[4]); rawOptimized != "" {
		optimized, err := strconv.ParseBool(rawOptimized)
		if err != nil {
			return nil, fmt.Errorf("valor de is_optimized inválido: %q", rawOptimized)
		}
		req.IsOptimized = &optimized
	}

	return req, nil
}
