package reporting

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// WriteHTTP entrega o relatório renderizado como download na resposta
// HTTP, com o content type e o nome de arquivo do resultado
func WriteHTTP(w http.ResponseWriter, result *ExportResult) error {
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))

	if _, err := w.Write(result.Content); err != nil {
		return fmt.Errorf("erro ao escrever o relatório na resposta: %w", err)
	}

	return nil
}

// WriteFile grava o relatório renderizado no diretório informado e
// retorna o caminho completo. O handle do arquivo é liberado em todos
// os caminhos de saída.
func WriteFile(dir string, result *ExportResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de relatórios: %w", err)
	}

	path := filepath.Join(dir, result.Filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar o arquivo do relatório: %w", err)
	}

	if _, err := f.Write(result.Content); err != nil {
		f.Close()
		return "", fmt.Errorf("erro ao gravar o relatório: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("erro ao fechar o arquivo do relatório: %w", err)
	}

	return path, nil
}
