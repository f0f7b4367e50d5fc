package reporting

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHTTP(t *testing.T) {
	result := &ExportResult{
		Filename:    "Zyra_Report_20260315.csv",
		ContentType: "text/csv; charset=utf-8",
		Content:     []byte("\"KEY METRICS\"\n"),
	}

	recorder := httptest.NewRecorder()
	require.NoError(t, WriteHTTP(recorder, result))

	assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Zyra_Report_20260315.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "15", recorder.Header().Get("Content-Length"))
	assert.Equal(t, "\"KEY METRICS\"\n", recorder.Body.String())
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	result := &ExportResult{
		Filename:    "Zyra_Report_20260315.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.3 fake"),
	}

	// O diretório de destino ainda não existe e deve ser criado
	path, err := WriteFile(dir, result)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Zyra_Report_20260315.pdf"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.Content, content)
}

func TestWriteFile_OverwritesSameDayExport(t *testing.T) {
	dir := t.TempDir()

	first := &ExportResult{Filename: "Zyra_Report_20260315.csv", Content: []byte("primeira")}
	second := &ExportResult{Filename: "Zyra_Report_20260315.csv", Content: []byte("segunda")}

	_, err := WriteFile(dir, first)
	require.NoError(t, err)

	path, err := WriteFile(dir, second)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("segunda"), content)
}
