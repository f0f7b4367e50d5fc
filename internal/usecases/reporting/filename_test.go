package reporting

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilename(t *testing.T) {
	now := time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "Zyra_Report_20260305.csv", BuildFilename(FormatCSV, now))
	assert.Equal(t, "Zyra_Report_20260305.pdf", BuildFilename(FormatPDF, now))
}

func TestBuildFilename_SameInstantDiffersOnlyByExtension(t *testing.T) {
	now := time.Date(2026, 12, 31, 8, 0, 0, 0, time.UTC)

	csvName := BuildFilename(FormatCSV, now)
	pdfName := BuildFilename(FormatPDF, now)

	assert.Equal(t, csvName[:len(csvName)-3], pdfName[:len(pdfName)-3])

	pattern := regexp.MustCompile(`^Zyra_Report_\d{8}\.(csv|pdf)$`)
	assert.Regexp(t, pattern, csvName)
	assert.Regexp(t, pattern, pdfName)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "csv", expected: FormatCSV},
		{input: "pdf", expected: FormatPDF},
		{input: "", wantErr: true},
		{input: "CSV", wantErr: true},
		{input: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
