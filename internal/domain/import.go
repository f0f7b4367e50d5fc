package domain

// ImportRowError descreve a falha de uma linha específica do CSV importado
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult resume o resultado de uma importação de catálogo via CSV
type ImportResult struct {
	TotalRows     int              `json:"total_rows"`
	ImportedCount int              `json:"imported_count"`
	ErrorsCount   int              `json:"errors_count"`
	Errors        []ImportRowError `json:"errors,omitempty"`
}

// AppendError registra a falha de uma linha e atualiza o contador
func (r *ImportResult) AppendError(row int, message string) {
	r.Errors = append(r.Errors, ImportRowError{Row: row, Message: message})
	r.ErrorsCount++
}
