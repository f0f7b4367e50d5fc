package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações de consulta usado pelos repositórios
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
