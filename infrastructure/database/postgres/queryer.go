package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Queryer permite que os repositórios escrevam tanto no pool quanto numa transação aberta
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Códigos SQLSTATE tratados pelos repositórios
const (
	UniqueViolation = "23505" // email duplicado
	CheckViolation  = "23514" // ex.: sales.amount >= 0
)

// IsViolation informa se err (ou algum erro embrulhado) é um *pq.Error com o código dado
func IsViolation(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
