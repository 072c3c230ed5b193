package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

const (
	salesTable   = "sales"
	saleColumns  = "id, user_id, date, amount, product, region, customer, margin, created_at"
	maxBatchRows = 500
)

// ErrInvalidSale indica que o banco rejeitou uma venda por restrição de valor
var ErrInvalidSale = errors.New("venda rejeitada pelo banco")

type SaleRepository interface {
	// ListSales retorna as vendas do usuário a partir de since, em ordem crescente de data
	ListSales(ctx context.Context, userID int, since time.Time) ([]domain.SaleRecord, error)
	CreateSale(ctx context.Context, sale *domain.SaleRecord) error
	// CreateBatch grava todas as vendas em uma única transação
	CreateBatch(ctx context.Context, sales []domain.SaleRecord) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListSales(ctx context.Context, userID int, since time.Time) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(saleColumns).
		From(salesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": since}).
		OrderBy("date ASC", "created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.SaleRecord, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *domain.SaleRecord) error {
	return r.insert(ctx, r.conn, []domain.SaleRecord{*sale})
}

func (r *saleRepository) CreateBatch(ctx context.Context, sales []domain.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(sales); start += maxBatchRows {
			end := min(start+maxBatchRows, len(sales))
			if err := r.insert(ctx, tx, sales[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) insert(ctx context.Context, q postgres.Queryer, sales []domain.SaleRecord) error {
	builder := squirrel.
		Insert(salesTable).
		Columns("id", "user_id", "date", "amount", "product", "region", "customer", "margin").
		PlaceholderFormat(squirrel.Dollar)

	for _, sale := range sales {
		builder = builder.Values(
			sale.ID,
			sale.UserID,
			sale.Date,
			sale.Amount,
			sale.Product,
			sale.Region,
			sale.Customer,
			sale.Margin,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		if postgres.IsViolation(err, postgres.CheckViolation) {
			return fmt.Errorf("%w: %v", ErrInvalidSale, err)
		}
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanSale(rows *sql.Rows) (domain.SaleRecord, error) {
	var sale domain.SaleRecord
	var margin sql.NullFloat64

	err := rows.Scan(
		&sale.ID,
		&sale.UserID,
		&sale.Date,
		&sale.Amount,
		&sale.Product,
		&sale.Region,
		&sale.Customer,
		&margin,
		&sale.CreatedAt,
	)
	if err != nil {
		return domain.SaleRecord{}, err
	}

	if margin.Valid {
		sale.Margin = &margin.Float64
	}

	return sale, nil
}
