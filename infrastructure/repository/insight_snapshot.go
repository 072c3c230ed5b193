package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
)

const (
	insightSnapshotsTable   = "insight_snapshots"
	insightSnapshotsColumns = "id, user_id, date, time_range, kpis, insight, created_at, updated_at"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type InsightSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.InsightSnapshot) error
	GetByDateRange(ctx context.Context, userID int, startDate, endDate time.Time) ([]*domain.InsightSnapshot, error)
	// DeleteOlderThan remove os snapshots com data anterior a cutoff (comparando apenas a data)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type insightSnapshotRepository struct {
	conn *postgres.Connection
}

func NewInsightSnapshotRepository(conn *postgres.Connection) InsightSnapshotRepository {
	return &insightSnapshotRepository{
		conn: conn,
	}
}

func (r *insightSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.InsightSnapshot) error {
	kpisJSON, err := marshalNullable(snapshot.KPIs != nil, snapshot.KPIs)
	if err != nil {
		return fmt.Errorf("erro ao serializar KPIs para JSON: %w", err)
	}

	insightJSON, err := marshalNullable(snapshot.Insight != nil, snapshot.Insight)
	if err != nil {
		return fmt.Errorf("erro ao serializar Insight para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(insightSnapshotsTable).
		Columns("user_id", "date", "time_range", "kpis", "insight").
		Values(
			snapshot.UserID,
			snapshot.Date.Format(time.DateOnly),
			string(snapshot.TimeRange),
			kpisJSON,
			insightJSON,
		).
		Suffix(`
			ON CONFLICT (user_id, date) DO UPDATE SET
				time_range = EXCLUDED.time_range,
				kpis = EXCLUDED.kpis,
				insight = EXCLUDED.insight,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *insightSnapshotRepository) GetByDateRange(ctx context.Context, userID int, startDate, endDate time.Time) ([]*domain.InsightSnapshot, error) {
	builder := squirrel.
		Select(insightSnapshotsColumns).
		From(insightSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !startDate.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)})
	}
	if !endDate.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.InsightSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *insightSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cutoffDate := cutoff.Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(insightSnapshotsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanSnapshot(rows *sql.Rows) (*domain.InsightSnapshot, error) {
	snapshot := &domain.InsightSnapshot{}
	var kpisJSON, insightJSON []byte
	var timeRange string

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.Date,
		&timeRange,
		&kpisJSON,
		&insightJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	snapshot.TimeRange = domain.TimeRange(timeRange)

	if kpisJSON != nil {
		snapshot.KPIs = &domain.KPISummary{}
		if err := json.Unmarshal(kpisJSON, snapshot.KPIs); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de kpis: %w", err)
		}
	}

	if insightJSON != nil {
		snapshot.Insight = &domain.Insight{}
		if err := json.Unmarshal(insightJSON, snapshot.Insight); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de insight: %w", err)
		}
	}

	return snapshot, nil
}

// marshalNullable grava NULL na coluna JSONB quando o valor não existe
func marshalNullable(present bool, v any) ([]byte, error) {
	if !present {
		return nil, nil
	}
	return json.Marshal(v)
}
