package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

const (
	monthlySalesSnapshotTable = "monthly_sales_snapshot mss"
)

type MonthlySalesSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []*domain.MonthlySalesSnapshot) error
	ListBySource(ctx context.Context, source string) ([]*domain.MonthlySalesSnapshot, error)
}

type monthlySalesSnapshotRepository struct {
	conn postgres.Conn
}

func NewMonthlySalesSnapshotRepository(conn postgres.Conn) MonthlySalesSnapshotRepository {
	return &monthlySalesSnapshotRepository{
		conn: conn,
	}
}

func buildUpsertSnapshotsQuery(snapshots []*domain.MonthlySalesSnapshot) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert("monthly_sales_snapshot").
		Columns(
			"period",
			"source",
			"total_revenue",
			"average_ticket",
			"transactions",
			"unique_customers",
			"unique_products",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, snapshot := range snapshots {
		query = query.Values(
			snapshot.Period,
			snapshot.Source,
			snapshot.TotalRevenue,
			snapshot.AverageTicket,
			snapshot.Transactions,
			snapshot.UniqueCustomers,
			snapshot.UniqueProducts,
		)
	}

	// Um resumo por período e fonte
	query = query.Suffix(`
		ON CONFLICT (period, source) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			average_ticket = EXCLUDED.average_ticket,
			transactions = EXCLUDED.transactions,
			unique_customers = EXCLUDED.unique_customers,
			unique_products = EXCLUDED.unique_products,
			updated_at = CURRENT_TIMESTAMP
	`)

	return query.ToSql()
}

func (r *monthlySalesSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.MonthlySalesSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	sqlQuery, args, err := buildUpsertSnapshotsQuery(snapshots)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *monthlySalesSnapshotRepository) ListBySource(ctx context.Context, source string) ([]*domain.MonthlySalesSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"mss.id",
			"mss.period",
			"mss.source",
			"mss.total_revenue",
			"mss.average_ticket",
			"mss.transactions",
			"mss.unique_customers",
			"mss.unique_products",
			"mss.created_at",
			"mss.updated_at",
		).
		From(monthlySalesSnapshotTable).
		Where(squirrel.Eq{"mss.source": source}).
		OrderBy("to_date(mss.period, 'MM/YYYY') ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MonthlySalesSnapshot, 0)
	for rows.Next() {
		item := &domain.MonthlySalesSnapshot{}
		err := rows.Scan(
			&item.ID,
			&item.Period,
			&item.Source,
			&item.TotalRevenue,
			&item.AverageTicket,
			&item.Transactions,
			&item.UniqueCustomers,
			&item.UniqueProducts,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo mensal: %w", err)
		}
		snapshots = append(snapshots, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
