// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/utils"
)

const (
	salesTable = "sales"

	// Limite de linhas por INSERT para não estourar o máximo de parâmetros do Postgres
	salesInsertBatchSize = 500
)

var salesColumns = []string{
	"customer_id",
	"product",
	"category",
	"sale_date",
	"amount",
	"quantity",
	"region",
	"channel",
	"tax_id",
	"sex",
	"age_bracket",
}

type SalesRepository interface {
	ListSales(ctx context.Context, filters domain.FetchFilters) ([]domain.Sale, error)
	SaveBatch(ctx context.Context, sales []domain.Sale) (int, error)
}

type salesRepository struct {
	conn postgres.Conn
}

func NewSalesRepository(conn postgres.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func buildListSalesQuery(filters domain.FetchFilters) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(salesColumns...).
		From(salesTable).
		OrderBy("sale_date ASC", "created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": filters.StartDate.Format("2006-01-02")})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"sale_date": filters.EndDate.Format("2006-01-02")})
	}

	if filters.Channel != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"channel": string(*filters.Channel)})
	}

	if filters.Region != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"region": string(*filters.Region)})
	}

	return queryBuilder.ToSql()
}

func (r *salesRepository) ListSales(ctx context.Context, filters domain.FetchFilters) ([]domain.Sale, error) {
	sqlQuery, args, err := buildListSalesQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, *sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func buildInsertSalesQuery(sales []domain.Sale, generateID func() (string, error)) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns(append([]string{"id"}, salesColumns...)...).
		PlaceholderFormat(squirrel.Dollar)

	for _, sale := range sales {
		id, err := generateID()
		if err != nil {
			return "", nil, fmt.Errorf("erro ao gerar id da venda: %w", err)
		}

		query = query.Values(
			id,
			sale.CustomerID,
			sale.Product,
			sale.Category,
			sale.SaleDate,
			sale.Amount,
			sale.Quantity,
			string(sale.Region),
			string(sale.Channel),
			sale.TaxID,
			string(sale.Sex),
			string(sale.AgeBracket),
		)
	}

	return query.ToSql()
}

// SaveBatch insere as vendas em lotes dentro de uma única transação
func (r *salesRepository) SaveBatch(ctx context.Context, sales []domain.Sale) (int, error) {
	if len(sales) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(sales); start += salesInsertBatchSize {
			end := min(start+salesInsertBatchSize, len(sales))

			sqlQuery, args, err := buildInsertSalesQuery(sales[start:end], utils.GenerateRecordID)
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, sqlQuery, args...)
			if err != nil {
				return fmt.Errorf("erro ao inserir vendas %d a %d: %w", start+1, end, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	var region, channel, sex, bracket string
	err := rows.Scan(
		&sale.CustomerID,
		&sale.Product,
		&sale.Category,
		&sale.SaleDate,
		&sale.Amount,
		&sale.Quantity,
		&region,
		&channel,
		&sale.TaxID,
		&sex,
		&bracket,
	)
	if err != nil {
		return nil, err
	}

	sale.Region = domain.Region(region)
	sale.Channel = domain.Channel(channel)
	sale.Sex = domain.Sex(sex)
	sale.AgeBracket = domain.AgeBracket(bracket)

	return sale, nil
}
