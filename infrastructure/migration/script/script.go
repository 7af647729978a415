package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/datasource/file"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

// Tabelas usadas pela fonte postgres e pelos resumos mensais
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales (
		id VARCHAR(16) PRIMARY KEY,
		customer_id VARCHAR(64) NOT NULL,
		product VARCHAR(255) NOT NULL,
		category VARCHAR(128) NOT NULL,
		sale_date DATE NOT NULL,
		amount NUMERIC(14, 2) NOT NULL CHECK (amount >= 0),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		region VARCHAR(32) NOT NULL,
		channel VARCHAR(16) NOT NULL,
		tax_id VARCHAR(20) NOT NULL DEFAULT '',
		sex CHAR(1) NOT NULL,
		age_bracket VARCHAR(8) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS sales_sale_date_idx ON sales (sale_date)`,
	`CREATE TABLE IF NOT EXISTS monthly_sales_snapshot (
		id BIGSERIAL PRIMARY KEY,
		period VARCHAR(7) NOT NULL,
		source VARCHAR(255) NOT NULL,
		total_revenue NUMERIC(16, 2) NOT NULL,
		average_ticket NUMERIC(14, 2) NOT NULL,
		transactions INTEGER NOT NULL,
		unique_customers INTEGER NOT NULL,
		unique_products INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT monthly_sales_snapshot_period_source_unique UNIQUE (period, source)
	)`,
}

func ensureSchema(ctx context.Context, conn *postgres.Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return err
			}
		}
		return nil
	})
}

func main() {
	filePath := flag.String("file", "", "arquivo CSV (separado por ';') ou JSON com as vendas")
	schemaOnly := flag.Bool("schema-only", false, "apenas cria as tabelas")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}
	log.Setup(cfg.App.LogLevel)
	logger := log.Component("import-script")

	if *filePath == "" && !*schemaOnly {
		*filePath = cfg.DataSource.FilePath
	}

	ctx := context.Background()

	logger.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if err := ensureSchema(ctx, conn); err != nil {
		logger.Fatalf("ERRO ao criar tabelas: %v", err)
	}
	logger.Info("Tabelas verificadas com sucesso")

	if *schemaOnly {
		return
	}

	startTime := time.Now()
	records, err := file.NewSource(*filePath).Fetch(ctx)
	if err != nil {
		logger.Fatalf("ERRO ao ler arquivo de vendas: %v", err)
	}
	logger.Infof("Total de %d vendas lidas para inserção", len(records))

	inserted, err := repository.NewSalesRepository(conn).SaveBatch(ctx, records)
	if err != nil {
		logger.Errorf("ERRO ao inserir vendas, transação revertida: %v", err)
		os.Exit(1)
	}

	logger.Infof("Carga concluída em %v! %d vendas inseridas", time.Since(startTime), inserted)
}
