package main

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/vfg2006/sales-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/internal/config"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

const seedDays = 60

var schema = []struct {
	name string
	ddl  string
}{
	{
		name: "users",
		ddl: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			lastname VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			company VARCHAR(255),
			active BOOLEAN NOT NULL DEFAULT TRUE,
			role_id INTEGER NOT NULL DEFAULT 3,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "sales",
		ddl: `CREATE TABLE IF NOT EXISTS sales (
			id VARCHAR(32) PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date TIMESTAMPTZ NOT NULL,
			amount NUMERIC(14, 2) NOT NULL CHECK (amount >= 0 AND amount <> 'NaN'),
			product VARCHAR(255) NOT NULL,
			region VARCHAR(100) NOT NULL,
			customer VARCHAR(255) NOT NULL,
			margin NUMERIC(14, 2) CHECK (margin <> 'NaN'),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "sales_user_date_idx",
		ddl:  `CREATE INDEX IF NOT EXISTS sales_user_date_idx ON sales (user_id, date)`,
	},
	{
		name: "insight_snapshots",
		ddl: `CREATE TABLE IF NOT EXISTS insight_snapshots (
			id BIGSERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			time_range VARCHAR(20) NOT NULL,
			kpis JSONB,
			insight JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, date)
		)`,
	},
}

var (
	seedRegions   = []string{"North", "South", "East", "West"}
	seedProducts  = []string{"Widget", "Gadget", "Gizmo"}
	seedCustomers = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"}
)

func main() {
	log.Setup("info")
	log.L.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := conn.RunInTransaction(ctx, createSchema); err != nil {
		log.L.WithError(err).Fatal("Erro ao criar o schema")
	}
	log.L.Infof("Schema criado em %v", time.Since(startTime))

	// SEED_DEMO_USER_ID popula vendas de exemplo para um usuário existente
	if raw := os.Getenv("SEED_DEMO_USER_ID"); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil {
			log.L.WithError(err).Fatalf("SEED_DEMO_USER_ID inválido: %q", raw)
		}

		if err := seedSales(ctx, repository.NewSaleRepository(conn), userID, time.Now()); err != nil {
			log.L.WithError(err).Fatal("Erro ao popular vendas de exemplo")
		}
	}

	log.L.Info("Migração concluída")
}

func createSchema(tx *sql.Tx) error {
	for _, step := range schema {
		if _, err := tx.Exec(step.ddl); err != nil {
			log.L.WithError(err).Errorf("ERRO ao criar %s", step.name)
			return err
		}
		log.L.Infof("%s ok", step.name)
	}
	return nil
}

func seedSales(ctx context.Context, repo repository.SaleRepository, userID int, now time.Time) error {
	sales := demoSales(userID, now)

	for i := range sales {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		sales[i].ID = id
	}

	if err := repo.CreateBatch(ctx, sales); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"user_id": userID,
		"sales":   len(sales),
	}).Info("Vendas de exemplo inseridas")
	return nil
}

// demoSales gera duas vendas por dia nos últimos seedDays dias, com receita crescente
func demoSales(userID int, now time.Time) []domain.SaleRecord {
	start := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()).AddDate(0, 0, -seedDays)

	sales := make([]domain.SaleRecord, 0, seedDays*2)
	for day := 0; day < seedDays; day++ {
		for slot := 0; slot < 2; slot++ {
			n := day*2 + slot
			amount := 100 + float64(day)*2.5 + float64(slot*40)
			margin := amount * 0.3

			sales = append(sales, domain.SaleRecord{
				UserID:   userID,
				Date:     start.AddDate(0, 0, day).Add(time.Duration(slot) * 4 * time.Hour),
				Amount:   amount,
				Product:  seedProducts[n%len(seedProducts)],
				Region:   seedRegions[n%len(seedRegions)],
				Customer: seedCustomers[n%len(seedCustomers)],
				Margin:   &margin,
			})
		}
	}

	return sales
}
