package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/config"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"github.com/vfg2006/cafe-analytics-api/internal/etl"
)

const randomSeed = 42

var tableDDL = []string{
	`CREATE TABLE IF NOT EXISTS dim_users (
		mobile_id VARCHAR(64) PRIMARY KEY,
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS dim_menu_items (
		item_id INTEGER PRIMARY KEY,
		item_name VARCHAR(128) NOT NULL,
		price NUMERIC(10, 2) NOT NULL,
		category VARCHAR(64) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_menu_daytimes (
		daytime_id INTEGER PRIMARY KEY,
		daytime_label VARCHAR(64) NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fact_transactions (
		transaction_id INTEGER PRIMARY KEY,
		mobile_id VARCHAR(64) NOT NULL,
		total_amount NUMERIC(10, 2) NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fact_transaction_items (
		transaction_id INTEGER NOT NULL,
		item_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		price NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rfm_segments (
		rfm_id SERIAL PRIMARY KEY,
		mobile_id VARCHAR(64) NOT NULL,
		recency_days INTEGER NOT NULL,
		frequency INTEGER NOT NULL,
		monetary NUMERIC(12, 2) NOT NULL,
		r_score INTEGER NOT NULL,
		f_score INTEGER NOT NULL,
		m_score INTEGER NOT NULL,
		rfm_score VARCHAR(3) NOT NULL,
		segment VARCHAR(64) NOT NULL,
		computed_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_recommendations (
		id SERIAL PRIMARY KEY,
		daytime_id INTEGER NOT NULL,
		menu_item_id INTEGER NOT NULL,
		rank INTEGER NOT NULL,
		total_quantity INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de seed...")
}

func createTables(ctx context.Context, conn *postgres.Connection) {
	log.Println("Criando tabelas do esquema (se não existirem)...")

	for _, ddl := range tableDDL {
		if _, err := conn.ExecContext(ctx, ddl); err != nil {
			log.Fatalf("ERRO ao criar tabela: %v", err)
		}
	}

	log.Println("Esquema verificado com sucesso")
}

func insertUsers(tx *sql.Tx, users []domain.User) {
	log.Printf("Iniciando inserção de %d clientes...", len(users))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO dim_users (mobile_id, notes) VALUES ($1, $2) ON CONFLICT (mobile_id) DO NOTHING`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para dim_users: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, u := range users {
		_, err := stmt.Exec(u.MobileID, u.Notes)
		if err != nil {
			log.Printf("ERRO ao inserir cliente [%d/%d] %s: %v", i+1, len(users), u.MobileID, err)
			errorCount++
			continue
		}
		successCount++
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de clientes concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func insertMenuItems(tx *sql.Tx, items []domain.MenuItem) {
	log.Printf("Iniciando inserção de %d itens do cardápio...", len(items))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO dim_menu_items (item_id, item_name, price, category) VALUES ($1, $2, $3, $4) ON CONFLICT (item_id) DO NOTHING`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para dim_menu_items: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, item := range items {
		_, err := stmt.Exec(item.ItemID, item.ItemName, item.Price, item.Category)
		if err != nil {
			log.Printf("ERRO ao inserir item [%d/%d] %s: %v", i+1, len(items), item.ItemName, err)
			errorCount++
			continue
		}
		successCount++
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de itens concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func insertDaytimes(tx *sql.Tx, daytimes []domain.MenuDaytime) {
	log.Printf("Iniciando inserção de %d faixas de horário...", len(daytimes))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO dim_menu_daytimes (daytime_id, daytime_label, start_time, end_time) VALUES ($1, $2, $3, $4) ON CONFLICT (daytime_id) DO NOTHING`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para dim_menu_daytimes: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, d := range daytimes {
		_, err := stmt.Exec(d.DaytimeID, d.Label, d.StartTime, d.EndTime)
		if err != nil {
			log.Printf("ERRO ao inserir faixa [%d/%d] %s: %v", i+1, len(daytimes), d.Label, err)
			errorCount++
			continue
		}
		successCount++
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de faixas concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func insertTransactions(tx *sql.Tx, transactions []domain.Transaction) {
	log.Printf("Iniciando inserção de %d vendas...", len(transactions))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO fact_transactions (transaction_id, mobile_id, total_amount, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (transaction_id) DO NOTHING`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para fact_transactions: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, t := range transactions {
		_, err := stmt.Exec(t.TransactionID, t.MobileID, t.TotalAmount, t.CreatedAt)
		if err != nil {
			log.Printf("ERRO ao inserir venda [%d/%d] %d: %v", i+1, len(transactions), t.TransactionID, err)
			errorCount++
			continue
		}
		successCount++
		if i > 0 && i%100 == 0 {
			log.Printf("Progresso: %d/%d vendas processadas", i+1, len(transactions))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de vendas concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func insertTransactionItems(tx *sql.Tx, items []domain.TransactionItem) {
	log.Printf("Iniciando inserção de %d itens de venda...", len(items))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO fact_transaction_items (transaction_id, item_id, quantity, price) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para fact_transaction_items: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, item := range items {
		_, err := stmt.Exec(item.TransactionID, item.ItemID, item.Quantity, item.Price)
		if err != nil {
			log.Printf("ERRO ao inserir item de venda [%d/%d]: %v", i+1, len(items), err)
			errorCount++
			continue
		}
		successCount++
		if i > 0 && i%100 == 0 {
			log.Printf("Progresso: %d/%d itens processados", i+1, len(items))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de itens de venda concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createTables(ctx, conn)

	generator := etl.NewGenerator(randomSeed, time.Now())
	dataset := generator.Generate(
		cfg.Seed.Users,
		cfg.Seed.MenuItems,
		cfg.Seed.Transactions,
		cfg.Seed.LookbackDays,
	)

	log.Printf("Dataset gerado: %d clientes, %d itens, %d faixas, %d vendas, %d itens de venda",
		len(dataset.Users), len(dataset.MenuItems), len(dataset.Daytimes),
		len(dataset.Transactions), len(dataset.TransactionItems))

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insertUsers(tx, dataset.Users)
		insertMenuItems(tx, dataset.MenuItems)
		insertDaytimes(tx, dataset.Daytimes)
		insertTransactions(tx, dataset.Transactions)
		insertTransactionItems(tx, dataset.TransactionItems)
		return nil
	})
	if err != nil {
		log.Fatalf("ERRO ao executar transação de seed: %v", err)
	}

	log.Println("Seed concluído com sucesso")
}
