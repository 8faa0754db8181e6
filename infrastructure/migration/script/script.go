package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-monitor-api/internal/config"
)

const createFetchRunsTable = `
	CREATE TABLE IF NOT EXISTS fetch_runs (
		id            VARCHAR(21) PRIMARY KEY,
		source        VARCHAR(32) NOT NULL,
		status_filter VARCHAR(16) NOT NULL,
		date_from     VARCHAR(10),
		date_to       VARCHAR(10),
		search        TEXT,
		ads_count     INTEGER NOT NULL DEFAULT 0,
		error_kind    VARCHAR(32),
		duration_ms   BIGINT NOT NULL DEFAULT 0,
		started_at    TIMESTAMPTZ NOT NULL
	)
`

const createStartedAtIndex = `CREATE INDEX IF NOT EXISTS fetch_runs_started_at_idx ON fetch_runs (started_at DESC)`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func tableExists(tx *sql.Tx, table string) (bool, error) {
	var exists bool
	err := tx.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = $1
		)
	`, table).Scan(&exists)
	return exists, err
}

func migrateFetchRuns(tx *sql.Tx) error {
	exists, err := tableExists(tx, "fetch_runs")
	if err != nil {
		return err
	}

	if exists {
		logrus.Info("Tabela fetch_runs já existe")
	} else if _, err := tx.Exec(createFetchRunsTable); err != nil {
		return err
	}

	if _, err := tx.Exec(createStartedAtIndex); err != nil {
		return err
	}

	logrus.Info("Tabela fetch_runs pronta")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	startTime := time.Now()
	if err := conn.RunInTransaction(ctx, migrateFetchRuns); err != nil {
		logrus.Fatalf("ERRO ao migrar fetch_runs: %v", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
