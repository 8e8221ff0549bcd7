package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/crosspayhq/wallet-core/internal/logger"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS wallets (
			wallet_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			currency VARCHAR(8) NOT NULL,
			balance NUMERIC(30,10) NOT NULL DEFAULT 0,
			deposit_address TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, currency),
			CHECK (balance >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id UUID PRIMARY KEY,
			wallet_id UUID NOT NULL REFERENCES wallets(wallet_id) ON DELETE CASCADE,
			type VARCHAR(16) NOT NULL,
			amount NUMERIC(30,10) NOT NULL,
			counterparty TEXT,
			metadata JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS exchange_rates (
			from_currency VARCHAR(8) NOT NULL,
			to_currency VARCHAR(8) NOT NULL,
			rate NUMERIC(30,10) NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (from_currency, to_currency)
		);`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
			user_id UUID PRIMARY KEY,
			full_name VARCHAR(100),
			country VARCHAR(64),
			verification_status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
			daily_limit NUMERIC(30,10) NOT NULL DEFAULT 100,
			monthly_limit NUMERIC(30,10) NOT NULL DEFAULT 1000,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS kyc_documents (
			document_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			doc_type VARCHAR(32) NOT NULL,
			country VARCHAR(64),
			extracted_data JSONB NOT NULL DEFAULT '{}',
			confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
			reviewed_by UUID,
			reviewed_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		require.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---
func getBalance(t *testing.T, db *sqlx.DB, walletID uuid.UUID) decimal.Decimal {
	var balance decimal.Decimal
	err := db.Get(&balance, `SELECT balance FROM wallets WHERE wallet_id=$1`, walletID)
	assert.NoError(t, err)
	return balance
}
