package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the single charges table. Safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS cobrancas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_cliente TEXT,
    valor REAL,
    data_vencimento TEXT,
    status TEXT
);
`

// EnsureSchema creates the charges table if it does not exist yet.
// The connection used is released before returning.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
