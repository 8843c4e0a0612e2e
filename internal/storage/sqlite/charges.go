package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/cobrancas/internal/models"
)

// CreateCharge inserts a new charge and sets charge.ID to the assigned ID.
func (s *Store) CreateCharge(ctx context.Context, charge *models.Charge) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO cobrancas (nome_cliente, valor, data_vencimento, status)
			 VALUES (?, ?, ?, ?)`,
			charge.ClientName, charge.Amount, charge.DueDate, charge.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert charge: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read charge id: %w", err)
		}
		charge.ID = id
		return nil
	})
}

// ListCharges retrieves all charges. No ordering is applied.
func (s *Store) ListCharges(ctx context.Context) ([]*models.Charge, error) {
	charges := []*models.Charge{}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT id, nome_cliente, valor, data_vencimento, status FROM cobrancas",
		)
		if err != nil {
			return fmt.Errorf("failed to list charges: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			charge, err := scanCharge(rows)
			if err != nil {
				return err
			}
			charges = append(charges, charge)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate charges: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return charges, nil
}

// scanCharge reads one row. The columns are nullable, and rows written by
// other tools may hold NULL; those read back as "" or 0.
func scanCharge(rows *sql.Rows) (*models.Charge, error) {
	var (
		charge     models.Charge
		clientName sql.NullString
		amount     sql.NullFloat64
		dueDate    sql.NullString
		status     sql.NullString
	)
	if err := rows.Scan(&charge.ID, &clientName, &amount, &dueDate, &status); err != nil {
		return nil, fmt.Errorf("failed to scan charge: %w", err)
	}

	charge.ClientName = clientName.String
	charge.Amount = amount.Float64
	charge.DueDate = dueDate.String
	charge.Status = status.String
	return &charge, nil
}

// UpdateChargeStatus sets the status of one charge and reports how many rows
// matched. Other columns are never touched.
func (s *Store) UpdateChargeStatus(ctx context.Context, id int64, status string) (int64, error) {
	var affected int64

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE cobrancas SET status = ? WHERE id = ?",
			status, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update charge status: %w", err)
		}

		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
