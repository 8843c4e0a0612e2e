// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/cobrancas/internal/models"
)

// ChargeStore defines the interface for charge storage operations.
// Each call is its own unit of work; no transaction spans calls.
type ChargeStore interface {
	// CreateCharge persists a new charge.
	// The charge.ID field is populated by the store; any caller-supplied ID is ignored.
	CreateCharge(ctx context.Context, charge *models.Charge) error

	// ListCharges returns every stored charge in storage order.
	ListCharges(ctx context.Context) ([]*models.Charge, error)

	// UpdateChargeStatus sets the status of the charge with the given ID and
	// returns the number of rows affected. A missing ID affects zero rows and
	// is not an error.
	UpdateChargeStatus(ctx context.Context, id int64, status string) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
