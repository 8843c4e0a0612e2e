// Package service implements the charge operations shared by every transport.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/cobrancas/internal/calculator"
	"github.com/mmynk/cobrancas/internal/metrics"
	"github.com/mmynk/cobrancas/internal/models"
	"github.com/mmynk/cobrancas/internal/storage"
)

// ErrInvalidCharge marks requests missing a required field. Transports
// return it; the service itself accepts any string, including "".
var (
	ErrInvalidCharge  = errors.New("invalid charge")
	ErrChargeNotFound = errors.New("charge not found")
)

// Operation names used for logging and metrics.
const (
	opCreate       = "create"
	opList         = "list"
	opUpdateStatus = "update_status"
	opSummary      = "summary"
)

// CreateChargeInput carries the caller-supplied fields of a new charge.
type CreateChargeInput struct {
	ClientName string
	Amount     float64
	DueDate    string
	Status     string
}

// Option configures a ChargeService.
type Option func(*ChargeService)

// WithStrictStatusUpdates makes UpdateStatus return ErrChargeNotFound when
// no charge matched the ID. By default a missing ID is a silent no-op.
func WithStrictStatusUpdates(strict bool) Option {
	return func(s *ChargeService) {
		s.strictUpdates = strict
	}
}

// WithMetrics records operation outcomes in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *ChargeService) {
		s.metrics = m
	}
}

// ChargeService implements create, list, and update-status over a ChargeStore.
type ChargeService struct {
	store         storage.ChargeStore
	strictUpdates bool
	metrics       *metrics.Metrics
}

// NewChargeService creates a new ChargeService with the given storage backend.
func NewChargeService(store storage.ChargeStore, opts ...Option) *ChargeService {
	s := &ChargeService{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new charge. Field values are stored as given.
func (s *ChargeService) Create(ctx context.Context, in CreateChargeInput) (*models.Charge, error) {
	start := time.Now()
	slog.Info("CreateCharge request received",
		"client_name", in.ClientName,
		"amount", in.Amount,
		"due_date", in.DueDate,
		"status", in.Status,
	)

	charge := &models.Charge{
		ClientName: in.ClientName,
		Amount:     in.Amount,
		DueDate:    in.DueDate,
		Status:     in.Status,
	}
	if err := s.store.CreateCharge(ctx, charge); err != nil {
		slog.Error("CreateCharge failed", "error", err)
		s.metrics.Observe(opCreate, metrics.OutcomeError, start)
		return nil, fmt.Errorf("create charge: %w", err)
	}

	s.metrics.Observe(opCreate, metrics.OutcomeOK, start)
	s.metrics.ObserveAmount(charge.Amount)
	slog.Info("Charge created", "charge_id", charge.ID)

	return charge, nil
}

// List returns every stored charge. Order is unspecified.
func (s *ChargeService) List(ctx context.Context) ([]*models.Charge, error) {
	start := time.Now()

	charges, err := s.store.ListCharges(ctx)
	if err != nil {
		slog.Error("ListCharges failed", "error", err)
		s.metrics.Observe(opList, metrics.OutcomeError, start)
		return nil, fmt.Errorf("list charges: %w", err)
	}

	s.metrics.Observe(opList, metrics.OutcomeOK, start)
	slog.Debug("ListCharges successful", "count", len(charges))

	return charges, nil
}

// UpdateStatus sets the status of the charge with the given ID.
//
// A missing ID is reported as ErrChargeNotFound only in strict mode;
// otherwise the call succeeds without changing anything.
func (s *ChargeService) UpdateStatus(ctx context.Context, id int64, status string) error {
	start := time.Now()
	slog.Info("UpdateChargeStatus request received", "charge_id", id, "status", status)

	affected, err := s.store.UpdateChargeStatus(ctx, id, status)
	if err != nil {
		slog.Error("UpdateChargeStatus failed", "charge_id", id, "error", err)
		s.metrics.Observe(opUpdateStatus, metrics.OutcomeError, start)
		return fmt.Errorf("update charge status: %w", err)
	}

	if affected == 0 {
		slog.Warn("UpdateChargeStatus matched no charge", "charge_id", id, "strict", s.strictUpdates)
		s.metrics.Observe(opUpdateStatus, metrics.OutcomeNotFound, start)
		if s.strictUpdates {
			return fmt.Errorf("%w: %d", ErrChargeNotFound, id)
		}
		return nil
	}

	s.metrics.Observe(opUpdateStatus, metrics.OutcomeOK, start)
	return nil
}

// Summary aggregates the current charges by status.
func (s *ChargeService) Summary(ctx context.Context) (calculator.Summary, error) {
	start := time.Now()

	charges, err := s.store.ListCharges(ctx)
	if err != nil {
		slog.Error("Summary failed", "error", err)
		s.metrics.Observe(opSummary, metrics.OutcomeError, start)
		return calculator.Summary{}, fmt.Errorf("summarize charges: %w", err)
	}

	input := make([]calculator.ChargeForSummary, len(charges))
	for i, c := range charges {
		input[i] = calculator.ChargeForSummary{Amount: c.Amount, Status: c.Status}
	}

	s.metrics.Observe(opSummary, metrics.OutcomeOK, start)
	return calculator.Summarize(input), nil
}
