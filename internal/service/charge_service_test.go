package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/cobrancas/internal/metrics"
	"github.com/mmynk/cobrancas/internal/models"
)

// memoryStore is an in-memory ChargeStore for service tests.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	charges []*models.Charge
	err     error
}

func (m *memoryStore) CreateCharge(_ context.Context, charge *models.Charge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	charge.ID = m.nextID
	stored := *charge
	m.charges = append(m.charges, &stored)
	return nil
}

func (m *memoryStore) ListCharges(_ context.Context) ([]*models.Charge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.Charge, len(m.charges))
	for i, c := range m.charges {
		copied := *c
		out[i] = &copied
	}
	return out, nil
}

func (m *memoryStore) UpdateChargeStatus(_ context.Context, id int64, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for _, c := range m.charges {
		if c.ID == id {
			c.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryStore) Close() error { return nil }

func validInput() CreateChargeInput {
	return CreateChargeInput{
		ClientName: "Ana",
		Amount:     150.0,
		DueDate:    "2024-01-10",
		Status:     models.StatusPending,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns charge with ID", func(t *testing.T) {
		svc := NewChargeService(&memoryStore{})

		charge, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, int64(1), charge.ID)
		assert.Equal(t, "Ana", charge.ClientName)
		assert.Equal(t, 150.0, charge.Amount)
	})

	t.Run("accepts empty strings", func(t *testing.T) {
		store := &memoryStore{}
		svc := NewChargeService(store)

		charge, err := svc.Create(ctx, CreateChargeInput{ClientName: "", Amount: 5, DueDate: "", Status: ""})
		require.NoError(t, err)
		assert.Equal(t, int64(1), charge.ID)

		charges, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, charges, 1)
		assert.Equal(t, "", charges[0].ClientName)
		assert.Equal(t, "", charges[0].DueDate)
		assert.Equal(t, "", charges[0].Status)
	})

	t.Run("accepts zero and negative amounts", func(t *testing.T) {
		svc := NewChargeService(&memoryStore{})

		in := validInput()
		in.Amount = -10
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)

		in.Amount = 0
		_, err = svc.Create(ctx, in)
		require.NoError(t, err)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		boom := errors.New("disk full")
		svc := NewChargeService(&memoryStore{err: boom})

		_, err := svc.Create(ctx, validInput())
		require.ErrorIs(t, err, boom)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing charge", func(t *testing.T) {
		store := &memoryStore{}
		svc := NewChargeService(store)

		charge, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		require.NoError(t, svc.UpdateStatus(ctx, charge.ID, models.StatusPaid))

		charges, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, charges, 1)
		assert.Equal(t, models.StatusPaid, charges[0].Status)
	})

	t.Run("missing ID succeeds by default", func(t *testing.T) {
		svc := NewChargeService(&memoryStore{})
		assert.NoError(t, svc.UpdateStatus(ctx, 9999, models.StatusPaid))
	})

	t.Run("missing ID fails in strict mode", func(t *testing.T) {
		svc := NewChargeService(&memoryStore{}, WithStrictStatusUpdates(true))
		err := svc.UpdateStatus(ctx, 9999, models.StatusPaid)
		assert.ErrorIs(t, err, ErrChargeNotFound)
	})

	t.Run("empty status accepted", func(t *testing.T) {
		store := &memoryStore{}
		svc := NewChargeService(store)
		charge, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		for _, status := range []string{"", " "} {
			require.NoError(t, svc.UpdateStatus(ctx, charge.ID, status))

			charges, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, status, charges[0].Status)
		}
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewChargeService(&memoryStore{})

	for _, in := range []CreateChargeInput{
		{ClientName: "Ana", Amount: 100, DueDate: "2024-01-10", Status: models.StatusPending},
		{ClientName: "Bia", Amount: 40, DueDate: "2024-01-11", Status: models.StatusPaid},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 140.0, summary.Total)
	assert.Equal(t, 40.0, summary.Paid)
	assert.Equal(t, 100.0, summary.Outstanding)
}

func TestMetricsRecorded(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	svc := NewChargeService(&memoryStore{}, WithMetrics(metrics.New(reg)))

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(ctx, 42, models.StatusPaid))

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "cobrancas_operations_total")
	assert.Contains(t, names, "cobrancas_created_amount")
}
