package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-api/core/errors"
	"salon-api/modules/purchases/dto"
	"salon-api/modules/purchases/entity"
)

type memoryPurchasesRepo struct {
	purchases map[string]*entity.Purchase
}

func newMemoryPurchasesRepo() *memoryPurchasesRepo {
	return &memoryPurchasesRepo{purchases: map[string]*entity.Purchase{}}
}

func (m *memoryPurchasesRepo) Create(_ context.Context, p *entity.Purchase) error {
	m.purchases[p.ID] = p
	return nil
}

func (m *memoryPurchasesRepo) GetByID(_ context.Context, id string) (*entity.Purchase, error) {
	return m.purchases[id], nil
}

func (m *memoryPurchasesRepo) List(_ context.Context) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, p := range m.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memoryPurchasesRepo) Update(_ context.Context, p *entity.Purchase) error {
	m.purchases[p.ID] = p
	return nil
}

func (m *memoryPurchasesRepo) Delete(_ context.Context, id string) error {
	delete(m.purchases, id)
	return nil
}

func TestCreatePurchase(t *testing.T) {
	svc := NewPurchasesService(newMemoryPurchasesRepo())

	purchase, appErr := svc.Create(context.Background(), &dto.PurchaseRequest{
		Date:     "2025-11-30",
		Supplier: "Distribuidora Lima",
		Item:     "Esmalte gel",
		Quantity: 12,
		UnitCost: 15.5,
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, purchase.ID)
	assert.Equal(t, "Esmalte gel", purchase.Item)
}

func TestCreatePurchase_Invalid(t *testing.T) {
	svc := NewPurchasesService(newMemoryPurchasesRepo())

	tests := []dto.PurchaseRequest{
		{Item: "Esmalte", Quantity: 1},
		{Date: "2025-11-30", Quantity: 1},
		{Date: "2025-11-30", Item: "Esmalte", Quantity: 0},
		{Date: "2025-11-30", Item: "Esmalte", Quantity: 1, UnitCost: -1},
	}
	for i := range tests {
		_, appErr := svc.Create(context.Background(), &tests[i])
		require.NotNil(t, appErr, "case %d must be rejected", i)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	}
}

func TestGetPurchase_NotFound(t *testing.T) {
	svc := NewPurchasesService(newMemoryPurchasesRepo())

	_, appErr := svc.GetByID(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
