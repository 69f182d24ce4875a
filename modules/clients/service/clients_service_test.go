package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-api/core/errors"
	"salon-api/modules/clients/dto"
	"salon-api/modules/clients/entity"
)

type memoryClientsRepo struct {
	clients map[string]*entity.Client
}

func newMemoryClientsRepo() *memoryClientsRepo {
	return &memoryClientsRepo{clients: map[string]*entity.Client{}}
}

func (m *memoryClientsRepo) Create(_ context.Context, client *entity.Client) error {
	m.clients[client.ID] = client
	return nil
}

func (m *memoryClientsRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return m.clients[id], nil
}

func (m *memoryClientsRepo) GetByDNI(_ context.Context, dni string) (*entity.Client, error) {
	for _, c := range m.clients {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryClientsRepo) List(_ context.Context) ([]entity.Client, error) {
	var out []entity.Client
	for _, c := range m.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memoryClientsRepo) Update(_ context.Context, client *entity.Client) error {
	m.clients[client.ID] = client
	return nil
}

func (m *memoryClientsRepo) Delete(_ context.Context, id string) error {
	delete(m.clients, id)
	return nil
}

func TestCreateClient(t *testing.T) {
	svc := NewClientsService(newMemoryClientsRepo())

	client, appErr := svc.Create(context.Background(), &dto.ClientRequest{
		DNI:       "12345678",
		Phone:     "987654321",
		Nombres:   "Maria",
		Apellidos: "Lopez",
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "12345678", client.DNI)
}

func TestCreateClient_InvalidDNI(t *testing.T) {
	svc := NewClientsService(newMemoryClientsRepo())

	for _, dni := range []string{"", "1234567", "123456789", "1234567a"} {
		_, appErr := svc.Create(context.Background(), &dto.ClientRequest{
			DNI:       dni,
			Nombres:   "Maria",
			Apellidos: "Lopez",
		})
		require.NotNil(t, appErr, "dni %q must be rejected", dni)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	}
}

func TestCreateClient_DuplicateDNI(t *testing.T) {
	svc := NewClientsService(newMemoryClientsRepo())
	ctx := context.Background()

	req := &dto.ClientRequest{DNI: "12345678", Nombres: "Maria", Apellidos: "Lopez"}
	_, appErr := svc.Create(ctx, req)
	require.Nil(t, appErr)

	_, appErr = svc.Create(ctx, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestUpdateClient_NotFound(t *testing.T) {
	svc := NewClientsService(newMemoryClientsRepo())

	_, appErr := svc.Update(context.Background(), "missing", &dto.ClientRequest{
		DNI:       "12345678",
		Nombres:   "Maria",
		Apellidos: "Lopez",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
