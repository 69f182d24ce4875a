package repository

import (
	"context"
	"database/sql"
	"errors"

	"salon-api/core/database"
	"salon-api/modules/clients/entity"
)

type ClientsRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByDNI(ctx context.Context, dni string) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}

type clientsRepository struct {
	db database.IDatabase
}

func NewClientsRepository(db database.IDatabase) ClientsRepository {
	return &clientsRepository{db: db}
}

func (r *clientsRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, dni, phone, nombres, apellidos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	return r.db.ExecContext(ctx, query, client.ID, client.DNI, client.Phone, client.Nombres, client.Apellidos)
}

func (r *clientsRepository) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	var client entity.Client
	if err := r.db.GetContext(ctx, &client, `SELECT * FROM clients WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientsRepository) GetByDNI(ctx context.Context, dni string) (*entity.Client, error) {
	var client entity.Client
	if err := r.db.GetContext(ctx, &client, `SELECT * FROM clients WHERE dni = $1`, dni); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientsRepository) List(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	if err := r.db.SelectContext(ctx, &clients, `SELECT * FROM clients ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientsRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET dni = $1, phone = $2, nombres = $3, apellidos = $4, updated_at = NOW()
		WHERE id = $5
	`
	return r.db.ExecContext(ctx, query, client.DNI, client.Phone, client.Nombres, client.Apellidos, client.ID)
}

func (r *clientsRepository) Delete(ctx context.Context, id string) error {
	return r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
}
