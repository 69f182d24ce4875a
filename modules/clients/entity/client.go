package entity

import "salon-api/core/entity"

// Client is a salon customer identified by their national ID document.
type Client struct {
	entity.BaseEntity
	DNI       string `db:"dni" json:"dni"`
	Phone     string `db:"phone" json:"phone"`
	Nombres   string `db:"nombres" json:"nombres"`
	Apellidos string `db:"apellidos" json:"apellidos"`
}
