package dto

type ClientRequest struct {
	DNI       string `json:"dni"`
	Phone     string `json:"phone"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
}
