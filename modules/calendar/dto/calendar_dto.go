package dto

import "google.golang.org/api/calendar/v3"

// CreateEventRequest mirrors the payload the sales form sends after a sale
// is persisted.
type CreateEventRequest struct {
	UID         string `json:"uid"`
	SaleID      string `json:"saleId"`
	DateService string `json:"dateService"` // "2006-01-02" for all-day, RFC3339 otherwise
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AllDay      bool   `json:"allDay,omitempty"`
}

type CreateEventResponse struct {
	OK    bool            `json:"ok"`
	Event *calendar.Event `json:"event"`
}

type StatusResponse struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type DisconnectRequest struct {
	UID string `json:"uid"`
}

type DisconnectResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
