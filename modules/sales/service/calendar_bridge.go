package service

import (
	"fmt"
	"regexp"

	calendarDto "salon-api/modules/calendar/dto"
	"salon-api/modules/sales/entity"
)

// A bare date means the appointment has no time of day and becomes an
// all-day event.
var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// buildCalendarEventRequest renders the appointment the way the sales form
// did: the balance breakdown goes into the event body for reference.
func buildCalendarEventRequest(sale *entity.Sale, uid, clientName string) *calendarDto.CreateEventRequest {
	who := clientName
	if who == "" {
		who = sale.Nailer
	}

	description := fmt.Sprintf("Total: S/.%.2f\nAdelanto: S/.%.2f\nSaldo Pendiente: S/.%.2f\nPago: %s\nNailer: %s\nNotas: %s",
		sale.Total(), sale.Advance, sale.Balance, sale.PaymentMethod, sale.Nailer, notesOrDash(sale.Description))

	return &calendarDto.CreateEventRequest{
		UID:         uid,
		SaleID:      sale.ID,
		DateService: sale.DateService,
		Title:       fmt.Sprintf("Cita — %s — %s", sale.ServiceType, who),
		Description: description,
		AllDay:      dateOnlyPattern.MatchString(sale.DateService),
	}
}

func notesOrDash(notes string) string {
	if notes == "" {
		return "-"
	}
	return notes
}
