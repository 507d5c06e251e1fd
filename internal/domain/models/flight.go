package models

import (
	"time"

	"airline/internal/domain"
)

// Flight mirrors a row of the vuelo table.
type Flight struct {
	ID             int64         `json:"id_vuelo"`
	Number         string        `json:"numero_vuelo"`
	Origin         string        `json:"origen"`
	Destination    string        `json:"destino"`
	DepartureAt    time.Time     `json:"fecha_salida"`
	ArrivalAt      time.Time     `json:"fecha_llegada"`
	Aircraft       string        `json:"aeronave"`
	TotalSeats     int           `json:"asientos_totales"`
	AvailableSeats int           `json:"asientos_disponibles"`
	Status         domain.Status `json:"estado"`
}

// HasSeats reports whether at least one seat can still be sold.
func (f Flight) HasSeats() bool {
	return f.AvailableSeats > 0
}
