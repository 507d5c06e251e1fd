package models

import (
	"time"

	"airline/internal/domain"
)

type Reservation struct {
	ID          int64         `json:"id_reserva"`
	Code        string        `json:"codigo_pnr"`
	PassengerID int64         `json:"id_pasajero"`
	FlightID    int64         `json:"id_vuelo"`
	CreatedAt   time.Time     `json:"fecha_reserva"`
	Status      domain.Status `json:"estado"`
	Total       float64       `json:"total_reserva"`
}

// ReservationDetail is a reservation joined with its passenger and flight.
type ReservationDetail struct {
	Reservation Reservation
	Passenger   Passenger
	Flight      Flight
}

// ReservationInput carries the booking form fields.
type ReservationInput struct {
	DNI        string
	FirstNames string
	LastNames  string
	Email      string
	Phone      string
	FlightID   string
}
