package domain

// Status represents a lightweight state value stored as text.
type Status string

const (
	FlightScheduled Status = "PROGRAMADO"

	ReservationPending Status = "PENDIENTE"
)
