package models

import "time"

// Passenger is identified by DNI; ID is the surrogate key.
type Passenger struct {
	ID           int64     `json:"id_pasajero"`
	DNI          string    `json:"dni"`
	FirstNames   string    `json:"nombres"`
	LastNames    string    `json:"apellidos"`
	Email        string    `json:"email"`
	Phone        string    `json:"telefono"`
	RegisteredOn time.Time `json:"fecha_registro"`
}

func (p Passenger) FullName() string {
	return p.FirstNames + " " + p.LastNames
}
