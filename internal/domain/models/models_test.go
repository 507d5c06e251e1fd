package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightHasSeats(t *testing.T) {
	assert.True(t, Flight{AvailableSeats: 1}.HasSeats())
	assert.False(t, Flight{AvailableSeats: 0}.HasSeats())
	assert.False(t, Flight{AvailableSeats: -1}.HasSeats())
}

func TestPassengerFullName(t *testing.T) {
	p := Passenger{FirstNames: "Ana Lucia", LastNames: "Quispe Rojas"}
	assert.Equal(t, "Ana Lucia Quispe Rojas", p.FullName())
}
