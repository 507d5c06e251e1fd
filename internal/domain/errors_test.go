package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	nf := fmt.Errorf("cargar: %w", NotFoundError{Resource: "vuelo"})
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsConflict(nf))
	assert.Equal(t, "cargar: vuelo no encontrado", nf.Error())

	seats := ConflictError{Resource: "vuelo", Err: ErrNoSeats}
	assert.True(t, IsConflict(seats))
	assert.True(t, errors.Is(seats, ErrNoSeats))
	assert.Equal(t, ErrNoSeats.Error(), seats.Error())

	v := ValidationError{Field: "dni", Msg: "requerido"}
	assert.True(t, IsValidation(v))
	assert.Equal(t, "dni: requerido", v.Error())

	assert.True(t, IsInternal(InternalError{Err: errors.New("db")}))
	assert.Equal(t, "error interno", InternalError{}.Error())
}
