package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	flightCols = []string{"id_vuelo", "numero_vuelo", "origen", "destino", "fecha_salida", "fecha_llegada",
		"aeronave", "asientos_totales", "asientos_disponibles", "estado"}
	passengerCols = []string{"id_pasajero", "dni", "nombres", "apellidos", "email", "telefono", "fecha_registro"}

	departure = time.Date(2026, 11, 2, 8, 30, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func flightRow(id int64, available int, status string) *sqlmock.Rows {
	return sqlmock.NewRows(flightCols).
		AddRow(id, "LA2041", "LIM", "CUZ", departure, departure.Add(80*time.Minute), "A320", 180, available, status)
}

type published struct {
	key     string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{key: key, payload: payload})
	return p.err
}

func (p *recordingPublisher) Close() {}
