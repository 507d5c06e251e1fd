package repositories

import (
	"context"
	"fmt"

	intdb "airline/internal/db"
	"airline/internal/domain"
	"airline/internal/domain/models"
)

const flightColumns = `id_vuelo, numero_vuelo, origen, destino, fecha_salida, fecha_llegada,
	COALESCE(aeronave,''), asientos_totales, asientos_disponibles, COALESCE(estado,'')`

type FlightRepository struct {
	DB intdb.DBTX
}

func scanFlight(s scanner, f *models.Flight) error {
	var status string
	if err := s.Scan(
		&f.ID,
		&f.Number,
		&f.Origin,
		&f.Destination,
		&f.DepartureAt,
		&f.ArrivalAt,
		&f.Aircraft,
		&f.TotalSeats,
		&f.AvailableSeats,
		&status,
	); err != nil {
		return err
	}
	f.Status = domain.Status(status)
	return nil
}

func (r FlightRepository) list(ctx context.Context, query string, args ...any) ([]models.Flight, error) {
	q, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vuelo: %w", err)
	}
	defer rows.Close()

	out := []models.Flight{}
	for rows.Next() {
		var f models.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, fmt.Errorf("scan vuelo: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Search returns scheduled flights on a route that still have seats.
func (r FlightRepository) Search(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM vuelo
		WHERE origen = ? AND destino = ? AND estado = ? AND asientos_disponibles > 0
		ORDER BY fecha_salida ASC, id_vuelo ASC`,
		origin, destination, string(domain.FlightScheduled))
}

// ListScheduled returns every flight in PROGRAMADO status, sold out or not.
func (r FlightRepository) ListScheduled(ctx context.Context) ([]models.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM vuelo
		WHERE estado = ?
		ORDER BY fecha_salida ASC, id_vuelo ASC`,
		string(domain.FlightScheduled))
}

func (r FlightRepository) GetByID(ctx context.Context, id int64) (models.Flight, error) {
	return r.get(ctx, `SELECT `+flightColumns+` FROM vuelo WHERE id_vuelo = ? LIMIT 1`, id)
}

// GetByIDForUpdate locks the flight row until the surrounding transaction ends.
func (r FlightRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.Flight, error) {
	return r.get(ctx, `SELECT `+flightColumns+` FROM vuelo WHERE id_vuelo = ? LIMIT 1 FOR UPDATE`, id)
}

func (r FlightRepository) get(ctx context.Context, query string, id int64) (models.Flight, error) {
	var f models.Flight
	q, err := conn(r.DB)
	if err != nil {
		return f, err
	}
	if err := scanFlight(q.QueryRowContext(ctx, query, id), &f); err != nil {
		return models.Flight{}, fmt.Errorf("vuelo %d: %w", id, err)
	}
	return f, nil
}

// DecrementSeat takes one seat, never going below zero.
func (r FlightRepository) DecrementSeat(ctx context.Context, id int64) error {
	q, err := conn(r.DB)
	if err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, `UPDATE vuelo
		SET asientos_disponibles = asientos_disponibles - 1
		WHERE id_vuelo = ? AND asientos_disponibles > 0`, id)
	if err != nil {
		return fmt.Errorf("update asientos vuelo %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update asientos vuelo %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrNoSeats
	}
	return nil
}

func (r FlightRepository) DistinctOrigins(ctx context.Context) ([]string, error) {
	return r.codes(ctx, `SELECT DISTINCT origen FROM vuelo ORDER BY origen`)
}

func (r FlightRepository) DistinctDestinations(ctx context.Context, origin string) ([]string, error) {
	return r.codes(ctx, `SELECT DISTINCT destino FROM vuelo WHERE origen = ? ORDER BY destino`, origin)
}

func (r FlightRepository) codes(ctx context.Context, query string, args ...any) ([]string, error) {
	q, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query aeropuertos: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, rows.Err()
}
