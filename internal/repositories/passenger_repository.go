package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "airline/internal/db"
	"airline/internal/domain/models"
)

const passengerColumns = `id_pasajero, dni, nombres, apellidos, email, COALESCE(telefono,''), fecha_registro`

type PassengerRepository struct {
	DB intdb.DBTX
}

func scanPassenger(s scanner, p *models.Passenger) error {
	var registered sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.DNI,
		&p.FirstNames,
		&p.LastNames,
		&p.Email,
		&p.Phone,
		&registered,
	); err != nil {
		return err
	}
	p.RegisteredOn = nullTime(registered)
	return nil
}

func (r PassengerRepository) get(ctx context.Context, query string, args ...any) (models.Passenger, error) {
	var p models.Passenger
	q, err := conn(r.DB)
	if err != nil {
		return p, err
	}
	if err := scanPassenger(q.QueryRowContext(ctx, query, args...), &p); err != nil {
		return models.Passenger{}, fmt.Errorf("pasajero: %w", err)
	}
	return p, nil
}

func (r PassengerRepository) GetByDNI(ctx context.Context, dni string) (models.Passenger, error) {
	return r.get(ctx, `SELECT `+passengerColumns+` FROM pasajero WHERE dni = ? LIMIT 1`, dni)
}

func (r PassengerRepository) GetByID(ctx context.Context, id int64) (models.Passenger, error) {
	return r.get(ctx, `SELECT `+passengerColumns+` FROM pasajero WHERE id_pasajero = ? LIMIT 1`, id)
}

// FindByName returns the first passenger whose names or surnames contain term.
func (r PassengerRepository) FindByName(ctx context.Context, term string) (models.Passenger, error) {
	pattern := likeContains(term)
	return r.get(ctx, `SELECT `+passengerColumns+` FROM pasajero
		WHERE LOWER(nombres) LIKE ? OR LOWER(apellidos) LIKE ?
		ORDER BY id_pasajero ASC LIMIT 1`, pattern, pattern)
}

// Create inserts p and returns it with ID set.
func (r PassengerRepository) Create(ctx context.Context, p models.Passenger) (models.Passenger, error) {
	q, err := conn(r.DB)
	if err != nil {
		return p, err
	}
	res, err := q.ExecContext(ctx, `INSERT INTO pasajero (dni, nombres, apellidos, email, telefono, fecha_registro)
		VALUES (?,?,?,?,?,?)`,
		p.DNI, p.FirstNames, p.LastNames, p.Email, intdb.NullIfEmpty(p.Phone), p.RegisteredOn)
	if err != nil {
		return p, fmt.Errorf("insert pasajero: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return p, fmt.Errorf("insert pasajero: %w", err)
	}
	p.ID = id
	return p, nil
}
