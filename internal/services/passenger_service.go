package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
)

type PassengerService struct {
	DB *sql.DB
}

// Lookup resolves q as a DNI, then as a passenger id when it is all digits,
// otherwise as part of a name. found is false when nothing matches.
func (s PassengerService) Lookup(ctx context.Context, q string) (p models.Passenger, found bool, err error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return p, false, nil
	}
	repo := repositories.PassengerRepository{DB: handle(s.DB)}

	if utils.IsDigits(q) {
		p, err = repo.GetByDNI(ctx, q)
		if err == nil {
			return p, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return p, false, domain.InternalError{Err: err}
		}
		// ids that overflow int64 simply do not exist
		id, perr := strconv.ParseInt(q, 10, 64)
		if perr != nil {
			return models.Passenger{}, false, nil
		}
		p, err = repo.GetByID(ctx, id)
	} else {
		p, err = repo.FindByName(ctx, utils.NormalizeSpace(q))
	}

	switch {
	case err == nil:
		return p, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Passenger{}, false, nil
	default:
		return models.Passenger{}, false, domain.InternalError{Err: err}
	}
}
