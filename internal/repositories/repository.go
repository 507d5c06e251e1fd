package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "airline/internal/config"
	intdb "airline/internal/db"
)

var errNoDB = errors.New("base de datos no disponible")

type scanner interface {
	Scan(dest ...any) error
}

// conn falls back to the shared pool when a repository was built without a handle.
func conn(q intdb.DBTX) (intdb.DBTX, error) {
	if q != nil {
		return q, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

// likeContains builds a LIKE pattern matching s anywhere, with wildcards escaped.
func likeContains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
