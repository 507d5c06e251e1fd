package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

var schemaDDL = []struct {
	table string
	ddl   string
}{
	{"vuelo", `
CREATE TABLE IF NOT EXISTS vuelo (
	id_vuelo INT AUTO_INCREMENT PRIMARY KEY,
	numero_vuelo VARCHAR(10) NOT NULL,
	origen CHAR(3) NOT NULL,
	destino CHAR(3) NOT NULL,
	fecha_salida DATETIME NOT NULL,
	fecha_llegada DATETIME NOT NULL,
	aeronave VARCHAR(50) NULL,
	asientos_totales INT NOT NULL,
	asientos_disponibles INT NOT NULL,
	estado VARCHAR(20) NOT NULL DEFAULT 'PROGRAMADO',
	UNIQUE KEY uniq_numero_vuelo (numero_vuelo),
	KEY idx_ruta (origen, destino),
	CONSTRAINT chk_asientos CHECK (asientos_disponibles >= 0 AND asientos_disponibles <= asientos_totales)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"pasajero", `
CREATE TABLE IF NOT EXISTS pasajero (
	id_pasajero INT AUTO_INCREMENT PRIMARY KEY,
	dni VARCHAR(15) NOT NULL,
	nombres VARCHAR(100) NOT NULL,
	apellidos VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL,
	telefono VARCHAR(20) NULL,
	fecha_registro DATE NULL,
	UNIQUE KEY uniq_dni (dni)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
	{"reserva", `
CREATE TABLE IF NOT EXISTS reserva (
	id_reserva INT AUTO_INCREMENT PRIMARY KEY,
	codigo_pnr VARCHAR(10) NOT NULL,
	id_pasajero INT NOT NULL,
	id_vuelo INT NOT NULL,
	fecha_reserva DATETIME NULL,
	estado VARCHAR(20) NOT NULL DEFAULT 'PENDIENTE',
	total_reserva DECIMAL(10,2) NULL DEFAULT 0,
	UNIQUE KEY uniq_codigo_pnr (codigo_pnr),
	CONSTRAINT fk_reserva_pasajero FOREIGN KEY (id_pasajero)
		REFERENCES pasajero (id_pasajero) ON DELETE RESTRICT ON UPDATE CASCADE,
	CONSTRAINT fk_reserva_vuelo FOREIGN KEY (id_vuelo)
		REFERENCES vuelo (id_vuelo) ON DELETE RESTRICT ON UPDATE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`},
}

// EnsureSchema creates the three tables when they do not exist yet.
// Order matters: reserva references the other two.
func EnsureSchema(ctx context.Context, q DBTX) error {
	for _, s := range schemaDDL {
		if _, err := q.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}
	log.Printf("[DB] esquema verificado (%d tablas)", len(schemaDDL))
	return nil
}

// HasTable reports whether table exists in the current database.
// Lookup errors count as missing.
func HasTable(ctx context.Context, q DBTX, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables lists the application tables not present yet.
func MissingTables(ctx context.Context, q DBTX) []string {
	var out []string
	for _, s := range schemaDDL {
		if !HasTable(ctx, q, s.table) {
			out = append(out, s.table)
		}
	}
	return out
}
