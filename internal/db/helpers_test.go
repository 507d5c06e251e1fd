package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'PNR001'"}

	assert.True(t, IsDuplicateKey(dup))
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert reserva: %w", dup)))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.False(t, IsDuplicateKey(nil))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, NullIfEmpty(""))
	assert.Equal(t, "999", NullIfEmpty("999"))
}

func TestEnsureSchemaCreatesTablesInOrder(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS vuelo").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS pasajero").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reserva").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), sqlDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS vuelo").WillReturnError(errors.New("denied"))

	err = EnsureSchema(context.Background(), sqlDB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vuelo")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`information_schema.tables`).WithArgs("vuelo").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("vuelo"))
	mock.ExpectQuery(`information_schema.tables`).WithArgs("pasajero").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery(`information_schema.tables`).WithArgs("reserva").
		WillReturnError(errors.New("bad connection"))

	assert.Equal(t, []string{"pasajero", "reserva"}, MissingTables(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestRollbackAfterCommitIsSilent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	out := captureLog(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	Rollback(tx)

	assert.Empty(t, out.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRollbackLogsDriverFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	out := captureLog(t)

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

	tx, err := db.Begin()
	require.NoError(t, err)
	Rollback(tx)

	assert.Contains(t, out.String(), "rollback fallido: connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
