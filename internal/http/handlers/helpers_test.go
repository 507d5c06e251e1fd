package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	intconfig "airline/internal/config"
	"airline/internal/http/middleware"
	"airline/internal/http/views"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	testSecret = []byte("handler-test-secret")
	departure  = time.Date(2026, 11, 2, 8, 30, 0, 0, time.UTC)
	bookedAt   = time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC)

	flightCols = []string{"id_vuelo", "numero_vuelo", "origen", "destino", "fecha_salida", "fecha_llegada",
		"aeronave", "asientos_totales", "asientos_disponibles", "estado"}
	passengerCols = []string{"id_pasajero", "dni", "nombres", "apellidos", "email", "telefono", "fecha_registro"}
	detailCols    = []string{"id_reserva", "codigo_pnr", "id_pasajero", "id_vuelo", "fecha_reserva", "estado", "total_reserva",
		"p_id", "dni", "nombres", "apellidos", "email", "telefono", "fecha_registro",
		"v_id", "numero_vuelo", "origen", "destino", "fecha_salida", "fecha_llegada",
		"aeronave", "asientos_totales", "asientos_disponibles", "v_estado"}
)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Close() {}

// setupTestDB swaps the shared pool for a sqlmock one for the duration of t.
func setupTestDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})
	return mock
}

func setupTestRouter(t *testing.T) (*gin.Engine, *recordingPublisher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pub := &recordingPublisher{}
	Configure(pub, testSecret)
	t.Cleanup(func() { Configure(nil, nil) })

	r := gin.New()
	r.Use(middleware.RequestID())
	r.SetHTMLTemplate(views.MustLoad())

	r.GET("/", Index)
	r.GET("/buscar_vuelos", SearchRedirect)
	r.POST("/buscar_vuelos", SearchFlights)
	r.GET("/reservas", BookableFlights)
	r.POST("/registrores", CreateReservation)
	r.GET("/voucher/:id", Voucher)
	r.GET("/estado_vuelo", ReservationStatus)
	r.POST("/estado_vuelo", ReservationStatus)
	r.GET("/api/pasajero", PassengerLookup)
	r.GET("/api/origenes", Origins)
	r.GET("/api/destinos/:origen", Destinations)
	r.GET("/api/voucher/verificar", VerifyVoucher)
	r.GET("/api/health", Health)
	r.GET("/api/db-check", DBCheck)
	return r, pub
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func doForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func flightRow(id int64, available int, status string) *sqlmock.Rows {
	return sqlmock.NewRows(flightCols).
		AddRow(id, "LA2041", "LIM", "CUZ", departure, departure.Add(80*time.Minute), "A320", 180, available, status)
}

func detailRows() *sqlmock.Rows {
	return sqlmock.NewRows(detailCols).AddRow(
		int64(5), "PNR005", int64(9), int64(7), bookedAt, "PENDIENTE", 432.1,
		int64(9), "45879632", "Ana", "Quispe", "ana@example.com", "987654321", bookedAt,
		int64(7), "LA2041", "LIM", "CUZ", departure, departure.Add(80*time.Minute),
		"A320", 180, 11, "PROGRAMADO",
	)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func doGetWithCookie(r http.Handler, path string, c *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(c)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
