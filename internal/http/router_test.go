package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "airline/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterRegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{})

	got := map[string]bool{}
	for _, ri := range r.Routes() {
		got[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /buscar_vuelos",
		"POST /buscar_vuelos",
		"GET /reservas",
		"POST /registrores",
		"GET /voucher/:id",
		"GET /estado_vuelo",
		"POST /estado_vuelo",
		"GET /api/pasajero",
		"GET /api/origenes",
		"GET /api/destinos/:origen",
		"GET /api/voucher/verificar",
		"GET /api/health",
		"GET /api/db-check",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ruta no encontrada")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterServesLandingPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{CORSOrigins: []string{"http://front.example"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://front.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://front.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
