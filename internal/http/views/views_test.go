package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesEveryPage(t *testing.T) {
	tpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "resultados.html", "reserva.html", "allreservas.html", "estado.html", "error.html"} {
		assert.NotNil(t, tpl.Lookup(name), name)
	}
}

func TestErrorPageEscapesMessage(t *testing.T) {
	tpl := MustLoad()
	var buf bytes.Buffer

	err := tpl.ExecuteTemplate(&buf, "error.html", map[string]any{
		"Title":   "Error",
		"Status":  404,
		"Message": "<b>vuelo</b> no encontrado",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;b&gt;vuelo&lt;/b&gt; no encontrado")
}

func TestFuncs(t *testing.T) {
	ts := time.Date(2026, 11, 2, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-11-02 08:30:00", funcs["datetime"].(func(time.Time) string)(ts))
	assert.Equal(t, "S/ 10.50", funcs["soles"].(func(float64) string)(10.5))
}
