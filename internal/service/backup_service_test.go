package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSQLString(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"simple", "'simple'"},
		{"", "''"},
		{"O'Higgins", "'O''Higgins'"},
		{`ruta\archivo`, `'ruta\\archivo'`},
		{`com'bi\nada`, `'com''bi\\nada'`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, quoteSQLString(tt.in))
	}
}

func TestRenderSQLValue(t *testing.T) {
	fecha := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	assert.Equal(t, "NULL", renderSQLValue(nil))
	assert.Equal(t, "1", renderSQLValue(true))
	assert.Equal(t, "0", renderSQLValue(false))
	assert.Equal(t, "42", renderSQLValue(int64(42)))
	assert.Equal(t, "3.5", renderSQLValue(3.5))
	assert.Equal(t, "'texto'", renderSQLValue("texto"))
	assert.Equal(t, "'bytes'", renderSQLValue([]byte("bytes")))
	assert.Equal(t, "'2025-03-14 15:09:26'", renderSQLValue(fecha))
}

func TestRenderValues(t *testing.T) {
	got := renderValues([]any{int64(1), "Kiosco 24hs", nil})
	assert.Equal(t, "1, 'Kiosco 24hs', NULL", got)
}
