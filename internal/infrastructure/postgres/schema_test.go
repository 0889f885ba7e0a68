package postgres

import (
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_FechasConZonaHoraria(t *testing.T) {
	for _, col := range []string{"fecha_venta", "hora_ingreso", "hora_salida"} {
		re := regexp.MustCompile(`(?m)^\s+` + col + `\s+TIMESTAMPTZ\s+NOT NULL`)
		assert.Regexp(t, re, schemaSQL, col)
	}
}

func TestTimestamptz_ConservaElInstante(t *testing.T) {
	m := pgtype.NewMap()
	sent := time.Date(2024, 2, 5, 22, 30, 0, 0, time.FixedZone("BOT", -4*60*60))

	buf, err := m.Encode(pgtype.TimestamptzOID, pgtype.BinaryFormatCode, sent, nil)
	require.NoError(t, err)
	var got time.Time
	require.NoError(t, m.Scan(pgtype.TimestamptzOID, pgtype.BinaryFormatCode, buf, &got))
	assert.True(t, sent.Equal(got), "sent=%s got=%s", sent, got)

	// TIMESTAMP descarta la zona y conserva la hora de reloj.
	buf, err = m.Encode(pgtype.TimestampOID, pgtype.BinaryFormatCode, sent, nil)
	require.NoError(t, err)
	var naive time.Time
	require.NoError(t, m.Scan(pgtype.TimestampOID, pgtype.BinaryFormatCode, buf, &naive))
	assert.False(t, sent.Equal(naive))
}
