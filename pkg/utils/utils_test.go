package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "0"},
		{value: 200, expected: "200"},
		{value: 1234.5, expected: "1,234.5"},
		{value: 1234567.891234, expected: "1,234,567.891"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatAmount(tt.value))
	}
}

func TestFormatWholeAmount(t *testing.T) {
	assert.Equal(t, "1,235", FormatWholeAmount(1234.5))
	assert.Equal(t, "300", FormatWholeAmount(300))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatCents(1234.5))
	assert.Equal(t, "150.00", FormatCents(150))
}

func TestParseDateTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("RFC3339 mantém o fuso informado na string", func(t *testing.T) {
		parsed, err := ParseDateTime("2024-05-10T12:30:00Z", loc)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)))
	})

	t.Run("Apenas data usa o fuso configurado", func(t *testing.T) {
		parsed, err := ParseDateTime("2024-05-10", loc)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, loc)))
	})

	t.Run("Formato inválido", func(t *testing.T) {
		_, err := ParseDateTime("10/05/2024", loc)
		assert.Error(t, err)
	})
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idSize)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
