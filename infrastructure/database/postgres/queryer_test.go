package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsViolation(t *testing.T) {
	checkErr := &pq.Error{Code: CheckViolation, Constraint: "sales_amount_check"}

	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{name: "Erro direto", err: checkErr, code: CheckViolation, expected: true},
		{name: "Erro embrulhado", err: fmt.Errorf("erro ao gravar vendas: %w", checkErr), code: CheckViolation, expected: true},
		{name: "Outro código", err: checkErr, code: UniqueViolation, expected: false},
		{name: "Erro que não é do postgres", err: errors.New("timeout"), code: CheckViolation, expected: false},
		{name: "Nil", err: nil, code: CheckViolation, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsViolation(tt.err, tt.code))
		})
	}
}
