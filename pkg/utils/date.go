package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma data no formato 2006-01-02. String vazia retorna a data zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateTime aceita RFC3339 ou apenas a data (2006-01-02), interpretada no fuso informado
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: esperado RFC3339 ou 2006-01-02", value)
	}

	return t, nil
}
