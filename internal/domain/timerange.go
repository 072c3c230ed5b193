package domain

import (
	"errors"
	"time"
)

// TimeRange identifica o período selecionado no dashboard
type TimeRange string

const (
	TimeRangeLast7Days   TimeRange = "last_7_days"
	TimeRangeLast30Days  TimeRange = "last_30_days"
	TimeRangeLastQuarter TimeRange = "last_quarter"
	TimeRangeYTD         TimeRange = "ytd"
)

var ErrInvalidTimeRange = errors.New("período inválido")

// TimeRanges lista os períodos aceitos, na ordem exibida no seletor
var TimeRanges = []TimeRange{
	TimeRangeLast7Days,
	TimeRangeLast30Days,
	TimeRangeLastQuarter,
	TimeRangeYTD,
}

func ParseTimeRange(value string) (TimeRange, error) {
	for _, tr := range TimeRanges {
		if string(tr) == value {
			return tr, nil
		}
	}
	return "", ErrInvalidTimeRange
}

// SinceDate calcula a data inicial do período a partir de now.
// ytd retorna 1º de janeiro às 00:00 no fuso de now.
func (tr TimeRange) SinceDate(now time.Time) (time.Time, error) {
	switch tr {
	case TimeRangeLast7Days:
		return now.AddDate(0, 0, -7), nil
	case TimeRangeLast30Days:
		return now.AddDate(0, 0, -30), nil
	case TimeRangeLastQuarter:
		return now.AddDate(0, -3, 0), nil
	case TimeRangeYTD:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, ErrInvalidTimeRange
}
