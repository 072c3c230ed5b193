package domain

import "time"

// DayLabelLayout é o formato do rótulo diário usado nas séries ("Jan 2")
const DayLabelLayout = "Jan 2"

// SaleRecord representa uma venda registrada pelo usuário
type SaleRecord struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
	Product   string    `json:"product"`
	Region    string    `json:"region"`
	Customer  string    `json:"customer"`
	Margin    *float64  `json:"margin,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// MarginOrZero retorna a margem da venda, considerando margem ausente como zero
func (s SaleRecord) MarginOrZero() float64 {
	if s.Margin == nil {
		return 0
	}
	return *s.Margin
}

// DayLabel formata a data da venda no fuso informado, descartando o horário
func (s SaleRecord) DayLabel(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return s.Date.In(loc).Format(DayLabelLayout)
}
