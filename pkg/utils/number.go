package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatAmount formata um valor com separador de milhar e até três casas decimais (ex: 1,234.568)
func FormatAmount(f float64) string {
	return humanize.Commaf(math.Round(f*1000) / 1000)
}

// FormatWholeAmount formata um valor arredondado para inteiro com separador de milhar
func FormatWholeAmount(f float64) string {
	return humanize.Commaf(math.Round(f))
}

// FormatCents formata um valor sempre com duas casas decimais (ex: 1,234.50)
func FormatCents(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}
