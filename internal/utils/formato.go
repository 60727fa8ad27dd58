// internal/utils/formato.go
package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatarMoeda formata um valor em reais no padrão pt-BR: R$ 1.234,56.
func FormatarMoeda(valor float64) string {
	d := decimal.NewFromFloat(valor).Round(2)
	negativo := d.IsNegative()
	if negativo {
		d = d.Neg()
	}

	fixo := d.StringFixed(2) // ex.: "1234.56"
	partes := strings.SplitN(fixo, ".", 2)
	inteiro, centavos := partes[0], partes[1]

	// Agrupa os milhares com ponto.
	var sb strings.Builder
	pre := len(inteiro) % 3
	if pre > 0 {
		sb.WriteString(inteiro[:pre])
	}
	for i := pre; i < len(inteiro); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(inteiro[i : i+3])
	}

	out := "R$ " + sb.String() + "," + centavos
	if negativo {
		out = "-" + out
	}
	return out
}

// FormatarData devolve a data no formato brasileiro dd/mm/aaaa.
func FormatarData(t time.Time) string {
	return t.Format("02/01/2006")
}

// ParseData aceita os mesmos formatos de ValidarData.
func ParseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", s)
}
