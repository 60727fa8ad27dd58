package utils

import "testing"

func TestValorPorExtenso(t *testing.T) {
	casos := []struct {
		valor    float64
		esperado string
	}{
		{0, "zero reais"},
		{1, "um real"},
		{0.50, "cinquenta centavos"},
		{0.01, "um centavo"},
		{100, "cem reais"},
		{101, "cento e um reais"},
		{1500, "mil e quinhentos reais"},
		{8000, "oito mil reais"},
		{1500.75, "mil e quinhentos reais e setenta e cinco centavos"},
		{100000, "cem mil reais"},
		{1000000, "um milhão de reais"},
		{2500000, "dois milhões e quinhentos mil reais"},
	}
	for _, c := range casos {
		if got := ValorPorExtenso(c.valor); got != c.esperado {
			t.Errorf("ValorPorExtenso(%v) = %q, esperado %q", c.valor, got, c.esperado)
		}
	}
}

func TestFormatarMoedaExtenso(t *testing.T) {
	casos := []struct {
		valor    float64
		esperado string
	}{
		{0, "R$ 0,00"},
		{1500, "R$ 1.500,00"},
		{1234567.89, "R$ 1.234.567,89"},
		{-42.5, "-R$ 42,50"},
	}
	for _, c := range casos {
		if got := FormatarMoeda(c.valor); got != c.esperado {
			t.Errorf("FormatarMoeda(%v) = %q, esperado %q", c.valor, got, c.esperado)
		}
	}
}
