package utils

import (
	"testing"
	"time"
)

func TestFormatarMoeda(t *testing.T) {
	casos := []struct {
		valor    float64
		esperado string
	}{
		{0, "R$ 0,00"},
		{0.5, "R$ 0,50"},
		{1234.56, "R$ 1.234,56"},
		{95000, "R$ 95.000,00"},
		{1500000.1, "R$ 1.500.000,10"},
		{-42.9, "-R$ 42,90"},
	}
	for _, c := range casos {
		if got := FormatarMoeda(c.valor); got != c.esperado {
			t.Errorf("FormatarMoeda(%v) = %q; esperava %q", c.valor, got, c.esperado)
		}
	}
}

func TestFormatarData(t *testing.T) {
	d := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	if got := FormatarData(d); got != "07/03/2026" {
		t.Errorf("FormatarData = %q", got)
	}
}

func TestParseDataDoisFormatos(t *testing.T) {
	iso, err := ParseData("2026-03-07")
	if err != nil {
		t.Fatalf("formato ISO deveria ser aceito: %v", err)
	}
	br, err := ParseData("07/03/2026")
	if err != nil {
		t.Fatalf("formato brasileiro deveria ser aceito: %v", err)
	}
	if !iso.Equal(br) {
		t.Errorf("as duas formas deveriam produzir a mesma data: %v x %v", iso, br)
	}

	if _, err := ParseData("07-03-2026"); err == nil {
		t.Error("formato não suportado deveria falhar")
	}
}
