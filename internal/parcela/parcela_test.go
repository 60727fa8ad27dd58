package parcela

import (
	"testing"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
)

func TestPodeAdicionar(t *testing.T) {
	casos := []struct {
		qtd      int64
		esperado bool
	}{
		{0, true},
		{50, true},
		{99, true},
		{100, false},
		{150, false},
	}
	for _, c := range casos {
		if got := PodeAdicionar(c.qtd); got != c.esperado {
			t.Errorf("PodeAdicionar(%d) = %v, esperado %v", c.qtd, got, c.esperado)
		}
	}
}

func TestAlternarStatus(t *testing.T) {
	if AlternarStatus(models.ParcelaPendente) != models.ParcelaPaga {
		t.Error("Pendente deveria virar Paga")
	}
	if AlternarStatus(models.ParcelaPaga) != models.ParcelaPendente {
		t.Error("Paga deveria virar Pendente")
	}

	// Alternar duas vezes volta ao estado original.
	for _, s := range []string{models.ParcelaPaga, models.ParcelaPendente} {
		if AlternarStatus(AlternarStatus(s)) != s {
			t.Errorf("alternância dupla não preserva %q", s)
		}
	}
}

func TestDecidirVinculo(t *testing.T) {
	casos := []struct {
		nome     string
		atual    string
		novo     string
		esperado int
	}{
		{"parcela sem vínculo aceita qualquer share id", "", "abc-123", VinculoNovo},
		{"repetir o mesmo share id é no-op", "abc-123", "abc-123", VinculoRepetido},
		{"trocar o vínculo é conflito", "abc-123", "zzz-999", VinculoConflito},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := DecidirVinculo(c.atual, c.novo); got != c.esperado {
				t.Errorf("DecidirVinculo(%q, %q) = %d, esperado %d", c.atual, c.novo, got, c.esperado)
			}
		})
	}
}
