package negociacao

import (
	"testing"
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/parcela"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/permuta"
)

func TestCalcularResumoComPermuta(t *testing.T) {
	// Cenário do contrato de 100 mil com permuta de 20 mil em 10 parcelas.
	n := &Negociacao{
		ValorContrato:        100000,
		QtdParcelasPrevistas: 10,
		Permutas: []permuta.Permuta{
			{Tipo: "Veículo", ValorAvaliado: 20000},
		},
	}

	resumo := CalcularResumo(n)
	if resumo.SaldoParcelado != 80000 {
		t.Errorf("saldoParcelado = %v, esperado 80000", resumo.SaldoParcelado)
	}
	if resumo.ValorParcelaSimulada == nil || *resumo.ValorParcelaSimulada != 8000 {
		t.Errorf("valorParcelaSimulada = %v, esperado 8000", resumo.ValorParcelaSimulada)
	}
	// Permuta não reduz o saldo em aberto, apenas o saldo parcelado.
	if resumo.SaldoEmAberto != 100000 {
		t.Errorf("saldoEmAberto = %v, esperado 100000", resumo.SaldoEmAberto)
	}
}

func TestCalcularResumoSemParcelasPrevistas(t *testing.T) {
	n := &Negociacao{ValorContrato: 50000}
	resumo := CalcularResumo(n)
	if resumo.ValorParcelaSimulada != nil {
		t.Error("sem parcelas previstas, valorParcelaSimulada deveria ser nulo")
	}
}

func TestCalcularResumoTotais(t *testing.T) {
	venc1 := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	venc2 := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	n := &Negociacao{
		ValorContrato: 30000,
		Parcelas: []parcela.Parcela{
			{Valor: 10000, Status: models.ParcelaPaga},
			{Valor: 5000, Status: models.ParcelaPendente, DataVencimento: venc2},
			{Valor: 5000, Status: models.ParcelaPendente, DataVencimento: venc1},
		},
	}

	resumo := CalcularResumo(n)
	if resumo.TotalPago != 10000 {
		t.Errorf("totalPago = %v", resumo.TotalPago)
	}
	if resumo.TotalPendente != 10000 {
		t.Errorf("totalPendente = %v", resumo.TotalPendente)
	}
	if resumo.SaldoEmAberto != 20000 {
		t.Errorf("saldoEmAberto = %v", resumo.SaldoEmAberto)
	}
	if resumo.ProximoVencimento == nil || !resumo.ProximoVencimento.Equal(venc1) {
		t.Errorf("proximoVencimento = %v, esperado %v", resumo.ProximoVencimento, venc1)
	}
	if resumo.QtdParcelas != 3 {
		t.Errorf("qtdParcelas = %d", resumo.QtdParcelas)
	}
}

// Pagar mais que o contrato não deixa o saldo negativo.
func TestCalcularResumoSaldoNaoNegativo(t *testing.T) {
	n := &Negociacao{
		ValorContrato: 1000,
		Parcelas: []parcela.Parcela{
			{Valor: 1500, Status: models.ParcelaPaga},
		},
		Permutas: []permuta.Permuta{
			{ValorAvaliado: 2000},
		},
	}
	resumo := CalcularResumo(n)
	if resumo.SaldoEmAberto != 0 {
		t.Errorf("saldoEmAberto = %v, esperado 0", resumo.SaldoEmAberto)
	}
	if resumo.SaldoParcelado != 0 {
		t.Errorf("saldoParcelado = %v, esperado 0", resumo.SaldoParcelado)
	}
}
