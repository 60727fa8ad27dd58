// internal/negociacao/resumo.go
package negociacao

import (
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/shopspring/decimal"
)

// ResumoFinanceiro agrega a posição da negociação a partir das parcelas e
// permutas carregadas.
type ResumoFinanceiro struct {
	TotalPago      float64 `json:"totalPago"`
	TotalPendente  float64 `json:"totalPendente"`
	TotalPermutas  float64 `json:"totalPermutas"`
	SaldoEmAberto  float64 `json:"saldoEmAberto"`
	SaldoParcelado float64 `json:"saldoParcelado"`
	// Nulo quando não há parcelas previstas (o front exibe "—").
	ValorParcelaSimulada *float64   `json:"valorParcelaSimulada"`
	ProximoVencimento    *time.Time `json:"proximoVencimento"`
	QtdParcelas          int        `json:"qtdParcelas"`
}

// CalcularResumo computa os agregados financeiros da negociação.
//
// saldoEmAberto desconta apenas pagamentos efetivos; permutas reduzem
// somente o saldoParcelado (o montante que será dividido em parcelas).
func CalcularResumo(n *Negociacao) ResumoFinanceiro {
	zero := decimal.Zero
	totalPago := zero
	totalPendente := zero
	var proximo *time.Time

	for i := range n.Parcelas {
		p := &n.Parcelas[i]
		valor := decimal.NewFromFloat(p.Valor)
		switch p.Status {
		case models.ParcelaPaga:
			totalPago = totalPago.Add(valor)
		case models.ParcelaPendente:
			totalPendente = totalPendente.Add(valor)
			if proximo == nil || p.DataVencimento.Before(*proximo) {
				v := p.DataVencimento
				proximo = &v
			}
		}
	}

	totalPermutas := zero
	for i := range n.Permutas {
		totalPermutas = totalPermutas.Add(decimal.NewFromFloat(n.Permutas[i].ValorAvaliado))
	}

	contrato := decimal.NewFromFloat(n.ValorContrato)

	saldoEmAberto := contrato.Sub(totalPago)
	if saldoEmAberto.IsNegative() {
		saldoEmAberto = zero
	}

	saldoParcelado := contrato.Sub(totalPermutas)
	if saldoParcelado.IsNegative() {
		saldoParcelado = zero
	}

	resumo := ResumoFinanceiro{
		TotalPago:      totalPago.InexactFloat64(),
		TotalPendente:  totalPendente.InexactFloat64(),
		TotalPermutas:  totalPermutas.InexactFloat64(),
		SaldoEmAberto:  saldoEmAberto.InexactFloat64(),
		SaldoParcelado: saldoParcelado.InexactFloat64(),
		ProximoVencimento: proximo,
		QtdParcelas:    len(n.Parcelas),
	}

	if n.QtdParcelasPrevistas > 0 {
		simulada := saldoParcelado.
			Div(decimal.NewFromInt(int64(n.QtdParcelasPrevistas))).
			Round(2).
			InexactFloat64()
		resumo.ValorParcelaSimulada = &simulada
	}

	return resumo
}
