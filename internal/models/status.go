// internal/models/status.go
package models

// Convenção de status textual usada em todo o sistema.
const (
	// Parcelas
	ParcelaPendente = "Pendente"
	ParcelaPaga     = "Paga"

	// Negociações
	NegociacaoProspeccao = "Em prospecção"
	NegociacaoAndamento  = "Em andamento"
	NegociacaoAprovacao  = "Aguardando aprovação"
	NegociacaoFechada    = "Fechado"

	// Corretores (fluxo de aprovação do cadastro)
	CorretorPendente  = "Pendente"
	CorretorAprovado  = "Aprovado"
	CorretorRejeitado = "Rejeitado"

	// Unidades
	UnidadeDisponivel = "Disponível"
	UnidadeReservada  = "Reservado"
	UnidadeVendida    = "Vendido"

	// Recibos
	ReciboPago     = "Paga"
	ReciboPendente = "Pendente"
)

// StatusNegociacaoValido informa se o status é um dos aceitos.
func StatusNegociacaoValido(s string) bool {
	switch s {
	case NegociacaoProspeccao, NegociacaoAndamento, NegociacaoAprovacao, NegociacaoFechada:
		return true
	}
	return false
}
