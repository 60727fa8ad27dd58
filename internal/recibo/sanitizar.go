// internal/recibo/sanitizar.go
package recibo

import (
	"strings"
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/utils"
)

// Sanitizar normaliza o payload recebido num Recibo canônico e devolve a
// lista completa de erros de validação. As checagens repetem as do cliente
// de propósito: o servidor não confia em validação de formulário.
func Sanitizar(req ReciboRequest, agora time.Time) (*Recibo, []string) {
	var erros []string

	numero := strings.TrimSpace(req.Numero)
	if numero == "" {
		erros = append(erros, "numero é obrigatório")
	}

	if req.Valor <= 0 {
		erros = append(erros, "valor deve ser maior que zero")
	}

	recebidoDe := strings.TrimSpace(req.RecebidoDe)
	if recebidoDe == "" {
		erros = append(erros, "recebidoDe é obrigatório")
	}

	documento := utils.SomenteDigitos(req.Documento)
	if documento != "" {
		if r := utils.ValidarDocumento(documento); !r.Valido {
			erros = append(erros, "documento do pagador inválido: "+r.Mensagem)
		}
	}

	referente := strings.TrimSpace(req.Referente)
	if referente == "" {
		erros = append(erros, "referente é obrigatório")
	}

	forma := strings.TrimSpace(req.FormaPagamento)
	if forma == "" {
		erros = append(erros, "formaPagamento é obrigatória")
	}

	var dataPagamento time.Time
	if strings.TrimSpace(req.DataPagamento) == "" {
		erros = append(erros, "dataPagamento é obrigatória")
	} else if !utils.ValidarData(req.DataPagamento) {
		erros = append(erros, "dataPagamento inválida (use aaaa-mm-dd ou dd/mm/aaaa)")
	} else {
		dataPagamento, _ = utils.ParseData(req.DataPagamento)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.ReciboPago
	}
	if status != models.ReciboPago && status != models.ReciboPendente {
		erros = append(erros, "status deve ser 'Paga' ou 'Pendente'")
	}

	emissorNome := strings.TrimSpace(req.Emissor.Nome)
	if emissorNome == "" {
		erros = append(erros, "emissor.nome é obrigatório")
	}
	emissorDocumento := utils.SomenteDigitos(req.Emissor.Documento)
	if emissorDocumento == "" {
		erros = append(erros, "emissor.documento é obrigatório")
	} else if r := utils.ValidarDocumento(emissorDocumento); !r.Valido {
		erros = append(erros, "emissor.documento inválido: "+r.Mensagem)
	}
	if email := strings.TrimSpace(req.Emissor.Email); email != "" && !utils.ValidarEmail(email) {
		erros = append(erros, "emissor.email inválido")
	}

	if len(erros) > 0 {
		return nil, erros
	}

	extenso := strings.TrimSpace(req.ValorPorExtenso)
	if extenso == "" {
		extenso = utils.ValorPorExtenso(req.Valor)
	}

	return &Recibo{
		Numero:           numero,
		Valor:            req.Valor,
		ValorPorExtenso:  extenso,
		RecebidoDe:       recebidoDe,
		Documento:        documento,
		Referente:        referente,
		FormaPagamento:   forma,
		DataPagamento:    dataPagamento,
		DataEmissao:      agora,
		Status:           status,
		EmissorNome:      emissorNome,
		EmissorDocumento: emissorDocumento,
		EmissorEndereco:  strings.TrimSpace(req.Emissor.Endereco),
		EmissorCidade:    strings.TrimSpace(req.Emissor.Cidade),
		EmissorTelefone:  strings.TrimSpace(req.Emissor.Telefone),
		EmissorEmail:     strings.TrimSpace(req.Emissor.Email),
		EmpreendimentoID: req.EmpreendimentoID,
		UnidadeID:        req.UnidadeID,
		ParcelaID:        req.ParcelaID,
		Banco:            strings.TrimSpace(req.Transferencia.Banco),
		Agencia:          strings.TrimSpace(req.Transferencia.Agencia),
		Conta:            strings.TrimSpace(req.Transferencia.Conta),
		TitularConta:     strings.TrimSpace(req.Transferencia.Titular),
		ChavePix:         strings.TrimSpace(req.QROptions.PixKey),
	}, nil
}
