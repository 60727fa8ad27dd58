// internal/recibo/dto.go
package recibo

// EmissorDTO identifica quem emite o recibo.
type EmissorDTO struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
}

// TransferenciaDTO carrega os dados bancários mostrados em recibos pendentes.
type TransferenciaDTO struct {
	Banco   string `json:"banco"`
	Agencia string `json:"agencia"`
	Conta   string `json:"conta"`
	Titular string `json:"titular"`
}

// QROptionsDTO permite ao chamador fornecer a chave PIX ou um payload pronto.
type QROptionsDTO struct {
	PixKey     string `json:"pixKey"`
	PixPayload string `json:"pixPayload"`
}

// ReciboRequest é o corpo aceito pelo POST /recibos.
type ReciboRequest struct {
	Numero          string  `json:"numero"`
	Valor           float64 `json:"valor"`
	ValorPorExtenso string  `json:"valorPorExtenso"`
	RecebidoDe      string  `json:"recebidoDe"`
	Documento       string  `json:"documento"`
	Referente       string  `json:"referente"`
	FormaPagamento  string  `json:"formaPagamento"`
	DataPagamento   string  `json:"dataPagamento"`
	Status          string  `json:"status"`

	Emissor       EmissorDTO       `json:"emissor"`
	Transferencia TransferenciaDTO `json:"transferencia"`
	QROptions     QROptionsDTO     `json:"qrOptions"`

	EmpreendimentoID *uint `json:"empreendimentoId"`
	UnidadeID        *uint `json:"unidadeId"`
	ParcelaID        *uint `json:"parcelaId"`
}

// ReciboCompartilhadoDTO é a resposta da consulta pública por share id.
type ReciboCompartilhadoDTO struct {
	Numero          string  `json:"numero"`
	Valor           float64 `json:"valor"`
	ValorPorExtenso string  `json:"valorPorExtenso"`
	RecebidoDe      string  `json:"recebidoDe"`
	Referente       string  `json:"referente"`
	FormaPagamento  string  `json:"formaPagamento"`
	DataPagamento   string  `json:"dataPagamento"`
	DataEmissao     string  `json:"dataEmissao"`
	Status          string  `json:"status"`
	EmissorNome     string  `json:"emissorNome"`
	Hash            string  `json:"hash"`
	Autentico       bool    `json:"autentico"`
}
