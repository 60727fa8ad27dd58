// internal/recibo/model.go
package recibo

import (
	"time"

	"gorm.io/gorm"
)

// Recibo é o registro persistido de um recibo emitido. Depois de salvo, o
// par (campos assinados, hash) é estável: regerar o mesmo número com os
// mesmos campos reproduz o mesmo hash.
type Recibo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Numero          string    `gorm:"size:50;not null;index" json:"numero"`
	Valor           float64   `gorm:"not null" json:"valor"`
	ValorPorExtenso string    `gorm:"size:500" json:"valorPorExtenso"`
	RecebidoDe      string    `gorm:"size:255;not null" json:"recebidoDe"`
	Documento       string    `gorm:"size:20" json:"documento"`
	Referente       string    `gorm:"size:500" json:"referente"`
	FormaPagamento  string    `gorm:"size:50" json:"formaPagamento"`
	DataPagamento   time.Time `json:"dataPagamento"`
	DataEmissao     time.Time `json:"dataEmissao"`
	Status          string    `gorm:"size:20;not null" json:"status"` // "Paga" | "Pendente"

	// Identidade do emissor (imobiliária ou corretor)
	EmissorNome      string `gorm:"size:255;not null" json:"emissorNome"`
	EmissorDocumento string `gorm:"size:20;not null" json:"emissorDocumento"`
	EmissorEndereco  string `gorm:"size:500" json:"emissorEndereco"`
	EmissorCidade    string `gorm:"size:100" json:"emissorCidade"`
	EmissorTelefone  string `gorm:"size:30" json:"emissorTelefone"`
	EmissorEmail     string `gorm:"size:255" json:"emissorEmail"`

	// Vínculos opcionais com o restante do sistema (referência fraca)
	EmpreendimentoID *uint `json:"empreendimentoId,omitempty"`
	UnidadeID        *uint `json:"unidadeId,omitempty"`
	ParcelaID        *uint `json:"parcelaId,omitempty"`

	// Dados de transferência bancária, exibidos apenas quando pendente
	Banco        string `gorm:"size:100" json:"banco,omitempty"`
	Agencia      string `gorm:"size:20" json:"agencia,omitempty"`
	Conta        string `gorm:"size:30" json:"conta,omitempty"`
	TitularConta string `gorm:"size:255" json:"titularConta,omitempty"`

	// PIX
	ChavePix   string `gorm:"size:100" json:"chavePix,omitempty"`
	PayloadPix string `gorm:"size:512" json:"payloadPix,omitempty"`

	// Autenticidade
	Hash    string `gorm:"size:64;not null" json:"hash"`
	ShareID string `gorm:"size:36;not null;uniqueIndex" json:"shareId"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Recibo{})
}
