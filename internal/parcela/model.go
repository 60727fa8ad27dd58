// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// MaxPorNegociacao limita o plano de pagamento de uma negociação.
const MaxPorNegociacao = 100

// Parcela representa uma única parcela do plano de pagamento de uma negociação.
type Parcela struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	NegociacaoID   uint       `gorm:"not null;index" json:"negociacaoId"`
	Numero         int        `gorm:"not null" json:"numero"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time  `gorm:"not null" json:"dataVencimento"`
	Status         string     `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento"`

	// Vínculo com o recibo emitido para a parcela. Preenchido uma única vez;
	// não existe desvinculação.
	ReciboShareID   string     `gorm:"size:36" json:"reciboShareId,omitempty"`
	ReciboShareURL  string     `gorm:"size:255" json:"reciboShareUrl,omitempty"`
	ReciboNumero    string     `gorm:"size:50" json:"reciboNumero,omitempty"`
	ReciboEmitidoEm *time.Time `json:"reciboEmitidoEm,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
