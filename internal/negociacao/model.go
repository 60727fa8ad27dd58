// internal/negociacao/model.go
package negociacao

import (
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/parcela"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/permuta"
	"gorm.io/gorm"
)

// Negociacao representa uma tratativa de venda de unidade (lote) para um
// cliente, conduzida por um corretor. Cliente, unidade e corretor são
// referências fracas: apagar o registro referenciado não remove a
// negociação (o id órfão é exibido como "removido").
type Negociacao struct {
	ID        uint           `gorm:"primaryKey" json:"negociacaoId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ClienteID  uint `gorm:"index" json:"clienteId"`
	UnidadeID  uint `gorm:"index" json:"unidadeId"`
	CorretorID uint `gorm:"index" json:"corretorId"`

	ValorContrato        float64 `gorm:"not null;default:0" json:"valorContrato"`
	QtdParcelasPrevistas int     `gorm:"not null;default:0" json:"qtdParcelasPrevistas"`
	Condicoes            string  `gorm:"size:2000" json:"condicoes"`
	Status               string  `gorm:"size:50;not null;index" json:"status"`

	// Token de concorrência otimista: todo PUT precisa enviar a versão
	// atual; divergência indica edição concorrente e vira 409.
	Versao uint `gorm:"not null;default:1" json:"versao"`

	Permutas []permuta.Permuta `gorm:"foreignKey:NegociacaoID;constraint:OnDelete:CASCADE" json:"permutas"`
	Parcelas []parcela.Parcela `gorm:"foreignKey:NegociacaoID;constraint:OnDelete:CASCADE" json:"parcelas"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Negociacao{})
}
