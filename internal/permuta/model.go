// internal/permuta/model.go
package permuta

import "gorm.io/gorm"

// Permuta é um bem dado como parte de pagamento numa negociação
// (ex.: veículo, imóvel, outro lote).
type Permuta struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	NegociacaoID  uint    `gorm:"not null;index" json:"negociacaoId"`
	Tipo          string  `gorm:"size:100;not null" json:"tipo"`
	ValorAvaliado float64 `gorm:"not null;default:0" json:"valorAvaliado"`
	Descricao     string  `gorm:"size:500" json:"descricao"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Permuta{})
}
