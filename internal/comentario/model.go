package comentario

import "gorm.io/gorm"

// Comentario registra uma anotação feita em uma negociação, pelo sistema
// ou por um usuário autenticado.
type Comentario struct {
	gorm.Model
	Texto        string `gorm:"type:text;not null" json:"texto"`
	NegociacaoID uint   `gorm:"index;not null" json:"negociacaoId"`
	CorretorID   uint   `json:"corretorId"`
	Sistema      bool   `gorm:"default:false" json:"sistema"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comentario{})
}
