package corretor

import (
	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"gorm.io/gorm"
)

// Corretor representa um corretor de imóveis credenciado na imobiliária.
// Cadastros entram como Pendente e só conseguem autenticar após aprovação.
type Corretor struct {
	gorm.Model
	Nome      string        `json:"nome"`
	CRECI     string        `json:"creci" gorm:"uniqueIndex"`
	Documento string        `json:"documento" gorm:"uniqueIndex;size:14"`
	Email     string        `json:"email" gorm:"uniqueIndex"`
	Telefone  string        `json:"telefone"`
	Foto      string        `json:"foto"`
	Status    string        `json:"status" gorm:"default:Pendente"`
	Senha     string        `json:"-"`
	Perfil    models.Perfil `json:"perfil" gorm:"default:CORRETOR"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Corretor{})
}
