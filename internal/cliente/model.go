package cliente

import "gorm.io/gorm"

// Cliente representa um comprador ou interessado em unidades dos loteamentos.
type Cliente struct {
	gorm.Model
	Nome      string `json:"nome"`
	Documento string `json:"documento" gorm:"uniqueIndex;size:14"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	CEP       string `json:"cep"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`
	Notas     string `json:"notas" gorm:"type:text"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
