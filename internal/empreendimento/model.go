package empreendimento

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Empreendimento representa um loteamento comercializado pela imobiliária.
type Empreendimento struct {
	gorm.Model
	Nome      string    `json:"nome"`
	Cidade    string    `json:"cidade"`
	Estado    string    `json:"estado"`
	Matricula string    `json:"matricula"`
	Descricao string    `json:"descricao" gorm:"type:text"`
	Unidades  []Unidade `json:"unidades" gorm:"foreignKey:EmpreendimentoID;constraint:OnDelete:CASCADE"`
}

// Unidade é um lote individual de um empreendimento.
type Unidade struct {
	gorm.Model
	EmpreendimentoID uint            `json:"empreendimentoId" gorm:"index;not null"`
	Identificacao    string          `json:"identificacao"`
	AreaM2           decimal.Decimal `json:"areaM2" gorm:"type:numeric(12,2)"`
	ValorTabela      decimal.Decimal `json:"valorTabela" gorm:"type:numeric(14,2)"`
	Status           string          `json:"status" gorm:"default:Disponível"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Empreendimento{}, &Unidade{})
}
