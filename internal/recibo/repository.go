// internal/recibo/repository.go
package recibo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, r *Recibo) error
	BuscarPorShareID(db *gorm.DB, shareID string) (*Recibo, error)
	ListarPorNumero(db *gorm.DB, numero string) ([]Recibo, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (repositoryImpl) Salvar(db *gorm.DB, r *Recibo) error {
	return db.Create(r).Error
}

func (repositoryImpl) BuscarPorShareID(db *gorm.DB, shareID string) (*Recibo, error) {
	var r Recibo
	if err := db.Where("share_id = ?", shareID).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (repositoryImpl) ListarPorNumero(db *gorm.DB, numero string) ([]Recibo, error) {
	var list []Recibo
	err := db.Where("numero = ?", numero).Order("created_at DESC").Find(&list).Error
	return list, err
}
