// internal/parcela/repository.go
package parcela

import (
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de parcelas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ContarPorNegociacao conta as parcelas existentes da negociação.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) ContarPorNegociacao(db *gorm.DB, negociacaoID uint) (int64, error) {
	if db == nil {
		db = r.DB
	}
	var total int64
	err := db.Model(&Parcela{}).
		Where("negociacao_id = ?", negociacaoID).
		Count(&total).Error
	return total, err
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByNegociacaoID devolve as parcelas da negociação por vencimento.
func (r *Repository) ListByNegociacaoID(negociacaoID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("negociacao_id = ?", negociacaoID).
		Order("data_vencimento ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// Update atualiza todos os campos de uma parcela existente (Save exige PK).
func (r *Repository) Update(p *Parcela) error {
	return r.DB.Save(p).Error
}

// DeleteByID apaga a parcela; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&Parcela{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus grava o status e ajusta data_pagamento.
// - Se status == "Paga", define data_pagamento = data informada.
// - Caso contrário, zera data_pagamento (NULL).
func (r *Repository) UpdateStatus(id uint, status string, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == models.ParcelaPaga {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&Parcela{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// VincularRecibo grava os dados do recibo emitido para a parcela.
func (r *Repository) VincularRecibo(id uint, shareID, shareURL, numero string, emitidoEm time.Time) error {
	return r.DB.Model(&Parcela{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"recibo_share_id":   shareID,
			"recibo_share_url":  shareURL,
			"recibo_numero":     numero,
			"recibo_emitido_em": &emitidoEm,
		}).Error
}
