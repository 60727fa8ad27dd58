// internal/negociacao/repository.go
package negociacao

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, n *Negociacao) error
	ListarTodas(db *gorm.DB) ([]Negociacao, error)
	ListarPorCorretor(db *gorm.DB, corretorID uint) ([]Negociacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Negociacao, error)
	AtualizarComVersao(db *gorm.DB, n *Negociacao, versaoEsperada uint) (bool, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, n *Negociacao) error {
	if n.Versao == 0 {
		n.Versao = 1
	}
	return db.Create(n).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Negociacao, error) {
	var list []Negociacao
	err := db.
		Preload("Permutas").
		Preload("Parcelas").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorCorretor(db *gorm.DB, corretorID uint) ([]Negociacao, error) {
	var list []Negociacao
	err := db.
		Where("corretor_id = ?", corretorID).
		Preload("Permutas").
		Preload("Parcelas").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Negociacao, error) {
	var n Negociacao
	err := db.
		Preload("Permutas").
		Preload("Parcelas").
		First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// AtualizarComVersao grava apenas se a versão persistida for a esperada,
// incrementando o token. Devolve false quando outra sessão ganhou a escrita.
func (r *repositoryImpl) AtualizarComVersao(db *gorm.DB, n *Negociacao, versaoEsperada uint) (bool, error) {
	res := db.Model(&Negociacao{}).
		Where("id = ? AND versao = ?", n.ID, versaoEsperada).
		Updates(map[string]interface{}{
			"cliente_id":             n.ClienteID,
			"unidade_id":             n.UnidadeID,
			"corretor_id":            n.CorretorID,
			"valor_contrato":         n.ValorContrato,
			"qtd_parcelas_previstas": n.QtdParcelasPrevistas,
			"condicoes":              n.Condicoes,
			"status":                 n.Status,
			"versao":                 versaoEsperada + 1,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Negociacao{}, id).Error
}
