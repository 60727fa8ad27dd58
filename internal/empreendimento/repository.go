package empreendimento

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, e *Empreendimento) error
	BuscarPorID(db *gorm.DB, id uint) (*Empreendimento, error)
	ListarTodos(db *gorm.DB) ([]Empreendimento, error)
	Deletar(db *gorm.DB, id uint) error

	SalvarUnidade(db *gorm.DB, u *Unidade) error
	BuscarUnidadePorID(db *gorm.DB, id uint) (*Unidade, error)
	ListarUnidades(db *gorm.DB, empreendimentoID uint) ([]Unidade, error)
	AtualizarStatusUnidade(db *gorm.DB, id uint, status string) error
	DeletarUnidade(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Empreendimento) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empreendimento, error) {
	var e Empreendimento
	if err := db.Preload("Unidades").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Empreendimento, error) {
	var lista []Empreendimento
	err := db.Preload("Unidades").Order("nome ASC").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Select("Unidades").Delete(&Empreendimento{Model: gorm.Model{ID: id}}).Error
}

func (r *repositoryImpl) SalvarUnidade(db *gorm.DB, u *Unidade) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) BuscarUnidadePorID(db *gorm.DB, id uint) (*Unidade, error) {
	var u Unidade
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) ListarUnidades(db *gorm.DB, empreendimentoID uint) ([]Unidade, error) {
	var unidades []Unidade
	err := db.
		Where("empreendimento_id = ?", empreendimentoID).
		Order("identificacao ASC").
		Find(&unidades).Error
	return unidades, err
}

func (r *repositoryImpl) AtualizarStatusUnidade(db *gorm.DB, id uint, status string) error {
	return db.Model(&Unidade{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repositoryImpl) DeletarUnidade(db *gorm.DB, id uint) error {
	return db.Delete(&Unidade{}, id).Error
}
