package corretor

import "gorm.io/gorm"

type Repository interface {
	BuscarPorEmailOuCRECI(db *gorm.DB, valor string) (*Corretor, error)
	Salvar(db *gorm.DB, c *Corretor) error
	BuscarPorID(db *gorm.DB, id uint) (*Corretor, error)
	ListarTodos(db *gorm.DB) ([]Corretor, error)
	ListarPorStatus(db *gorm.DB, status string) ([]Corretor, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Corretor) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CRECI, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCRECI(db *gorm.DB, valor string) (*Corretor, error) {
	var c Corretor

	if err := db.Where("email = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}
	if err := db.Where("creci = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Corretor) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Corretor, error) {
	var c Corretor
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Corretor, error) {
	var corretores []Corretor
	err := db.Order("nome ASC").Find(&corretores).Error
	return corretores, err
}

func (r *repositoryImpl) ListarPorStatus(db *gorm.DB, status string) ([]Corretor, error) {
	var corretores []Corretor
	err := db.Where("status = ?", status).Order("created_at ASC").Find(&corretores).Error
	return corretores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Corretor) error {
	var existente Corretor
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.CRECI = novosDados.CRECI
	existente.Documento = novosDados.Documento
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	if novosDados.Foto != "" {
		existente.Foto = novosDados.Foto
	}

	return db.Save(&existente).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Corretor{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Corretor{}, id).Error
}
