package cliente

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	BuscarPorDocumento(db *gorm.DB, documento string) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorDocumento(db *gorm.DB, documento string) (*Cliente, error) {
	var c Cliente
	if err := db.Where("documento = ?", documento).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error {
	var existente Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Documento = novosDados.Documento
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.CEP = novosDados.CEP
	existente.Endereco = novosDados.Endereco
	existente.Cidade = novosDados.Cidade
	existente.Estado = novosDados.Estado
	existente.Notas = novosDados.Notas

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cliente{}, id).Error
}
