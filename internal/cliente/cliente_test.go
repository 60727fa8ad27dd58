package cliente

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/gorm"
)

// repositorioMemoria guarda clientes num mapa; o *gorm.DB é ignorado.
type repositorioMemoria struct {
	porDocumento map[string]*Cliente
	proximoID    uint
}

func novoRepositorioMemoria() *repositorioMemoria {
	return &repositorioMemoria{porDocumento: map[string]*Cliente{}, proximoID: 1}
}

func (m *repositorioMemoria) Salvar(_ *gorm.DB, c *Cliente) error {
	if c.ID == 0 {
		c.ID = m.proximoID
		m.proximoID++
	}
	m.porDocumento[c.Documento] = c
	return nil
}

func (m *repositorioMemoria) BuscarPorID(_ *gorm.DB, id uint) (*Cliente, error) {
	for _, c := range m.porDocumento {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *repositorioMemoria) BuscarPorDocumento(_ *gorm.DB, documento string) (*Cliente, error) {
	if c, ok := m.porDocumento[documento]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *repositorioMemoria) ListarTodos(_ *gorm.DB) ([]Cliente, error) {
	var out []Cliente
	for _, c := range m.porDocumento {
		out = append(out, *c)
	}
	return out, nil
}

func (m *repositorioMemoria) Atualizar(_ *gorm.DB, id uint, novosDados *Cliente) error {
	c, err := m.BuscarPorID(nil, id)
	if err != nil {
		return err
	}
	*c = *novosDados
	c.ID = id
	return nil
}

func (m *repositorioMemoria) Deletar(_ *gorm.DB, id uint) error {
	for doc, c := range m.porDocumento {
		if c.ID == id {
			delete(m.porDocumento, doc)
			return nil
		}
	}
	return nil
}

func novoHandlerTeste() (*Handler, *repositorioMemoria) {
	repo := novoRepositorioMemoria()
	return &Handler{Repository: repo}, repo
}

func TestCriarClienteValido(t *testing.T) {
	h, repo := novoHandlerTeste()

	body := `{"nome":"João da Silva","documento":"529.982.247-25","email":"joao@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CriarCliente(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status esperado 201, obteve %d: %s", rr.Code, rr.Body.String())
	}
	if _, ok := repo.porDocumento["52998224725"]; !ok {
		t.Error("documento deveria ser armazenado só com dígitos")
	}
}

func TestCriarClienteDocumentoInvalido(t *testing.T) {
	h, _ := novoHandlerTeste()

	body := `{"nome":"Fulano","documento":"111.111.111-11"}`
	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CriarCliente(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, obteve %d", rr.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta deveria ser JSON: %v", err)
	}
	if len(resp["errors"]) == 0 {
		t.Error("esperava lista de erros de validação")
	}
}

func TestCriarClienteDocumentoDuplicado(t *testing.T) {
	h, repo := novoHandlerTeste()
	repo.porDocumento["52998224725"] = &Cliente{Nome: "Original", Documento: "52998224725"}
	repo.porDocumento["52998224725"].ID = 1

	body := `{"nome":"Outro","documento":"52998224725"}`
	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.CriarCliente(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status esperado 409, obteve %d", rr.Code)
	}
}
