package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/notificacao"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type createClienteRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	CEP       string `json:"cep"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`
	Notas     string `json:"notas"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func (req *createClienteRequest) validar() []string {
	var erros []string
	if req.Nome == "" {
		erros = append(erros, "O campo 'nome' é obrigatório")
	}
	if req.Documento == "" {
		erros = append(erros, "O campo 'documento' é obrigatório")
	} else if res := utils.ValidarDocumento(req.Documento); !res.Valido {
		erros = append(erros, res.Mensagem)
	}
	if req.Email != "" && !utils.ValidarEmail(req.Email) {
		erros = append(erros, "E-mail inválido")
	}
	if req.Telefone != "" && !utils.ValidarTelefone(req.Telefone) {
		erros = append(erros, "Telefone inválido")
	}
	if req.CEP != "" && !utils.ValidarCEP(req.CEP) {
		erros = append(erros, "CEP inválido")
	}
	return erros
}

func (req *createClienteRequest) paraModelo() *Cliente {
	return &Cliente{
		Nome:      req.Nome,
		Documento: utils.SomenteDigitos(req.Documento),
		Email:     req.Email,
		Telefone:  utils.SomenteDigitos(req.Telefone),
		CEP:       utils.SomenteDigitos(req.CEP),
		Endereco:  req.Endereco,
		Cidade:    req.Cidade,
		Estado:    req.Estado,
		Notas:     req.Notas,
	}
}

// CriarCliente trata POST /clientes
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var req createClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if erros := req.validar(); len(erros) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{"errors": erros})
		return
	}

	c := req.paraModelo()

	// Documento duplicado dispara alerta e bloqueia o cadastro.
	if _, err := h.Repository.BuscarPorDocumento(h.DB, c.Documento); err == nil {
		go notificacao.EnviarAlertaDocumentoDuplicado(c.Documento)
		http.Error(w, "Já existe um cliente cadastrado com este documento", http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "erro ao consultar clientes", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes trata GET /clientes
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// BuscarCliente trata GET /clientes/{id}
func (h *Handler) BuscarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarCliente trata PUT /clientes/{id}
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req createClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if erros := req.validar(); len(erros) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{"errors": erros})
		return
	}

	novo := req.paraModelo()

	// O documento pode pertencer ao próprio registro sendo atualizado.
	if existente, err := h.Repository.BuscarPorDocumento(h.DB, novo.Documento); err == nil && existente.ID != uint(id) {
		http.Error(w, "Já existe um cliente cadastrado com este documento", http.StatusConflict)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), novo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Cliente atualizado com sucesso"))
}

// DeletarCliente trata DELETE /clientes/{id}
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao remover cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Cliente removido com sucesso"))
}
