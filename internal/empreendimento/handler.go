package empreendimento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type empreendimentoRequest struct {
	Nome      string `json:"nome"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`
	Matricula string `json:"matricula"`
	Descricao string `json:"descricao"`
}

type unidadeRequest struct {
	Identificacao string          `json:"identificacao"`
	AreaM2        decimal.Decimal `json:"areaM2"`
	ValorTabela   decimal.Decimal `json:"valorTabela"`
	Status        string          `json:"status"`
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

func statusUnidadeValido(s string) bool {
	switch s {
	case models.UnidadeDisponivel, models.UnidadeReservada, models.UnidadeVendida:
		return true
	}
	return false
}

// CriarEmpreendimento trata POST /empreendimentos
func (h *Handler) CriarEmpreendimento(w http.ResponseWriter, r *http.Request) {
	var req empreendimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	e := Empreendimento{
		Nome:      req.Nome,
		Cidade:    req.Cidade,
		Estado:    req.Estado,
		Matricula: req.Matricula,
		Descricao: req.Descricao,
	}
	if err := h.Repository.Salvar(h.DB, &e); err != nil {
		http.Error(w, "erro ao salvar empreendimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// ListarEmpreendimentos trata GET /empreendimentos
func (h *Handler) ListarEmpreendimentos(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar empreendimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarEmpreendimento trata GET /empreendimentos/{id}
func (h *Handler) BuscarEmpreendimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "empreendimento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// AtualizarEmpreendimento trata PUT /empreendimentos/{id}
func (h *Handler) AtualizarEmpreendimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req empreendimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "empreendimento não encontrado", http.StatusNotFound)
		return
	}

	e.Nome = req.Nome
	e.Cidade = req.Cidade
	e.Estado = req.Estado
	e.Matricula = req.Matricula
	e.Descricao = req.Descricao

	if err := h.Repository.Salvar(h.DB, e); err != nil {
		http.Error(w, "erro ao atualizar empreendimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// DeletarEmpreendimento trata DELETE /empreendimentos/{id}
func (h *Handler) DeletarEmpreendimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao remover empreendimento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Empreendimento removido com sucesso"))
}

// CriarUnidade trata POST /empreendimentos/{id}/unidades
func (h *Handler) CriarUnidade(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req unidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Identificacao == "" {
		http.Error(w, "O campo 'identificacao' é obrigatório", http.StatusBadRequest)
		return
	}

	status := req.Status
	if status == "" {
		status = models.UnidadeDisponivel
	}
	if !statusUnidadeValido(status) {
		http.Error(w, "status de unidade inválido", http.StatusBadRequest)
		return
	}

	// O empreendimento precisa existir antes de receber lotes.
	if _, err := h.Repository.BuscarPorID(h.DB, uint(empID)); err != nil {
		http.Error(w, "empreendimento não encontrado", http.StatusNotFound)
		return
	}

	u := Unidade{
		EmpreendimentoID: uint(empID),
		Identificacao:    req.Identificacao,
		AreaM2:           req.AreaM2,
		ValorTabela:      req.ValorTabela,
		Status:           status,
	}
	if err := h.Repository.SalvarUnidade(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar unidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// ListarUnidades trata GET /empreendimentos/{id}/unidades
func (h *Handler) ListarUnidades(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	unidades, err := h.Repository.ListarUnidades(h.DB, uint(empID))
	if err != nil {
		http.Error(w, "erro ao listar unidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(unidades)
}

// AtualizarUnidade trata PUT /unidades/{id}
func (h *Handler) AtualizarUnidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req unidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Status != "" && !statusUnidadeValido(req.Status) {
		http.Error(w, "status de unidade inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarUnidadePorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "unidade não encontrada", http.StatusNotFound)
		return
	}

	if req.Identificacao != "" {
		u.Identificacao = req.Identificacao
	}
	if !req.AreaM2.IsZero() {
		u.AreaM2 = req.AreaM2
	}
	if !req.ValorTabela.IsZero() {
		u.ValorTabela = req.ValorTabela
	}
	if req.Status != "" {
		u.Status = req.Status
	}

	if err := h.Repository.SalvarUnidade(h.DB, u); err != nil {
		http.Error(w, "erro ao atualizar unidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// AtualizarStatusUnidade trata PATCH /unidades/{id}/status
func (h *Handler) AtualizarStatusUnidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !statusUnidadeValido(payload.Status) {
		http.Error(w, "status de unidade inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarStatusUnidade(h.DB, uint(id), payload.Status); err != nil {
		http.Error(w, "erro ao atualizar status da unidade", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Status da unidade atualizado com sucesso"))
}

// DeletarUnidade trata DELETE /unidades/{id}
func (h *Handler) DeletarUnidade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.DeletarUnidade(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao remover unidade", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Unidade removida com sucesso"))
}
