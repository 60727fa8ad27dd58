// internal/negociacao/handler.go
package negociacao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/auth"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de negociações
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type negociacaoCreateDTO struct {
	ClienteID            uint    `json:"clienteId"`
	UnidadeID            uint    `json:"unidadeId"`
	CorretorID           uint    `json:"corretorId"`
	ValorContrato        float64 `json:"valorContrato"`
	QtdParcelasPrevistas int     `json:"qtdParcelasPrevistas"`
	Condicoes            string  `json:"condicoes"`
	Status               string  `json:"status"`
}

type negociacaoUpdateDTO struct {
	negociacaoCreateDTO
	Versao uint `json:"versao"`
}

// POST /negociacoes
func (h *Handler) CriarNegociacao(w http.ResponseWriter, r *http.Request) {
	var in negociacaoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if in.Status == "" {
		in.Status = models.NegociacaoProspeccao
	}
	if !models.StatusNegociacaoValido(in.Status) {
		http.Error(w, "Status de negociação inválido", http.StatusBadRequest)
		return
	}
	if in.ValorContrato < 0 {
		http.Error(w, "Valor de contrato não pode ser negativo", http.StatusBadRequest)
		return
	}
	if in.QtdParcelasPrevistas < 0 || in.QtdParcelasPrevistas > 100 {
		http.Error(w, "Quantidade de parcelas prevista deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	n := &Negociacao{
		ClienteID:            in.ClienteID,
		UnidadeID:            in.UnidadeID,
		CorretorID:           in.CorretorID,
		ValorContrato:        in.ValorContrato,
		QtdParcelasPrevistas: in.QtdParcelasPrevistas,
		Condicoes:            in.Condicoes,
		Status:               in.Status,
	}
	if err := h.Repository.Salvar(h.DB, n); err != nil {
		http.Error(w, "Erro ao salvar negociação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(n)
}

// GET /negociacoes
// Admin enxerga todas; corretor apenas as próprias.
func (h *Handler) ListarNegociacoes(w http.ResponseWriter, r *http.Request) {
	perfil := auth.PerfilDoContexto(r.Context())
	userID := auth.UsuarioDoContexto(r.Context())

	var (
		list []Negociacao
		err  error
	)
	if perfil == models.PerfilAdmin {
		list, err = h.Repository.ListarTodas(h.DB)
	} else {
		list, err = h.Repository.ListarPorCorretor(h.DB, userID)
	}
	if err != nil {
		http.Error(w, "Erro ao listar negociações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GET /negociacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Negociação não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(n)
}

// PUT /negociacoes/{id}
// Exige o token de versão corrente; divergência responde 409.
func (h *Handler) AtualizarNegociacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var in negociacaoUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Versao == 0 {
		http.Error(w, "Campo versao é obrigatório para atualização", http.StatusBadRequest)
		return
	}
	if in.Status != "" && !models.StatusNegociacaoValido(in.Status) {
		http.Error(w, "Status de negociação inválido", http.StatusBadRequest)
		return
	}
	if in.QtdParcelasPrevistas < 0 || in.QtdParcelasPrevistas > 100 {
		http.Error(w, "Quantidade de parcelas prevista deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Negociação não encontrada", http.StatusNotFound)
		return
	}

	existente.ClienteID = in.ClienteID
	existente.UnidadeID = in.UnidadeID
	existente.CorretorID = in.CorretorID
	existente.ValorContrato = in.ValorContrato
	existente.QtdParcelasPrevistas = in.QtdParcelasPrevistas
	existente.Condicoes = in.Condicoes
	if in.Status != "" {
		existente.Status = in.Status
	}

	ok, err := h.Repository.AtualizarComVersao(h.DB, existente, in.Versao)
	if err != nil {
		http.Error(w, "Erro ao atualizar negociação", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Negociação alterada por outra sessão; recarregue e tente novamente", http.StatusConflict)
		return
	}

	atualizada, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar negociação atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// DELETE /negociacoes/{id}
func (h *Handler) DeletarNegociacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir negociação", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("negociação excluída com sucesso"))
}

// GET /negociacoes/{id}/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Negociação não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CalcularResumo(n))
}
