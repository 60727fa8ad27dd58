// internal/parcela/handler.go
package parcela

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/gorilla/mux"
)

/* ============================== Handler & DTOs ============================== */

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /negociacoes/{nid}/parcelas
type ParcelaCreateDTO struct {
	Numero         int       `json:"numero"` // se 0, assume a próxima posição
	Valor          float64   `json:"valor"`
	DataVencimento time.Time `json:"dataVencimento"`
}

// DTO usado no PUT /parcelas/{pid}
type ParcelaUpdateDTO struct {
	Valor          float64   `json:"valor"`
	DataVencimento time.Time `json:"dataVencimento"`
}

// DTO usado no PATCH /parcelas/{pid}/recibo
type VinculoReciboDTO struct {
	ShareID  string `json:"shareId"`
	ShareURL string `json:"shareUrl"`
	Numero   string `json:"numero"`
}

/* ============================== Regras puras ============================== */

// PodeAdicionar informa se a negociação ainda comporta mais uma parcela.
func PodeAdicionar(qtdAtual int64) bool {
	return qtdAtual < MaxPorNegociacao
}

// AlternarStatus é a troca pura Paga<->Pendente.
func AlternarStatus(status string) string {
	if status == models.ParcelaPaga {
		return models.ParcelaPendente
	}
	return models.ParcelaPaga
}

// Desfecho de uma tentativa de vínculo de recibo.
const (
	VinculoNovo     = iota // parcela sem recibo: grava o vínculo
	VinculoRepetido        // mesmo share id: no-op
	VinculoConflito        // share id diferente do já gravado: rejeita
)

// DecidirVinculo aplica a regra de vínculo único e irreversível.
func DecidirVinculo(shareIDAtual, shareIDNovo string) int {
	switch {
	case shareIDAtual == "":
		return VinculoNovo
	case shareIDAtual == shareIDNovo:
		return VinculoRepetido
	default:
		return VinculoConflito
	}
}

/* ============================== Endpoints ============================== */

// GET /negociacoes/{nid}/parcelas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da negociação inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListByNegociacaoID(uint(nid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// POST /negociacoes/{nid}/parcelas
// Rejeita a 101ª parcela dentro da mesma transação que faz o insert.
func (h *Handler) CreateForNegociacao(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da negociação inválido", http.StatusBadRequest)
		return
	}

	var in ParcelaCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	qtd, err := h.Repo.ContarPorNegociacao(tx, uint(nid))
	if err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao contar parcelas", http.StatusInternalServerError)
		return
	}
	if !PodeAdicionar(qtd) {
		_ = tx.Rollback()
		http.Error(w, "Limite de 100 parcelas por negociação atingido", http.StatusUnprocessableEntity)
		return
	}

	numero := in.Numero
	if numero == 0 {
		numero = int(qtd) + 1
	}
	p := &Parcela{
		NegociacaoID:   uint(nid),
		Numero:         numero,
		Valor:          in.Valor,
		DataVencimento: in.DataVencimento,
		Status:         models.ParcelaPendente,
	}

	if err := tx.Create(p).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar parcela", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// PATCH /parcelas/{pid}/status
// Troca pura Paga<->Pendente; emitir recibo nunca passa por aqui.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	novo := AlternarStatus(atual.Status)
	if err := h.Repo.UpdateStatus(uint(pid), novo, time.Now()); err != nil {
		http.Error(w, "Erro ao atualizar status da parcela", http.StatusInternalServerError)
		return
	}

	atualizada, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcela atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// PUT /parcelas/{pid}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var payload ParcelaUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Valor = payload.Valor
	existente.DataVencimento = payload.DataVencimento

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar a parcela", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /parcelas/{pid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByID(uint(pid)); err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* ============================== Vínculo de recibo ============================== */

// PATCH /parcelas/{pid}/recibo
// Operação idempotente: repetir o mesmo share id responde 200 sem efeito;
// tentar trocar um vínculo existente responde 409. Não há desvinculação.
func (h *Handler) VincularRecibo(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	var payload VinculoReciboDTO
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.ShareID == "" {
		http.Error(w, "shareId é obrigatório", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	switch DecidirVinculo(atual.ReciboShareID, payload.ShareID) {
	case VinculoRepetido:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(atual)
		return
	case VinculoConflito:
		http.Error(w, "Parcela já vinculada a outro recibo", http.StatusConflict)
		return
	}

	if err := h.Repo.VincularRecibo(uint(pid), payload.ShareID, payload.ShareURL, payload.Numero, time.Now()); err != nil {
		http.Error(w, "Erro ao vincular recibo à parcela", http.StatusInternalServerError)
		return
	}

	atualizada, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcela atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}
