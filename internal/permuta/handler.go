// internal/permuta/handler.go
package permuta

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type permutaDTO struct {
	Tipo          string  `json:"tipo"`
	ValorAvaliado float64 `json:"valorAvaliado"`
	Descricao     string  `json:"descricao"`
}

// POST /negociacoes/{nid}/permutas
func (h *Handler) CreateForNegociacao(w http.ResponseWriter, r *http.Request) {
	nid, err := strconv.Atoi(mux.Vars(r)["nid"])
	if err != nil {
		http.Error(w, "ID da negociação inválido", http.StatusBadRequest)
		return
	}

	var in permutaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Tipo == "" {
		http.Error(w, "tipo da permuta é obrigatório", http.StatusBadRequest)
		return
	}
	if in.ValorAvaliado < 0 {
		http.Error(w, "valor avaliado não pode ser negativo", http.StatusBadRequest)
		return
	}

	p := &Permuta{
		NegociacaoID:  uint(nid),
		Tipo:          in.Tipo,
		ValorAvaliado: in.ValorAvaliado,
		Descricao:     in.Descricao,
	}
	if err := h.DB.Create(p).Error; err != nil {
		http.Error(w, "Erro ao criar permuta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /permutas/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var p Permuta
	if err := h.DB.First(&p, id).Error; err != nil {
		http.Error(w, "Permuta não encontrada", http.StatusNotFound)
		return
	}

	var in permutaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p.Tipo = in.Tipo
	p.ValorAvaliado = in.ValorAvaliado
	p.Descricao = in.Descricao
	if err := h.DB.Save(&p).Error; err != nil {
		http.Error(w, "Erro ao atualizar permuta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DELETE /permutas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	res := h.DB.Delete(&Permuta{}, id)
	if res.Error != nil {
		http.Error(w, "Erro ao deletar permuta", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Permuta não encontrada", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
