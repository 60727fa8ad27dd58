// internal/recibo/handler.go
package recibo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/pix"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Handler orquestra a geração de recibos: sanitizar → assinar → persistir →
// renderizar → responder. Fluxo linear, sem retry; se a renderização falhar
// depois da persistência, o registro assinado permanece e o recibo pode ser
// regerado pelo mesmo número.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Segredo    string
	BaseURL    string
	Agora      func() time.Time
}

// NewHandler cria o handler com segredo e base URL vindos do ambiente.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Segredo:    os.Getenv("RECIBO_SECRET"),
		BaseURL:    os.Getenv("APP_BASE_URL"),
		Agora:      time.Now,
	}
}

// POST /recibos
// Resposta de sucesso: PDF binário com share id/url nos headers.
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	var req ReciboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responderErros(w, []string{"JSON mal formado"})
		return
	}

	rec, erros := Sanitizar(req, h.Agora())
	if len(erros) > 0 {
		responderErros(w, erros)
		return
	}

	// Payload PIX: usa o fornecido pelo chamador ou monta um a partir da chave.
	if req.QROptions.PixPayload != "" {
		rec.PayloadPix = req.QROptions.PixPayload
	} else if rec.ChavePix != "" {
		payload, err := pix.GerarPayload(pix.Cobranca{
			Chave:  rec.ChavePix,
			Nome:   rec.EmissorNome,
			Cidade: rec.EmissorCidade,
			Valor:  rec.Valor,
			TxID:   rec.Numero,
		})
		if err != nil {
			responderErros(w, []string{"não foi possível montar o payload PIX: " + err.Error()})
			return
		}
		rec.PayloadPix = payload
	}

	rec.ShareID = uuid.NewString()
	rec.Hash = CalcularHash(rec, h.Segredo)

	if err := h.Repository.Salvar(h.DB, rec); err != nil {
		h.responderErroServidor(w, fmt.Errorf("erro ao persistir recibo: %w", err))
		return
	}

	verificacao := MontarVerificacao(rec, h.BaseURL)
	pdfBytes, err := GerarPDF(rec, verificacao)
	if err != nil {
		// O registro assinado já está salvo; inconsistência aceita no domínio.
		log.Warn().Str("shareId", rec.ShareID).Err(err).Msg("recibo persistido mas renderização falhou")
		h.responderErroServidor(w, err)
		return
	}

	log.Info().Str("shareId", rec.ShareID).Str("numero", rec.Numero).Msg("recibo emitido")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=recibo-%s.pdf", rec.Numero))
	w.Header().Set("x-recibo-share-id", rec.ShareID)
	w.Header().Set("x-recibo-share-url", verificacao.URL)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// GET /recibos/compartilhado/{shareId}
// Consulta pública usada pelo QR de autenticidade: recomputa o hash a partir
// dos campos armazenados e compara com o persistido.
func (h *Handler) Compartilhado(w http.ResponseWriter, r *http.Request) {
	shareID := mux.Vars(r)["shareId"]

	rec, err := h.Repository.BuscarPorShareID(h.DB, shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responderJSON(w, http.StatusNotFound, map[string]string{"error": "recibo adulterado ou não encontrado"})
			return
		}
		h.responderErroServidor(w, err)
		return
	}

	dto := ReciboCompartilhadoDTO{
		Numero:          rec.Numero,
		Valor:           rec.Valor,
		ValorPorExtenso: rec.ValorPorExtenso,
		RecebidoDe:      rec.RecebidoDe,
		Referente:       rec.Referente,
		FormaPagamento:  rec.FormaPagamento,
		DataPagamento:   rec.DataPagamento.Format("2006-01-02"),
		DataEmissao:     rec.DataEmissao.Format("2006-01-02"),
		Status:          rec.Status,
		EmissorNome:     rec.EmissorNome,
		Hash:            rec.Hash,
		Autentico:       Verificar(rec, h.Segredo),
	}
	responderJSON(w, http.StatusOK, dto)
}

func responderErros(w http.ResponseWriter, erros []string) {
	responderJSON(w, http.StatusBadRequest, map[string][]string{"errors": erros})
}

func (h *Handler) responderErroServidor(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("falha na geração de recibo")
	responderJSON(w, http.StatusInternalServerError, map[string]string{
		"error":       "erro interno ao gerar recibo",
		"errorType":   fmt.Sprintf("%T", err),
		"errorString": err.Error(),
		"timestamp":   h.Agora().Format(time.RFC3339),
	})
}

func responderJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
