package recibo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// repositorioMemoria implementa Repository em memória para os testes de
// handler, ignorando o *gorm.DB.
type repositorioMemoria struct {
	porShareID map[string]*Recibo
	falhaAoSalvar bool
}

func novoRepositorioMemoria() *repositorioMemoria {
	return &repositorioMemoria{porShareID: map[string]*Recibo{}}
}

func (m *repositorioMemoria) Salvar(_ *gorm.DB, r *Recibo) error {
	if m.falhaAoSalvar {
		return gorm.ErrInvalidDB
	}
	copia := *r
	m.porShareID[r.ShareID] = &copia
	return nil
}

func (m *repositorioMemoria) BuscarPorShareID(_ *gorm.DB, shareID string) (*Recibo, error) {
	r, ok := m.porShareID[shareID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *r
	return &copia, nil
}

func (m *repositorioMemoria) ListarPorNumero(_ *gorm.DB, numero string) ([]Recibo, error) {
	var out []Recibo
	for _, r := range m.porShareID {
		if r.Numero == numero {
			out = append(out, *r)
		}
	}
	return out, nil
}

func handlerDeTeste(repo Repository) *Handler {
	return &Handler{
		Repository: repo,
		Segredo:    "segredo-de-teste",
		BaseURL:    "https://sgci.exemplo.com.br",
		Agora:      func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func postRecibo(t *testing.T, h *Handler, corpo any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(corpo)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/recibos", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h.Gerar(rr, req)
	return rr
}

func TestGerarReciboFluxoCompleto(t *testing.T) {
	repo := novoRepositorioMemoria()
	h := handlerDeTeste(repo)

	corpo := requestValida()
	corpo.FormaPagamento = "PIX"
	corpo.QROptions.PixKey = "financeiro@terravista.com.br"

	rr := postRecibo(t, h, corpo)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, corpo: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type %q", ct)
	}
	if rr.Body.Len() == 0 {
		t.Fatal("PDF vazio")
	}
	if !bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")) {
		t.Error("corpo não parece um PDF")
	}

	shareID := rr.Header().Get("x-recibo-share-id")
	if shareID == "" {
		t.Fatal("header x-recibo-share-id ausente")
	}
	shareURL := rr.Header().Get("x-recibo-share-url")
	if !strings.HasSuffix(shareURL, "/recibos/compartilhado/"+shareID) {
		t.Errorf("share url inesperada: %s", shareURL)
	}

	// A consulta pública reproduz o valor e confirma o hash.
	req := httptest.NewRequest(http.MethodGet, "/recibos/compartilhado/"+shareID, nil)
	req = mux.SetURLVars(req, map[string]string{"shareId": shareID})
	rr2 := httptest.NewRecorder()
	h.Compartilhado(rr2, req)
	if rr2.Code != http.StatusOK {
		t.Fatalf("lookup status %d", rr2.Code)
	}
	var dto ReciboCompartilhadoDTO
	if err := json.Unmarshal(rr2.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.Valor != 1500.00 {
		t.Errorf("valor divergente na consulta: %v", dto.Valor)
	}
	if !dto.Autentico {
		t.Error("recibo recém-emitido reprovado na verificação")
	}
	if dto.Hash == "" {
		t.Error("hash ausente na consulta pública")
	}
}

func TestGerarReciboCampoObrigatorioAusente(t *testing.T) {
	h := handlerDeTeste(novoRepositorioMemoria())

	corpo := requestValida()
	corpo.RecebidoDe = ""

	rr := postRecibo(t, h, corpo)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, esperado 400", rr.Code)
	}
	var resposta struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resposta); err != nil {
		t.Fatal(err)
	}
	achou := false
	for _, e := range resposta.Errors {
		if strings.Contains(e, "recebidoDe") {
			achou = true
		}
	}
	if !achou {
		t.Errorf("errors não menciona recebidoDe: %v", resposta.Errors)
	}
}

func TestGerarReciboFalhaDePersistencia(t *testing.T) {
	repo := novoRepositorioMemoria()
	repo.falhaAoSalvar = true
	h := handlerDeTeste(repo)

	rr := postRecibo(t, h, requestValida())
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, esperado 500", rr.Code)
	}
	var resposta map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resposta); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"error", "errorType", "errorString", "timestamp"} {
		if resposta[k] == "" {
			t.Errorf("campo %q ausente na resposta de erro", k)
		}
	}
}

func TestCompartilhadoNaoEncontrado(t *testing.T) {
	h := handlerDeTeste(novoRepositorioMemoria())
	req := httptest.NewRequest(http.MethodGet, "/recibos/compartilhado/nao-existe", nil)
	req = mux.SetURLVars(req, map[string]string{"shareId": "nao-existe"})
	rr := httptest.NewRecorder()
	h.Compartilhado(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, esperado 404", rr.Code)
	}
}

func TestCompartilhadoAdulterado(t *testing.T) {
	repo := novoRepositorioMemoria()
	h := handlerDeTeste(repo)

	rr := postRecibo(t, h, requestValida())
	shareID := rr.Header().Get("x-recibo-share-id")

	// Adultera o valor armazenado por fora.
	repo.porShareID[shareID].Valor = 9999.99

	req := httptest.NewRequest(http.MethodGet, "/recibos/compartilhado/"+shareID, nil)
	req = mux.SetURLVars(req, map[string]string{"shareId": shareID})
	rr2 := httptest.NewRecorder()
	h.Compartilhado(rr2, req)

	var dto ReciboCompartilhadoDTO
	if err := json.Unmarshal(rr2.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.Autentico {
		t.Error("recibo adulterado passou na verificação")
	}
}

// O PDF deve nascer com os dois QRs quando há PIX configurado.
func TestGerarPDFComPix(t *testing.T) {
	rec := reciboBase()
	rec.ValorPorExtenso = "mil e quinhentos reais"
	rec.RecebidoDe = "João da Silva"
	rec.Referente = "Parcela 3/24"
	rec.FormaPagamento = "PIX"
	rec.Status = "Pendente"
	rec.Banco = "001"
	rec.Agencia = "1234"
	rec.Conta = "56789-0"
	rec.ChavePix = "financeiro@terravista.com.br"
	rec.PayloadPix = "000201" // conteúdo qualquer serve para renderizar
	rec.ShareID = "abc"
	rec.Hash = strings.Repeat("a", 64)
	rec.DataEmissao = time.Now()

	pdfBytes, err := GerarPDF(rec, MontarVerificacao(rec, "https://sgci.exemplo.com.br"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pdfBytes) == 0 || !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("saída não é um PDF")
	}
}
