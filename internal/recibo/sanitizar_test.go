package recibo

import (
	"strings"
	"testing"
	"time"
)

func requestValida() ReciboRequest {
	return ReciboRequest{
		Numero:         "REC-2026-0001",
		Valor:          1500.00,
		RecebidoDe:     "João da Silva",
		Documento:      "529.982.247-25",
		Referente:      "Parcela 3/24 do lote Q12-L05",
		FormaPagamento: "PIX",
		DataPagamento:  "2026-03-10",
		Status:         "Paga",
		Emissor: EmissorDTO{
			Nome:      "Terra Vista Loteamentos",
			Documento: "11.222.333/0001-81",
			Cidade:    "São Paulo",
		},
	}
}

func TestSanitizarValida(t *testing.T) {
	agora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rec, erros := Sanitizar(requestValida(), agora)
	if len(erros) > 0 {
		t.Fatalf("request válida rejeitada: %v", erros)
	}
	if rec.Documento != "52998224725" {
		t.Errorf("documento não normalizado: %q", rec.Documento)
	}
	if rec.EmissorDocumento != "11222333000181" {
		t.Errorf("documento do emissor não normalizado: %q", rec.EmissorDocumento)
	}
	if rec.ValorPorExtenso != "mil e quinhentos reais" {
		t.Errorf("valor por extenso não preenchido: %q", rec.ValorPorExtenso)
	}
	if !rec.DataEmissao.Equal(agora) {
		t.Error("data de emissão deveria ser o relógio do servidor")
	}
}

func TestSanitizarCamposObrigatorios(t *testing.T) {
	req := requestValida()
	req.RecebidoDe = "  "
	_, erros := Sanitizar(req, time.Now())
	if len(erros) == 0 {
		t.Fatal("recebidoDe vazio deveria falhar")
	}
	achou := false
	for _, e := range erros {
		if strings.Contains(e, "recebidoDe") {
			achou = true
		}
	}
	if !achou {
		t.Errorf("mensagem não menciona o campo: %v", erros)
	}
}

func TestSanitizarAcumulaErros(t *testing.T) {
	req := ReciboRequest{} // tudo vazio
	_, erros := Sanitizar(req, time.Now())
	if len(erros) < 5 {
		t.Fatalf("esperada a lista completa de erros, veio %v", erros)
	}
}

func TestSanitizarDocumentoInvalido(t *testing.T) {
	req := requestValida()
	req.Documento = "529.982.247-24"
	_, erros := Sanitizar(req, time.Now())
	if len(erros) == 0 {
		t.Fatal("CPF com dígito errado deveria falhar")
	}

	// Documento do pagador é opcional quando ausente.
	req = requestValida()
	req.Documento = ""
	if _, erros := Sanitizar(req, time.Now()); len(erros) > 0 {
		t.Fatalf("documento vazio deveria ser aceito: %v", erros)
	}
}

func TestSanitizarStatus(t *testing.T) {
	req := requestValida()
	req.Status = ""
	rec, erros := Sanitizar(req, time.Now())
	if len(erros) > 0 {
		t.Fatal(erros)
	}
	if rec.Status != "Paga" {
		t.Errorf("status vazio deveria assumir Paga, veio %q", rec.Status)
	}

	req.Status = "Cancelada"
	if _, erros := Sanitizar(req, time.Now()); len(erros) == 0 {
		t.Error("status desconhecido deveria falhar")
	}
}
