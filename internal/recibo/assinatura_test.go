package recibo

import (
	"testing"
	"time"
)

func reciboBase() *Recibo {
	return &Recibo{
		Numero:           "REC-2026-0001",
		Valor:            1500.00,
		DataPagamento:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EmissorNome:      "Terra Vista Loteamentos",
		EmissorDocumento: "11222333000181",
	}
}

func TestCalcularHashDeterminismo(t *testing.T) {
	a := CalcularHash(reciboBase(), "segredo")
	b := CalcularHash(reciboBase(), "segredo")
	if a != b {
		t.Fatalf("mesmos campos produziram hashes diferentes: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("esperado digesto hex de 64 caracteres, veio %d", len(a))
	}
}

func TestCalcularHashSensibilidade(t *testing.T) {
	original := CalcularHash(reciboBase(), "segredo")

	mutacoes := map[string]func(*Recibo){
		"numero":  func(r *Recibo) { r.Numero = "REC-2026-0002" },
		"valor":   func(r *Recibo) { r.Valor = 1500.01 },
		"data":    func(r *Recibo) { r.DataPagamento = r.DataPagamento.AddDate(0, 0, 1) },
		"emissor": func(r *Recibo) { r.EmissorNome = "Outra Imobiliária" },
		"doc":     func(r *Recibo) { r.EmissorDocumento = "52998224725" },
	}
	for nome, muta := range mutacoes {
		r := reciboBase()
		muta(r)
		if CalcularHash(r, "segredo") == original {
			t.Errorf("mutação de %s não alterou o hash", nome)
		}
	}

	if CalcularHash(reciboBase(), "outro-segredo") == original {
		t.Error("trocar o segredo não alterou o hash")
	}
}

func TestVerificar(t *testing.T) {
	r := reciboBase()
	r.Hash = CalcularHash(r, "segredo")
	if !Verificar(r, "segredo") {
		t.Fatal("recibo íntegro reprovado")
	}

	r.Valor = 9999.99
	if Verificar(r, "segredo") {
		t.Fatal("recibo adulterado aprovado")
	}
}

func TestMontarVerificacao(t *testing.T) {
	r := reciboBase()
	r.ShareID = "abc-123"
	r.Hash = "deadbeef"
	v := MontarVerificacao(r, "https://sgci.exemplo.com.br/")
	if v.URL != "https://sgci.exemplo.com.br/recibos/compartilhado/abc-123" {
		t.Errorf("URL de verificação inesperada: %s", v.URL)
	}
	if v.Hash != "deadbeef" || v.ShareID != "abc-123" {
		t.Errorf("payload de verificação incompleto: %+v", v)
	}
}
