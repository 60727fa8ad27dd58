package pix

import (
	"regexp"
	"strings"
	"testing"
)

func TestGerarPayloadEstrutura(t *testing.T) {
	payload, err := GerarPayload(Cobranca{
		Chave:  "recebedor@terravista.com.br",
		Nome:   "Terra Vista Loteamentos",
		Cidade: "São Paulo",
		Valor:  1500.00,
		TxID:   "REC-2026-000123",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(payload, "000201") {
		t.Errorf("payload deve iniciar com o indicador de formato 000201: %s", payload)
	}
	if !strings.Contains(payload, "br.gov.bcb.pix") {
		t.Error("GUI do arranjo PIX ausente")
	}
	if !strings.Contains(payload, "5303986") {
		t.Error("código de moeda BRL (986) ausente")
	}
	if !strings.Contains(payload, "54071500.00") {
		t.Errorf("valor com 2 casas decimais ausente: %s", payload)
	}
	if !strings.Contains(payload, "5802BR") {
		t.Error("código de país ausente")
	}
	// Cidade sem acento e dentro do limite de 15.
	if !strings.Contains(payload, "6009Sao Paulo") {
		t.Errorf("cidade não normalizada: %s", payload)
	}

	// Termina com 6304 + 4 dígitos hex.
	fim := regexp.MustCompile(`6304[0-9A-F]{4}$`)
	if !fim.MatchString(payload) {
		t.Errorf("payload não termina com campo CRC válido: %s", payload)
	}

	// CRC recomputado sobre o prefixo confere com o sufixo emitido.
	base := payload[:len(payload)-4]
	esperado := payload[len(payload)-4:]
	if got := crc16(base); got != parseHex(t, esperado) {
		t.Errorf("CRC divergente: calculado %04X, emitido %s", got, esperado)
	}
}

func parseHex(t *testing.T, s string) uint16 {
	t.Helper()
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			t.Fatalf("hex inválido %q", s)
		}
	}
	return v
}

func TestGerarPayloadTxID(t *testing.T) {
	longo := strings.Repeat("A", 40)
	payload, err := GerarPayload(Cobranca{Chave: "11999990000", Nome: "X", Cidade: "Y", Valor: 10, TxID: longo})
	if err != nil {
		t.Fatal(err)
	}
	// Campo 62 carrega 05 + txid truncado em 25.
	if !strings.Contains(payload, "62290525"+strings.Repeat("A", 25)) {
		t.Errorf("txid não truncado em 25: %s", payload)
	}

	// Id curto numérico é completado com zeros à esquerda.
	payload, err = GerarPayload(Cobranca{Chave: "11999990000", Nome: "X", Cidade: "Y", Valor: 10, TxID: "42"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(payload, "0506000042") {
		t.Errorf("txid curto sem zero à esquerda: %s", payload)
	}

	// Sem txid, usa o curinga.
	payload, err = GerarPayload(Cobranca{Chave: "11999990000", Nome: "X", Cidade: "Y", Valor: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(payload, "62070503***") {
		t.Errorf("curinga *** ausente: %s", payload)
	}
}

func TestGerarPayloadValidacao(t *testing.T) {
	if _, err := GerarPayload(Cobranca{Nome: "X", Cidade: "Y", Valor: 10}); err == nil {
		t.Error("chave vazia deveria falhar")
	}
	if _, err := GerarPayload(Cobranca{Chave: "k", Nome: "X", Cidade: "Y", Valor: 0}); err == nil {
		t.Error("valor zero deveria falhar")
	}
}

func TestCRC16ValorConhecido(t *testing.T) {
	// Vetor clássico do CRC-16/CCITT-FALSE.
	if got := crc16("123456789"); got != 0x29B1 {
		t.Errorf("crc16(123456789) = %04X, esperado 29B1", got)
	}
}
