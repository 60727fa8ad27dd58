// internal/pix/payload.go
package pix

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Identificadores de campo do BR Code estático (EMV-QRCPS-MPM).
const (
	idPayloadFormat        = "00"
	idMerchantAccountInfo  = "26"
	idMerchantCategoryCode = "52"
	idTransactionCurrency  = "53"
	idTransactionAmount    = "54"
	idCountryCode          = "58"
	idMerchantName         = "59"
	idMerchantCity         = "60"
	idAdditionalData       = "62"
	idCRC16                = "63"

	idGUI       = "00"
	idChavePix  = "01"
	idDescricao = "02"
	idTxID      = "05"

	guiPix = "br.gov.bcb.pix"

	maxNome      = 25
	maxCidade    = 15
	maxTxID      = 25
	maxDescricao = 40
)

// Cobranca descreve os dados necessários para montar um BR Code estático.
type Cobranca struct {
	Chave     string  // chave PIX do recebedor
	Nome      string  // nome do recebedor
	Cidade    string  // cidade do recebedor
	Valor     float64 // valor da transação
	TxID      string  // identificador da transação (ex.: número do recibo)
	Descricao string  // texto livre opcional
}

// campo codifica um TLV `<id><tamanho-2-dígitos><valor>`.
func campo(id, valor string) string {
	return fmt.Sprintf("%s%02d%s", id, len(valor), valor)
}

var removeAcentos = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "ê", "e", "í", "i", "ó", "o", "ô", "o",
	"õ", "o", "ú", "u", "ü", "u", "ç", "c",
	"Á", "A", "À", "A", "Â", "A", "Ã", "A", "Ä", "A",
	"É", "E", "Ê", "E", "Í", "I", "Ó", "O", "Ô", "O",
	"Õ", "O", "Ú", "U", "Ü", "U", "Ç", "C",
)

// normalizar remove acentos e corta no limite de caracteres do campo.
func normalizar(s string, max int) string {
	s = strings.TrimSpace(removeAcentos.Replace(s))
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// normalizarTxID trunca em 25 caracteres e preenche ids numéricos curtos
// com zeros à esquerda até 6 posições. Sem id, usa "***".
func normalizarTxID(txid string) string {
	txid = strings.TrimSpace(txid)
	txid = strings.ReplaceAll(txid, " ", "")
	if txid == "" {
		return "***"
	}
	if len(txid) > maxTxID {
		return txid[:maxTxID]
	}
	for len(txid) < 6 {
		txid = "0" + txid
	}
	return txid
}

// GerarPayload monta o BR Code estático completo, com CRC16 ao final.
// O resultado é o texto que vai dentro do QR lido pelos aplicativos de banco.
func GerarPayload(c Cobranca) (string, error) {
	chave := strings.TrimSpace(c.Chave)
	if chave == "" {
		return "", fmt.Errorf("chave PIX é obrigatória")
	}
	if c.Valor <= 0 {
		return "", fmt.Errorf("valor da cobrança deve ser positivo")
	}

	conta := campo(idGUI, guiPix) + campo(idChavePix, chave)
	if d := normalizar(c.Descricao, maxDescricao); d != "" {
		conta += campo(idDescricao, d)
	}

	valor := decimal.NewFromFloat(c.Valor).StringFixed(2)

	var sb strings.Builder
	sb.WriteString(campo(idPayloadFormat, "01"))
	sb.WriteString(campo(idMerchantAccountInfo, conta))
	sb.WriteString(campo(idMerchantCategoryCode, "0000"))
	sb.WriteString(campo(idTransactionCurrency, "986"))
	sb.WriteString(campo(idTransactionAmount, valor))
	sb.WriteString(campo(idCountryCode, "BR"))
	sb.WriteString(campo(idMerchantName, normalizar(c.Nome, maxNome)))
	sb.WriteString(campo(idMerchantCity, normalizar(c.Cidade, maxCidade)))
	sb.WriteString(campo(idAdditionalData, campo(idTxID, normalizarTxID(c.TxID))))

	// O CRC cobre tudo que veio antes, incluindo o próprio "6304".
	sb.WriteString(idCRC16 + "04")
	payload := sb.String()
	return payload + fmt.Sprintf("%04X", crc16(payload)), nil
}
