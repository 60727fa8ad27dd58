// internal/recibo/assinatura.go
package recibo

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
)

// CalcularHash computa o digesto de autenticidade do recibo: um SHA-256
// sobre um subconjunto fixo de campos concatenados com '|' mais o segredo
// do servidor. O mesmo recibo produz sempre o mesmo digesto; alterar
// qualquer campo assinado muda o resultado.
func CalcularHash(r *Recibo, segredo string) string {
	campos := []string{
		r.Numero,
		decimal.NewFromFloat(r.Valor).StringFixed(2),
		r.DataPagamento.Format("2006-01-02"),
		r.EmissorNome,
		r.EmissorDocumento,
		segredo,
	}
	soma := sha256.Sum256([]byte(strings.Join(campos, "|")))
	return hex.EncodeToString(soma[:])
}

// PayloadVerificacao é o conteúdo embutido no QR de autenticidade.
type PayloadVerificacao struct {
	Hash    string `json:"hash"`
	ShareID string `json:"shareId"`
	URL     string `json:"url"`
}

// MontarVerificacao constrói o link público de conferência do recibo.
func MontarVerificacao(r *Recibo, baseURL string) PayloadVerificacao {
	return PayloadVerificacao{
		Hash:    r.Hash,
		ShareID: r.ShareID,
		URL:     strings.TrimRight(baseURL, "/") + "/recibos/compartilhado/" + r.ShareID,
	}
}

// Verificar recomputa o digesto a partir dos campos armazenados e compara
// com o hash persistido. Divergência significa adulteração.
func Verificar(r *Recibo, segredo string) bool {
	return CalcularHash(r, segredo) == r.Hash
}
