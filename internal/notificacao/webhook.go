package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// EnviarAlertaDocumentoDuplicado avisa o canal de operações quando um cadastro
// é tentado com um CPF/CNPJ já existente. O envio é best-effort: falhas são
// apenas logadas e não interrompem o fluxo de cadastro.
func EnviarAlertaDocumentoDuplicado(documento string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":  "Alerta: tentativa de cadastro com documento já existente",
		"documento": documento,
	}
	body, _ := json.Marshal(payload)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Warn().Err(err).Msg("erro ao enviar webhook de alerta")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("webhook de alerta respondeu com erro")
	}
}
