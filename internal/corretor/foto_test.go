package corretor

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidarFotoAceitaPNG(t *testing.T) {
	// assinatura PNG seguida de preenchimento
	conteudo := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	r := bytes.NewReader(conteudo)

	ext, err := ValidarFoto(r, int64(len(conteudo)))
	if err != nil {
		t.Fatalf("esperava aceitar PNG, obteve erro: %v", err)
	}
	if ext != ".png" {
		t.Errorf("extensão esperada .png, obteve %q", ext)
	}

	// o ponteiro de leitura deve voltar ao início para o gravador
	if pos, _ := r.Seek(0, 1); pos != 0 {
		t.Errorf("leitura não foi reposicionada: pos=%d", pos)
	}
}

func TestValidarFotoAceitaJPEG(t *testing.T) {
	conteudo := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
	ext, err := ValidarFoto(bytes.NewReader(conteudo), int64(len(conteudo)))
	if err != nil {
		t.Fatalf("esperava aceitar JPEG, obteve erro: %v", err)
	}
	if ext != ".jpg" {
		t.Errorf("extensão esperada .jpg, obteve %q", ext)
	}
}

func TestValidarFotoRejeitaTexto(t *testing.T) {
	conteudo := []byte("isto é um arquivo de texto disfarçado de imagem")
	if _, err := ValidarFoto(bytes.NewReader(conteudo), int64(len(conteudo))); err == nil {
		t.Fatal("esperava rejeitar conteúdo texto")
	}
}

func TestValidarFotoRejeitaTamanhoExcedido(t *testing.T) {
	conteudo := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	_, err := ValidarFoto(bytes.NewReader(conteudo), MaxFotoBytes+1)
	if err == nil {
		t.Fatal("esperava rejeitar arquivo acima de 5MB")
	}
	if !strings.Contains(err.Error(), "5MB") {
		t.Errorf("mensagem deveria citar o limite: %v", err)
	}
}
