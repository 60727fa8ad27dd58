package corretor

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxFotoBytes limita o tamanho da foto de perfil a 5MB.
const MaxFotoBytes = 5 << 20

// extensão por tipo detectado via magic bytes
var tiposFotoPermitidos = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ValidarFoto confere o conteúdo real do arquivo (magic bytes) e devolve a
// extensão adequada. O Content-Type declarado pelo cliente não é confiável.
func ValidarFoto(file io.ReadSeeker, tamanho int64) (string, error) {
	if tamanho > MaxFotoBytes {
		return "", fmt.Errorf("foto excede o limite de 5MB")
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("falha ao ler arquivo para detecção de tipo: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("falha ao reposicionar leitura do arquivo: %w", err)
	}

	detectado := http.DetectContentType(buffer[:n])
	detectado = strings.ToLower(strings.Split(detectado, ";")[0])

	ext, ok := tiposFotoPermitidos[detectado]
	if !ok {
		return "", fmt.Errorf("tipo de arquivo '%s' não permitido para foto (use JPEG, PNG ou WebP)", detectado)
	}
	return ext, nil
}

// SalvarFoto grava a foto no diretório público de uploads e devolve o caminho
// relativo servido pela API.
func SalvarFoto(file io.Reader, dir, nomeBase, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("falha ao preparar diretório de uploads: %w", err)
	}

	nome := nomeBase + ext
	destino := filepath.Join(dir, nome)

	out, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("falha ao criar arquivo da foto: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("falha ao gravar foto: %w", err)
	}

	return "/uploads/" + nome, nil
}
