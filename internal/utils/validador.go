// internal/utils/validador.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

// TipoDocumento identifica o tipo detectado pela validação de documento.
type TipoDocumento string

const (
	DocumentoCPF      TipoDocumento = "CPF"
	DocumentoCNPJ     TipoDocumento = "CNPJ"
	DocumentoInvalido TipoDocumento = ""
)

// ResultadoDocumento carrega o veredito da validação de CPF/CNPJ.
type ResultadoDocumento struct {
	Valido   bool
	Tipo     TipoDocumento
	Mensagem string
}

var naoDigitos = regexp.MustCompile(`\D`)

// SomenteDigitos remove tudo que não for dígito.
func SomenteDigitos(s string) string {
	return naoDigitos.ReplaceAllString(s, "")
}

func digitosRepetidos(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}

// ValidarCPF valida os dois dígitos verificadores de um CPF.
// Aceita o número com ou sem máscara (pontos e hífen).
func ValidarCPF(cpf string) bool {
	cpf = SomenteDigitos(cpf)
	if len(cpf) != 11 {
		return false
	}
	if digitosRepetidos(cpf) {
		return false
	}

	// Primeiro dígito: pesos 10..2, resto < 2 vira 0.
	soma := 0
	for i := 0; i < 9; i++ {
		soma += int(cpf[i]-'0') * (10 - i)
	}
	d1 := (soma * 10) % 11
	if d1 == 10 {
		d1 = 0
	}
	if d1 != int(cpf[9]-'0') {
		return false
	}

	// Segundo dígito: pesos 11..2.
	soma = 0
	for i := 0; i < 10; i++ {
		soma += int(cpf[i]-'0') * (11 - i)
	}
	d2 := (soma * 10) % 11
	if d2 == 10 {
		d2 = 0
	}
	return d2 == int(cpf[10]-'0')
}

// ValidarCNPJ valida os dois dígitos verificadores de um CNPJ.
func ValidarCNPJ(cnpj string) bool {
	cnpj = SomenteDigitos(cnpj)
	if len(cnpj) != 14 {
		return false
	}
	if digitosRepetidos(cnpj) {
		return false
	}

	calc := func(base string) int {
		// Pesos cíclicos 9..2 aplicados da direita para a esquerda.
		peso := 2
		soma := 0
		for i := len(base) - 1; i >= 0; i-- {
			soma += int(base[i]-'0') * peso
			peso++
			if peso > 9 {
				peso = 2
			}
		}
		resto := soma % 11
		if resto < 2 {
			return 0
		}
		return 11 - resto
	}

	d1 := calc(cnpj[:12])
	if d1 != int(cnpj[12]-'0') {
		return false
	}
	d2 := calc(cnpj[:13])
	return d2 == int(cnpj[13]-'0')
}

// ValidarDocumento valida CPF ou CNPJ conforme o tamanho e devolve o tipo
// detectado junto com uma mensagem específica em caso de falha.
func ValidarDocumento(doc string) ResultadoDocumento {
	digitos := SomenteDigitos(doc)
	switch len(digitos) {
	case 11:
		if digitosRepetidos(digitos) {
			return ResultadoDocumento{false, DocumentoCPF, "CPF com todos os dígitos iguais"}
		}
		if !ValidarCPF(digitos) {
			return ResultadoDocumento{false, DocumentoCPF, "CPF com dígito verificador inválido"}
		}
		return ResultadoDocumento{true, DocumentoCPF, ""}
	case 14:
		if digitosRepetidos(digitos) {
			return ResultadoDocumento{false, DocumentoCNPJ, "CNPJ com todos os dígitos iguais"}
		}
		if !ValidarCNPJ(digitos) {
			return ResultadoDocumento{false, DocumentoCNPJ, "CNPJ com dígito verificador inválido"}
		}
		return ResultadoDocumento{true, DocumentoCNPJ, ""}
	}
	return ResultadoDocumento{false, DocumentoInvalido, "documento deve ter 11 (CPF) ou 14 (CNPJ) dígitos"}
}

var regexEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidarEmail faz a checagem sintática básica de e-mail.
func ValidarEmail(email string) bool {
	return regexEmail.MatchString(strings.TrimSpace(email))
}

// ValidarTelefone aceita telefones brasileiros com 10 ou 11 dígitos (com DDD).
func ValidarTelefone(tel string) bool {
	d := SomenteDigitos(tel)
	return len(d) == 10 || len(d) == 11
}

// ValidarCEP exige exatamente 8 dígitos.
func ValidarCEP(cep string) bool {
	return len(SomenteDigitos(cep)) == 8
}

// ValidarData aceita datas nos formatos 2006-01-02 ou 02/01/2006.
func ValidarData(data string) bool {
	data = strings.TrimSpace(data)
	if _, err := time.Parse("2006-01-02", data); err == nil {
		return true
	}
	if _, err := time.Parse("02/01/2006", data); err == nil {
		return true
	}
	return false
}

// ValidarTexto exige texto não vazio dentro do limite de caracteres.
func ValidarTexto(s string, max int) bool {
	s = strings.TrimSpace(s)
	return s != "" && len([]rune(s)) <= max
}
