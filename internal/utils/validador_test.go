package utils

import "testing"

func TestValidarCPF(t *testing.T) {
	casos := []struct {
		cpf    string
		valido bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"52998224724", false}, // dígito verificador errado
		{"111.111.111-11", false},
		{"000.000.000-00", false},
		{"5299822472", false},   // curto
		{"529982247255", false}, // longo
		{"", false},
	}
	for _, c := range casos {
		if got := ValidarCPF(c.cpf); got != c.valido {
			t.Errorf("ValidarCPF(%q) = %v, esperado %v", c.cpf, got, c.valido)
		}
	}
}

// Corromper qualquer dígito de um CPF válido deve invalidá-lo.
func TestValidarCPFSensibilidade(t *testing.T) {
	base := "52998224725"
	for i := 0; i < len(base); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if base[i] == d {
				continue
			}
			mutado := base[:i] + string(d) + base[i+1:]
			if ValidarCPF(mutado) {
				t.Errorf("CPF corrompido na posição %d aceito: %s", i, mutado)
			}
		}
	}
}

func TestValidarCNPJ(t *testing.T) {
	casos := []struct {
		cnpj   string
		valido bool
	}{
		{"11.222.333/0001-81", true},
		{"11222333000181", true},
		{"11222333000182", false},
		{"11.111.111/1111-11", false},
		{"1122233300018", false},
		{"", false},
	}
	for _, c := range casos {
		if got := ValidarCNPJ(c.cnpj); got != c.valido {
			t.Errorf("ValidarCNPJ(%q) = %v, esperado %v", c.cnpj, got, c.valido)
		}
	}
}

func TestValidarDocumento(t *testing.T) {
	r := ValidarDocumento("529.982.247-25")
	if !r.Valido || r.Tipo != DocumentoCPF {
		t.Fatalf("esperado CPF válido, veio %+v", r)
	}

	r = ValidarDocumento("11.222.333/0001-81")
	if !r.Valido || r.Tipo != DocumentoCNPJ {
		t.Fatalf("esperado CNPJ válido, veio %+v", r)
	}

	r = ValidarDocumento("123")
	if r.Valido || r.Mensagem == "" {
		t.Fatalf("tamanho inválido deveria falhar com mensagem, veio %+v", r)
	}

	r = ValidarDocumento("00000000000")
	if r.Valido {
		t.Fatal("CPF de dígitos repetidos aceito")
	}
	if r.Tipo != DocumentoCPF {
		t.Fatalf("tipo detectado errado: %q", r.Tipo)
	}
}

func TestValidadoresSimples(t *testing.T) {
	if !ValidarEmail("fulano@exemplo.com.br") || ValidarEmail("sem-arroba") {
		t.Error("ValidarEmail")
	}
	if !ValidarTelefone("(11) 98765-4321") || ValidarTelefone("123") {
		t.Error("ValidarTelefone")
	}
	if !ValidarCEP("01310-100") || ValidarCEP("0131010") {
		t.Error("ValidarCEP")
	}
	if !ValidarData("2026-03-10") || !ValidarData("10/03/2026") || ValidarData("31/02/2026") {
		t.Error("ValidarData")
	}
	if !ValidarTexto("ok", 10) || ValidarTexto("   ", 10) || ValidarTexto("abcdef", 3) {
		t.Error("ValidarTexto")
	}
}
