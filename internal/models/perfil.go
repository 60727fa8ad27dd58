// internal/models/perfil.go
package models

// Perfil é o conjunto fechado de papéis do sistema. Toda decisão de acesso
// passa por Autorizar, em vez de comparações de string espalhadas.
type Perfil string

const (
	PerfilAdmin    Perfil = "ADMIN"
	PerfilCorretor Perfil = "CORRETOR"
)

// Acao identifica uma operação sujeita a controle de acesso.
type Acao string

const (
	AcaoGerenciarCadastros Acao = "gerenciar-cadastros" // clientes, empreendimentos, seed
	AcaoAprovarCorretores  Acao = "aprovar-corretores"
	AcaoEmitirRecibos      Acao = "emitir-recibos"
	AcaoGerirNegociacoes   Acao = "gerir-negociacoes"
)

// Autorizar é a única função de decisão de autorização.
func Autorizar(p Perfil, a Acao) bool {
	switch p {
	case PerfilAdmin:
		return true
	case PerfilCorretor:
		return a == AcaoEmitirRecibos || a == AcaoGerirNegociacoes
	}
	return false
}

// PerfilValido informa se a string corresponde a um perfil conhecido.
func PerfilValido(s string) bool {
	p := Perfil(s)
	return p == PerfilAdmin || p == PerfilCorretor
}
