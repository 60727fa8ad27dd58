package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
)

type ctxKey string

const (
	CtxUserID ctxKey = "usuarioID"
	CtxPerfil ctxKey = "perfil"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxPerfil, claims.Perfil)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAcao libera a rota apenas para perfis autorizados à ação.
func RequireAcao(acao models.Acao) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			perfil, _ := r.Context().Value(CtxPerfil).(models.Perfil)
			if !models.Autorizar(perfil, acao) {
				http.Error(w, "Acesso negado para o perfil", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PerfilDoContexto devolve o perfil autenticado (vazio se ausente).
func PerfilDoContexto(ctx context.Context) models.Perfil {
	p, _ := ctx.Value(CtxPerfil).(models.Perfil)
	return p
}

// UsuarioDoContexto devolve o id do usuário autenticado (0 se ausente).
func UsuarioDoContexto(ctx context.Context) uint {
	id, _ := ctx.Value(CtxUserID).(uint)
	return id
}
