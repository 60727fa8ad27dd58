package corretor

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/auth"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

type criarCorretorRequest struct {
	Nome      string `json:"nome"`
	CRECI     string `json:"creci"`
	Documento string `json:"documento"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Perfil    string `json:"perfil"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	UploadsDir string
}

func NewHandler(db *gorm.DB) *Handler {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		UploadsDir: dir,
	}
}

// Login gera um JWT para credenciais válidas de corretores aprovados
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmailOuCRECI(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	// Cadastros pendentes ou rejeitados não autenticam.
	if user.Status != models.CorretorAprovado {
		http.Error(w, "cadastro aguardando aprovação da administração", http.StatusForbidden)
		return
	}

	token, err := auth.GerarToken(user.ID, user.Perfil)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// AutoRegistro cadastra um novo corretor via formulário multipart (rota pública).
// O cadastro entra como Pendente até aprovação de um administrador.
func (h *Handler) AutoRegistro(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxFotoBytes + 1<<20); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}

	nome := r.FormValue("nome")
	creci := r.FormValue("creci")
	documento := r.FormValue("documento")
	email := r.FormValue("email")
	telefone := r.FormValue("telefone")
	senha := r.FormValue("senha")

	var erros []string
	if nome == "" {
		erros = append(erros, "O campo 'nome' é obrigatório")
	}
	if creci == "" {
		erros = append(erros, "O campo 'creci' é obrigatório")
	}
	if documento == "" {
		erros = append(erros, "O campo 'documento' é obrigatório")
	} else if res := utils.ValidarDocumento(documento); !res.Valido {
		erros = append(erros, res.Mensagem)
	}
	if email == "" || !utils.ValidarEmail(email) {
		erros = append(erros, "E-mail inválido")
	}
	if len(senha) < 8 {
		erros = append(erros, "A senha deve ter ao menos 8 caracteres")
	}
	if len(erros) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{"errors": erros})
		return
	}

	foto := ""
	if file, header, err := r.FormFile("foto"); err == nil {
		defer file.Close()
		ext, err := ValidarFoto(file, header.Size)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		caminho, err := SalvarFoto(file, h.UploadsDir, uuid.NewString(), ext)
		if err != nil {
			log.Error().Err(err).Msg("falha ao salvar foto de corretor")
			http.Error(w, "erro ao salvar foto", http.StatusInternalServerError)
			return
		}
		foto = caminho
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Corretor{
		Nome:      nome,
		CRECI:     creci,
		Documento: utils.SomenteDigitos(documento),
		Email:     email,
		Telefone:  utils.SomenteDigitos(telefone),
		Foto:      foto,
		Status:    models.CorretorPendente,
		Senha:     hash,
		Perfil:    models.PerfilCorretor,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar corretor (CRECI, documento ou e-mail já cadastrado)", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// CriarCorretor cadastra um corretor já aprovado, com senha temporária (admin).
func (h *Handler) CriarCorretor(w http.ResponseWriter, r *http.Request) {
	var req criarCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if res := utils.ValidarDocumento(req.Documento); !res.Valido {
		http.Error(w, res.Mensagem, http.StatusBadRequest)
		return
	}

	perfil := models.Perfil(req.Perfil)
	if req.Perfil == "" {
		perfil = models.PerfilCorretor
	} else if !models.PerfilValido(req.Perfil) {
		http.Error(w, "perfil inválido", http.StatusBadRequest)
		return
	}

	senhaTemporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senhaTemporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Corretor{
		Nome:      req.Nome,
		CRECI:     req.CRECI,
		Documento: utils.SomenteDigitos(req.Documento),
		Email:     req.Email,
		Telefone:  utils.SomenteDigitos(req.Telefone),
		Status:    models.CorretorAprovado,
		Senha:     hash,
		Perfil:    perfil,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar corretor (CRECI, documento ou e-mail já cadastrado)", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"corretor":        c,
		"senhaTemporaria": senhaTemporaria,
	})
}

// ListarCorretores retorna todos (admin) ou apenas o próprio registro
func (h *Handler) ListarCorretores(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if auth.PerfilDoContexto(r.Context()) == models.PerfilAdmin {
		if status := r.URL.Query().Get("status"); status != "" {
			corretores, err := h.Repository.ListarPorStatus(h.DB, status)
			if err != nil {
				http.Error(w, "erro ao listar corretores", http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(corretores)
			return
		}
		corretores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar corretores", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(corretores)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode([]Corretor{*obj})
}

// BuscarCorretor trata GET /corretores/{id}
func (h *Handler) BuscarCorretor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarStatus trata PATCH /corretores/{id}/status — aprovação/rejeição (admin).
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if payload.Status != models.CorretorAprovado && payload.Status != models.CorretorRejeitado {
		http.Error(w, "status deve ser 'Aprovado' ou 'Rejeitado'", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "corretor não encontrado", http.StatusNotFound)
		return
	}
	if c.Status != models.CorretorPendente {
		http.Error(w, "cadastro já foi avaliado", http.StatusConflict)
		return
	}

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), payload.Status); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Status atualizado com sucesso"))
}

// AtualizarCorretor trata PUT /corretores/{id}
func (h *Handler) AtualizarCorretor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req criarCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Documento != "" {
		if res := utils.ValidarDocumento(req.Documento); !res.Valido {
			http.Error(w, res.Mensagem, http.StatusBadRequest)
			return
		}
	}

	novo := &Corretor{
		Nome:      req.Nome,
		CRECI:     req.CRECI,
		Documento: utils.SomenteDigitos(req.Documento),
		Email:     req.Email,
		Telefone:  utils.SomenteDigitos(req.Telefone),
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), novo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "corretor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar corretor", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Corretor atualizado com sucesso"))
}

// DeletarCorretor trata DELETE /corretores/{id}
func (h *Handler) DeletarCorretor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao remover corretor", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Corretor removido com sucesso"))
}
