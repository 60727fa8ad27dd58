package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/auth"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/cliente"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/comentario"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/corretor"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/empreendimento"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/logger"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/negociacao"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/parcela"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/permuta"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/recibo"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/seed"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()
	logger.Setup()

	dbHost := envOuPadrao("DB_HOST", "localhost")
	dbName := envOuPadrao("DB_NAME", "sgci")
	dbPort := uint(5432)
	if p, err := strconv.Atoi(os.Getenv("DB_PORT")); err == nil && p > 0 {
		dbPort = uint(p)
	}

	conn, err := db.ConnectDataBase(dbPort, dbHost, dbName)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}

	if err := migrarTudo(conn); err != nil {
		log.Fatal().Err(err).Msg("erro no AutoMigrate")
	}

	// Handlers
	clienteHandler := cliente.NewHandler(conn)
	corretorHandler := corretor.NewHandler(conn)
	empreendimentoHandler := empreendimento.NewHandler(conn)
	negociacaoHandler := negociacao.NewHandler(conn)
	parcelaHandler := parcela.NewHandler(parcela.NewRepository(conn))
	permutaHandler := permuta.NewHandler(conn)
	comentarioHandler := comentario.NewHandler(conn)
	reciboHandler := recibo.NewHandler(conn)
	seedHandler := seed.NewHandler(conn)

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/sgci").Subrouter()

	// Rotas públicas
	api.HandleFunc("/login", corretorHandler.Login).Methods("POST")
	api.HandleFunc("/corretores/registro", corretorHandler.AutoRegistro).Methods("POST")
	api.HandleFunc("/recibos/compartilhado/{shareId}", reciboHandler.Compartilhado).Methods("GET")

	// Fotos de perfil
	uploadsDir := envOuPadrao("UPLOADS_DIR", "uploads")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	// Rotas autenticadas
	priv := api.NewRoute().Subrouter()
	priv.Use(auth.MiddlewareAutenticacao)

	cadastros := auth.RequireAcao(models.AcaoGerenciarCadastros)
	aprovacao := auth.RequireAcao(models.AcaoAprovarCorretores)
	recibos := auth.RequireAcao(models.AcaoEmitirRecibos)
	negocios := auth.RequireAcao(models.AcaoGerirNegociacoes)

	// Clientes (admin)
	priv.Handle("/clientes", cadastros(http.HandlerFunc(clienteHandler.CriarCliente))).Methods("POST")
	priv.Handle("/clientes", cadastros(http.HandlerFunc(clienteHandler.ListarClientes))).Methods("GET")
	priv.Handle("/clientes/{id}", cadastros(http.HandlerFunc(clienteHandler.BuscarCliente))).Methods("GET")
	priv.Handle("/clientes/{id}", cadastros(http.HandlerFunc(clienteHandler.AtualizarCliente))).Methods("PUT")
	priv.Handle("/clientes/{id}", cadastros(http.HandlerFunc(clienteHandler.DeletarCliente))).Methods("DELETE")

	// Corretores
	priv.HandleFunc("/corretores", corretorHandler.ListarCorretores).Methods("GET")
	priv.HandleFunc("/corretores/{id}", corretorHandler.BuscarCorretor).Methods("GET")
	priv.Handle("/corretores", cadastros(http.HandlerFunc(corretorHandler.CriarCorretor))).Methods("POST")
	priv.Handle("/corretores/{id}", cadastros(http.HandlerFunc(corretorHandler.AtualizarCorretor))).Methods("PUT")
	priv.Handle("/corretores/{id}", cadastros(http.HandlerFunc(corretorHandler.DeletarCorretor))).Methods("DELETE")
	priv.Handle("/corretores/{id}/status", aprovacao(http.HandlerFunc(corretorHandler.AtualizarStatus))).Methods("PATCH")

	// Empreendimentos e unidades (admin)
	priv.Handle("/empreendimentos", cadastros(http.HandlerFunc(empreendimentoHandler.CriarEmpreendimento))).Methods("POST")
	priv.HandleFunc("/empreendimentos", empreendimentoHandler.ListarEmpreendimentos).Methods("GET")
	priv.HandleFunc("/empreendimentos/{id}", empreendimentoHandler.BuscarEmpreendimento).Methods("GET")
	priv.Handle("/empreendimentos/{id}", cadastros(http.HandlerFunc(empreendimentoHandler.AtualizarEmpreendimento))).Methods("PUT")
	priv.Handle("/empreendimentos/{id}", cadastros(http.HandlerFunc(empreendimentoHandler.DeletarEmpreendimento))).Methods("DELETE")
	priv.Handle("/empreendimentos/{id}/unidades", cadastros(http.HandlerFunc(empreendimentoHandler.CriarUnidade))).Methods("POST")
	priv.HandleFunc("/empreendimentos/{id}/unidades", empreendimentoHandler.ListarUnidades).Methods("GET")
	priv.Handle("/unidades/{id}", cadastros(http.HandlerFunc(empreendimentoHandler.AtualizarUnidade))).Methods("PUT")
	priv.Handle("/unidades/{id}/status", cadastros(http.HandlerFunc(empreendimentoHandler.AtualizarStatusUnidade))).Methods("PATCH")
	priv.Handle("/unidades/{id}", cadastros(http.HandlerFunc(empreendimentoHandler.DeletarUnidade))).Methods("DELETE")

	// Negociações
	priv.Handle("/negociacoes", negocios(http.HandlerFunc(negociacaoHandler.CriarNegociacao))).Methods("POST")
	priv.Handle("/negociacoes", negocios(http.HandlerFunc(negociacaoHandler.ListarNegociacoes))).Methods("GET")
	priv.Handle("/negociacoes/{id}", negocios(http.HandlerFunc(negociacaoHandler.BuscarPorID))).Methods("GET")
	priv.Handle("/negociacoes/{id}", negocios(http.HandlerFunc(negociacaoHandler.AtualizarNegociacao))).Methods("PUT")
	priv.Handle("/negociacoes/{id}", negocios(http.HandlerFunc(negociacaoHandler.DeletarNegociacao))).Methods("DELETE")
	priv.Handle("/negociacoes/{id}/resumo", negocios(http.HandlerFunc(negociacaoHandler.Resumo))).Methods("GET")

	// Parcelas
	priv.Handle("/negociacoes/{nid}/parcelas", negocios(http.HandlerFunc(parcelaHandler.List))).Methods("GET")
	priv.Handle("/negociacoes/{nid}/parcelas", negocios(http.HandlerFunc(parcelaHandler.CreateForNegociacao))).Methods("POST")
	priv.Handle("/parcelas/{pid}", negocios(http.HandlerFunc(parcelaHandler.Update))).Methods("PUT")
	priv.Handle("/parcelas/{pid}", negocios(http.HandlerFunc(parcelaHandler.Delete))).Methods("DELETE")
	priv.Handle("/parcelas/{pid}/status", negocios(http.HandlerFunc(parcelaHandler.ToggleStatus))).Methods("PATCH")
	priv.Handle("/parcelas/{pid}/recibo", negocios(http.HandlerFunc(parcelaHandler.VincularRecibo))).Methods("PATCH")

	// Permutas
	priv.Handle("/negociacoes/{nid}/permutas", negocios(http.HandlerFunc(permutaHandler.CreateForNegociacao))).Methods("POST")
	priv.Handle("/permutas/{id}", negocios(http.HandlerFunc(permutaHandler.Update))).Methods("PUT")
	priv.Handle("/permutas/{id}", negocios(http.HandlerFunc(permutaHandler.Delete))).Methods("DELETE")

	// Comentários de negociação
	priv.Handle("/negociacoes/{id}/comentarios", negocios(http.HandlerFunc(comentarioHandler.CriarComentario))).Methods("POST")
	priv.Handle("/negociacoes/{id}/comentarios", negocios(http.HandlerFunc(comentarioHandler.ListarPorNegociacao))).Methods("GET")
	priv.Handle("/comentarios/{id}", negocios(http.HandlerFunc(comentarioHandler.BuscarPorID))).Methods("GET")
	priv.Handle("/comentarios/{id}", negocios(http.HandlerFunc(comentarioHandler.Atualizar))).Methods("PUT")
	priv.Handle("/comentarios/{id}", negocios(http.HandlerFunc(comentarioHandler.Remover))).Methods("DELETE")

	// Recibos
	priv.Handle("/recibos", recibos(http.HandlerFunc(reciboHandler.Gerar))).Methods("POST")

	// Seed de demonstração (admin)
	priv.Handle("/seed", cadastros(http.HandlerFunc(seedHandler.Popular))).Methods("POST")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{envOuPadrao("CORS_ORIGIN", "*")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"x-recibo-share-id", "x-recibo-share-url"},
		AllowCredentials: true,
	})

	porta := envOuPadrao("PORT", "8080")
	log.Info().Str("porta", porta).Msg("servidor iniciado")
	log.Fatal().Err(http.ListenAndServe(":"+porta, c.Handler(r))).Msg("servidor encerrado")
}

func envOuPadrao(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

func migrarTudo(conn *gorm.DB) error {
	migracoes := []func(*gorm.DB) error{
		cliente.Migrate,
		corretor.Migrate,
		empreendimento.Migrate,
		negociacao.Migrate,
		parcela.Migrate,
		permuta.Migrate,
		comentario.Migrate,
		recibo.Migrate,
	}
	for _, migrar := range migracoes {
		if err := migrar(conn); err != nil {
			return err
		}
	}
	return nil
}
