package seed

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/cliente"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/corretor"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/empreendimento"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/models"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/negociacao"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/parcela"
	"github.com/TerraVistaLoteamentos/api-sgci/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler expõe a carga de dados de demonstração.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Popular trata POST /api/sgci/seed (admin). A carga só acontece quando a base
// está vazia, então chamadas repetidas são inofensivas.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	var total int64
	if err := h.DB.Model(&empreendimento.Empreendimento{}).Count(&total).Error; err != nil {
		http.Error(w, "erro ao consultar a base", http.StatusInternalServerError)
		return
	}
	if total > 0 {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"mensagem": "base já possui dados; seed ignorado"})
		return
	}

	if err := h.popular(); err != nil {
		log.Error().Err(err).Msg("falha ao popular dados de demonstração")
		http.Error(w, "erro ao popular dados de demonstração", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "dados de demonstração criados"})
}

func (h *Handler) popular() error {
	return h.DB.Transaction(func(tx *gorm.DB) error {
		emp := empreendimento.Empreendimento{
			Nome:      "Residencial Terra Vista",
			Cidade:    "Uberlândia",
			Estado:    "MG",
			Matricula: "45.872",
			Descricao: "Loteamento fechado com 120 lotes, infraestrutura completa.",
			Unidades: []empreendimento.Unidade{
				{Identificacao: "Quadra A - Lote 01", AreaM2: decimal.NewFromInt(300), ValorTabela: decimal.NewFromInt(95000), Status: models.UnidadeDisponivel},
				{Identificacao: "Quadra A - Lote 02", AreaM2: decimal.NewFromInt(300), ValorTabela: decimal.NewFromInt(95000), Status: models.UnidadeReservada},
				{Identificacao: "Quadra B - Lote 07", AreaM2: decimal.NewFromFloat(412.5), ValorTabela: decimal.NewFromInt(128000), Status: models.UnidadeDisponivel},
			},
		}
		if err := tx.Create(&emp).Error; err != nil {
			return err
		}

		cli := cliente.Cliente{
			Nome:      "João da Silva",
			Documento: "52998224725",
			Email:     "joao.silva@example.com",
			Telefone:  "34999887766",
			CEP:       "38400000",
			Endereco:  "Rua das Acácias, 120",
			Cidade:    "Uberlândia",
			Estado:    "MG",
		}
		if err := tx.Create(&cli).Error; err != nil {
			return err
		}

		senha, err := utils.HashSenha("trocar-na-primeira-entrada")
		if err != nil {
			return err
		}
		corr := corretor.Corretor{
			Nome:      "Maria Oliveira",
			CRECI:     "MG-45678",
			Documento: "11222333000181",
			Email:     "maria.oliveira@terravista.com.br",
			Telefone:  "34988776655",
			Status:    models.CorretorAprovado,
			Senha:     senha,
			Perfil:    models.PerfilCorretor,
		}
		if err := tx.Create(&corr).Error; err != nil {
			return err
		}

		venc := time.Now().AddDate(0, 1, 0)
		neg := negociacao.Negociacao{
			ClienteID:            cli.ID,
			UnidadeID:            emp.Unidades[1].ID,
			CorretorID:           corr.ID,
			ValorContrato:        95000,
			QtdParcelasPrevistas: 48,
			Condicoes:            "Entrada de 10% e saldo em 48 parcelas mensais.",
			Status:               models.NegociacaoAndamento,
			Parcelas: []parcela.Parcela{
				{Numero: 1, Valor: 9500, DataVencimento: venc, Status: models.ParcelaPendente},
				{Numero: 2, Valor: 1781.25, DataVencimento: venc.AddDate(0, 1, 0), Status: models.ParcelaPendente},
			},
		}
		return tx.Create(&neg).Error
	})
}
